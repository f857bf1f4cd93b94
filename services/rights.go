package services

import "courseboard/model"

// Capability checks for announcements. Each is a pure function of the
// viewer's role, re-evaluated per request.

// CanView is true for any visitor, including anonymous ones; enrollment is
// checked separately by the list view.
func CanView(role string) bool {
	return true
}

func CanEdit(role string) bool {
	return role == model.RoleAdmin
}

func CanDelete(role string) bool {
	return CanEdit(role)
}

func CanAdd(role string) bool {
	return CanEdit(role)
}
