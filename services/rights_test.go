package services

import (
	"testing"

	"courseboard/model"
)

func TestRights(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		canView   bool
		canEdit   bool
		canDelete bool
		canAdd    bool
	}{
		{
			name:    "Anonymous",
			role:    "",
			canView: true,
		},
		{
			name:    "Student",
			role:    model.RoleStudent,
			canView: true,
		},
		{
			name:      "Admin",
			role:      model.RoleAdmin,
			canView:   true,
			canEdit:   true,
			canDelete: true,
			canAdd:    true,
		},
		{
			name:    "Unknown role",
			role:    "moderator",
			canView: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.role); got != tt.canView {
				t.Errorf("CanView(%q) = %v, want %v", tt.role, got, tt.canView)
			}
			if got := CanEdit(tt.role); got != tt.canEdit {
				t.Errorf("CanEdit(%q) = %v, want %v", tt.role, got, tt.canEdit)
			}
			if got := CanDelete(tt.role); got != tt.canDelete {
				t.Errorf("CanDelete(%q) = %v, want %v", tt.role, got, tt.canDelete)
			}
			if got := CanAdd(tt.role); got != tt.canAdd {
				t.Errorf("CanAdd(%q) = %v, want %v", tt.role, got, tt.canAdd)
			}
		})
	}
}
