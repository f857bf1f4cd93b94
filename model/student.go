package model

import "time"

// Student is the enrollment record checked before a viewer may see the
// announcements list. A user without an enrolled student record is sent to
// the course preview page instead.
type Student struct {
	Email      string    `bson:"email" json:"email"`
	Name       string    `bson:"name" json:"name"`
	Enrolled   bool      `bson:"enrolled" json:"enrolled"`
	EnrolledAt time.Time `bson:"enrolled_at" json:"-"`
}
