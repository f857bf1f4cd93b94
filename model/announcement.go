package model

import "time"

// DateLayout is the calendar-date format announcements carry on the wire and
// in storage. Announcements have no time-of-day component.
const DateLayout = "2006-01-02"

type Announcement struct {
	ID        string    `bson:"_id,omitempty" json:"key"`
	Title     string    `bson:"title" json:"title"`
	Date      string    `bson:"date" json:"date"`
	HTML      string    `bson:"html" json:"html"`
	IsDraft   bool      `bson:"is_draft" json:"is_draft"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}
