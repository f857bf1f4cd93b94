package dto

import "courseboard/model"

// SchemaFields is the whitelist of announcement fields the REST surface and
// the form editor may read or write. Anything outside this set is dropped on
// the floor rather than applied to the record.
var SchemaFields = []string{"key", "title", "date", "html", "is_draft"}

// AnnouncementPayload is the wire form of an announcement. Mutable fields are
// pointers so a PUT can carry a partial field set; absent fields leave the
// stored record untouched.
type AnnouncementPayload struct {
	Key     string  `json:"key,omitempty"`
	Title   *string `json:"title,omitempty"`
	Date    *string `json:"date,omitempty" validate:"omitempty,dateformat"`
	HTML    *string `json:"html,omitempty"`
	IsDraft *bool   `json:"is_draft,omitempty"`
}

// ItemRequest is the body of a REST PUT: the record key plus the payload,
// which is itself a JSON-encoded string.
type ItemRequest struct {
	Key     string `json:"key"`
	Payload string `json:"payload"`
}

// Envelope is the fixed REST response wrapper. Payload, when present, is a
// JSON-encoded string rather than a nested object; clients decode it a
// second time.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Payload string `json:"payload,omitempty"`
}

// FromAnnouncement maps a stored record onto the schema field set.
func FromAnnouncement(a *model.Announcement) *AnnouncementPayload {
	return &AnnouncementPayload{
		Key:     a.ID,
		Title:   &a.Title,
		Date:    &a.Date,
		HTML:    &a.HTML,
		IsDraft: &a.IsDraft,
	}
}

// ApplyTo copies the fields present in the payload onto the record. The key
// is never applied; it identifies the record and is assigned exactly once.
func (p *AnnouncementPayload) ApplyTo(a *model.Announcement) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.HTML != nil {
		a.HTML = *p.HTML
	}
	if p.IsDraft != nil {
		a.IsDraft = *p.IsDraft
	}
}
