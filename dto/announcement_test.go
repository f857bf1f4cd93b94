package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"courseboard/model"
)

func TestFromAnnouncement(t *testing.T) {
	a := &model.Announcement{
		ID:      "abc",
		Title:   "Title",
		Date:    "2020-01-01",
		HTML:    "Body",
		IsDraft: true,
	}

	p := FromAnnouncement(a)
	if p.Key != "abc" {
		t.Errorf("Key = %q, want abc", p.Key)
	}
	if p.Title == nil || *p.Title != "Title" {
		t.Errorf("Title = %v, want Title", p.Title)
	}
	if p.Date == nil || *p.Date != "2020-01-01" {
		t.Errorf("Date = %v, want 2020-01-01", p.Date)
	}
	if p.HTML == nil || *p.HTML != "Body" {
		t.Errorf("HTML = %v, want Body", p.HTML)
	}
	if p.IsDraft == nil || !*p.IsDraft {
		t.Errorf("IsDraft = %v, want true", p.IsDraft)
	}
}

func TestApplyToPartialUpdate(t *testing.T) {
	a := &model.Announcement{
		ID:      "abc",
		Title:   "Old title",
		Date:    "2020-01-01",
		HTML:    "Old body",
		IsDraft: true,
	}

	title := "New title"
	p := &AnnouncementPayload{Key: "other-key", Title: &title}
	p.ApplyTo(a)

	if a.Title != "New title" {
		t.Errorf("Title = %q, want New title", a.Title)
	}
	if a.ID != "abc" {
		t.Errorf("ID changed to %q; the key must never be applied", a.ID)
	}
	if a.Date != "2020-01-01" || a.HTML != "Old body" || !a.IsDraft {
		t.Error("fields absent from the payload were modified")
	}
}

func TestApplyToIgnoresUnknownFields(t *testing.T) {
	var p AnnouncementPayload
	raw := `{"title":"T","author":"nobody","secret":true}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	a := &model.Announcement{ID: "abc"}
	p.ApplyTo(a)
	if a.Title != "T" {
		t.Errorf("Title = %q, want T", a.Title)
	}
}

func TestEnvelopePayloadIsDoubleEncoded(t *testing.T) {
	env := Envelope{
		Status:  200,
		Message: "Success.",
		Payload: `{"key":"abc"}`,
	}

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The payload must be a JSON string, not a nested object.
	if !strings.Contains(string(data), `"payload":"{\"key\":\"abc\"}"`) {
		t.Errorf("payload is not a JSON-encoded string: %s", data)
	}

	var decoded struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Payload string `json:"payload"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	var inner map[string]interface{}
	if err := json.Unmarshal([]byte(decoded.Payload), &inner); err != nil {
		t.Fatalf("payload did not decode a second time: %v", err)
	}
	if inner["key"] != "abc" {
		t.Errorf("inner key = %v, want abc", inner["key"])
	}
}

func TestEnvelopeOmitsEmptyPayload(t *testing.T) {
	data, err := json.Marshal(Envelope{Status: 200, Message: "Saved."})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "payload") {
		t.Errorf("empty payload was serialized: %s", data)
	}
}
