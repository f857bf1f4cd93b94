package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"courseboard/dto"
	"courseboard/model"
	"courseboard/usecase"

	"github.com/gin-gonic/gin"
)

func newItemRouter(h *AnnouncementItemHandler, role string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	})
	router.GET("/rest/announcements/item", h.Get)
	router.PUT("/rest/announcements/item", h.Put)
	return router
}

func getItem(router *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/rest/announcements/item?key="+url.QueryEscape(key), nil))
	return w
}

func putItem(router *gin.Engine, request string) *httptest.ResponseRecorder {
	form := url.Values{"request": {request}}
	req := httptest.NewRequest(http.MethodPut, "/rest/announcements/item",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Envelope {
	t.Helper()
	var env dto.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v (body %s)", err, w.Body.String())
	}
	return env
}

func TestItemGetNotFound(t *testing.T) {
	store := newFakeStore()
	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, "")

	tests := []struct {
		name string
		key  string
	}{
		{name: "Malformed key", key: "garbage"},
		{name: "Empty key", key: ""},
		{name: "Unknown key", key: "7d444840-9dc0-11d1-b245-5ffdce74fad2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getItem(router, tt.key)
			if w.Code != http.StatusOK {
				t.Fatalf("HTTP status = %d, want %d", w.Code, http.StatusOK)
			}
			env := decodeEnvelope(t, w)
			if env.Status != http.StatusNotFound {
				t.Errorf("envelope status = %d, want %d", env.Status, http.StatusNotFound)
			}
			if env.Message != "Object not found." {
				t.Errorf("message = %q, want Object not found.", env.Message)
			}
			var payload map[string]string
			if err := json.Unmarshal([]byte(env.Payload), &payload); err != nil {
				t.Fatalf("payload did not decode: %v", err)
			}
			if payload["key"] != tt.key {
				t.Errorf("payload key = %q, want %q", payload["key"], tt.key)
			}
		})
	}
}

func TestItemGetSuccess(t *testing.T) {
	store := newFakeStore()
	item := &model.Announcement{Title: "Public Notice", Date: "2026-02-01", HTML: "body"}
	if err := store.CreateAnnouncement(context.Background(), item); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, "")

	w := getItem(router, item.ID)
	env := decodeEnvelope(t, w)
	if env.Status != http.StatusOK || env.Message != "Success." {
		t.Fatalf("envelope = %d %q, want 200 Success.", env.Status, env.Message)
	}

	var payload dto.AnnouncementPayload
	if err := json.Unmarshal([]byte(env.Payload), &payload); err != nil {
		t.Fatalf("payload did not decode: %v", err)
	}
	if payload.Key != item.ID || *payload.Title != "Public Notice" {
		t.Errorf("payload = %+v, want the stored record", payload)
	}
}

func TestItemPutRequiresEditRights(t *testing.T) {
	store := newFakeStore()
	item := &model.Announcement{Title: "Original", Date: "2026-02-01", HTML: "body"}
	if err := store.CreateAnnouncement(context.Background(), item); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, model.RoleStudent)

	request, _ := json.Marshal(dto.ItemRequest{
		Key:     item.ID,
		Payload: `{"title":"Hacked"}`,
	})
	w := putItem(router, string(request))

	env := decodeEnvelope(t, w)
	if env.Status != http.StatusUnauthorized {
		t.Errorf("envelope status = %d, want %d", env.Status, http.StatusUnauthorized)
	}
	if env.Message != "Access denied." {
		t.Errorf("message = %q, want Access denied.", env.Message)
	}
	if store.items[item.ID].Title != "Original" {
		t.Error("record changed despite denied access")
	}
}

func TestItemPutUnknownKey(t *testing.T) {
	store := newFakeStore()
	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, model.RoleAdmin)

	request, _ := json.Marshal(dto.ItemRequest{
		Key:     "7d444840-9dc0-11d1-b245-5ffdce74fad2",
		Payload: `{"title":"X"}`,
	})
	env := decodeEnvelope(t, putItem(router, string(request)))
	if env.Status != http.StatusNotFound {
		t.Errorf("envelope status = %d, want %d", env.Status, http.StatusNotFound)
	}
}

func TestItemPutMalformedRequest(t *testing.T) {
	store := newFakeStore()
	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, model.RoleAdmin)

	if w := putItem(router, "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("malformed request status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestItemPutRejectsBadDate(t *testing.T) {
	store := newFakeStore()
	item := &model.Announcement{Title: "Original", Date: "2026-02-01", HTML: "body"}
	if err := store.CreateAnnouncement(context.Background(), item); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	router := newItemRouter(h, model.RoleAdmin)

	request, _ := json.Marshal(dto.ItemRequest{
		Key:     item.ID,
		Payload: `{"date":"yesterday"}`,
	})
	if w := putItem(router, string(request)); w.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if store.items[item.ID].Date != "2026-02-01" {
		t.Error("record changed despite invalid date")
	}
}

func TestItemPutGetRoundTrip(t *testing.T) {
	store := newFakeStore()
	item := &model.Announcement{Title: "Original", Date: "2026-02-01", HTML: "body", IsDraft: true}
	if err := store.CreateAnnouncement(context.Background(), item); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := NewAnnouncementItemHandler(&usecase.AnnouncementsService{Store: store})
	admin := newItemRouter(h, model.RoleAdmin)

	fields := map[string]interface{}{
		"title":    "X",
		"date":     "2020-01-01",
		"html":     "Y",
		"is_draft": false,
	}
	payload, _ := json.Marshal(fields)
	request, _ := json.Marshal(dto.ItemRequest{Key: item.ID, Payload: string(payload)})

	env := decodeEnvelope(t, putItem(admin, string(request)))
	if env.Status != http.StatusOK || env.Message != "Saved." {
		t.Fatalf("envelope = %d %q, want 200 Saved.", env.Status, env.Message)
	}

	env = decodeEnvelope(t, getItem(admin, item.ID))
	if env.Status != http.StatusOK {
		t.Fatalf("get envelope status = %d, want 200", env.Status)
	}
	var got dto.AnnouncementPayload
	if err := json.Unmarshal([]byte(env.Payload), &got); err != nil {
		t.Fatalf("payload did not decode: %v", err)
	}
	if *got.Title != "X" || *got.Date != "2020-01-01" || *got.HTML != "Y" || *got.IsDraft {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
