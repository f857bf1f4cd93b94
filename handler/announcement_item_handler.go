package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"courseboard/dto"
	"courseboard/repository"
	"courseboard/services"
	"courseboard/usecase"
	"courseboard/utils"

	"github.com/gin-gonic/gin"
)

// AnnouncementItemHandler is the REST endpoint for a single announcement.
// Responses are always the fixed envelope; the semantic status travels in
// the envelope, not the HTTP status line.
type AnnouncementItemHandler struct {
	Service *usecase.AnnouncementsService
}

func NewAnnouncementItemHandler(service *usecase.AnnouncementsService) *AnnouncementItemHandler {
	return &AnnouncementItemHandler{Service: service}
}

// Get returns one record as a double-encoded JSON payload.
func (h *AnnouncementItemHandler) Get(c *gin.Context) {
	key := c.Query("key")

	item, err := h.Service.Get(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.SendEnvelope(c, http.StatusNotFound, "Object not found.", gin.H{"key": key})
			return
		}
		utils.SendEnvelope(c, http.StatusInternalServerError, "Internal error.", gin.H{"key": key})
		return
	}

	utils.SendEnvelope(c, http.StatusOK, "Success.", dto.FromAnnouncement(item))
}

// Put updates a record from a form field carrying
// {"key": ..., "payload": "<json string>"}.
func (h *AnnouncementItemHandler) Put(c *gin.Context) {
	var req dto.ItemRequest
	if err := json.Unmarshal([]byte(c.PostForm("request")), &req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if !services.CanEdit(c.GetString("role")) {
		utils.SendEnvelope(c, http.StatusUnauthorized, "Access denied.", gin.H{"key": req.Key})
		return
	}

	item, err := h.Service.Get(c.Request.Context(), req.Key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.SendEnvelope(c, http.StatusNotFound, "Object not found.", gin.H{"key": req.Key})
			return
		}
		utils.SendEnvelope(c, http.StatusInternalServerError, "Internal error.", gin.H{"key": req.Key})
		return
	}

	var payload dto.AnnouncementPayload
	if err := json.Unmarshal([]byte(req.Payload), &payload); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := utils.Validate.Struct(&payload); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	payload.ApplyTo(item)
	if err := h.Service.Update(c.Request.Context(), item); err != nil {
		utils.SendEnvelope(c, http.StatusInternalServerError, "Internal error.", gin.H{"key": req.Key})
		return
	}

	utils.SendEnvelope(c, http.StatusOK, "Saved.", nil)
}
