package handler

import (
	"context"
	"net/http"
	"time"

	"courseboard/repository"
	"courseboard/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Announcements *repository.AnnouncementsRepo
}

func NewHealthHandler(announcements *repository.AnnouncementsRepo) *HealthHandler {
	return &HealthHandler{Announcements: announcements}
}

// Health reports liveness, database reachability, content volume, and
// process-level system usage.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if utils.MongoClient == nil {
		dbStatus = "not configured"
	} else if err := utils.MongoClient.Ping(ctx, nil); err != nil {
		dbStatus = "unreachable"
	}

	var count int64 = -1
	if dbStatus == "ok" && h.Announcements != nil {
		if n, err := h.Announcements.CountAnnouncements(ctx); err == nil {
			count = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"database":       dbStatus,
		"announcements":  count,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
