package handler

import (
	"context"
	"html/template"
	"net/http"

	"courseboard/dto"
	"courseboard/model"
	"courseboard/services"
	"courseboard/usecase"
	"courseboard/utils"

	"github.com/gin-gonic/gin"
)

// StudentLookup is the enrollment check the list view performs.
type StudentLookup interface {
	GetEnrolledStudentByEmail(ctx context.Context, email string) (*model.Student, error)
}

// AnnouncementsHandler serves the HTML list and edit views and the add and
// delete form actions.
type AnnouncementsHandler struct {
	Service  *usecase.AnnouncementsService
	Students StudentLookup
}

func NewAnnouncementsHandler(service *usecase.AnnouncementsService, students StudentLookup) *AnnouncementsHandler {
	return &AnnouncementsHandler{Service: service, Students: students}
}

const defaultGetAction = "list"

// Actions dispatch through fixed allow-lists; anything outside them is 404.
func (h *AnnouncementsHandler) getActions() map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		"list": h.getList,
		"edit": h.getEdit,
	}
}

func (h *AnnouncementsHandler) postActions() map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		"add":    h.postAdd,
		"delete": h.postDelete,
	}
}

// Get routes GET /announcements by the action query parameter.
func (h *AnnouncementsHandler) Get(c *gin.Context) {
	action := c.Query("action")
	if action == "" {
		action = defaultGetAction
	}

	fn, ok := h.getActions()[action]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	fn(c)
}

// Post routes POST /announcements by the action form field.
func (h *AnnouncementsHandler) Post(c *gin.Context) {
	fn, ok := h.postActions()[c.PostForm("action")]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	fn(c)
}

func (h *AnnouncementsHandler) getList(c *gin.Context) {
	email := c.GetString("email")
	role := c.GetString("role")

	if email == "" {
		c.Redirect(http.StatusFound, utils.LoginURL(c.Request.URL.RequestURI()))
		return
	}

	// Admins are treated as enrolled; everyone else needs a student record.
	if !services.CanEdit(role) {
		student, err := h.Students.GetEnrolledStudentByEmail(c.Request.Context(), email)
		if err != nil {
			utils.InternalError(c, "Failed to check enrollment")
			return
		}
		if student == nil {
			c.Redirect(http.StatusFound, utils.CanonicalizeURL("/preview"))
			return
		}
	}

	items, err := h.Service.ListForViewer(c.Request.Context(), role)
	if err != nil {
		utils.InternalError(c, "Failed to load announcements")
		return
	}

	c.HTML(http.StatusOK, "announcements.html", gin.H{
		"announcements": h.formatItemsForTemplate(items, role),
		"navbar":        gin.H{"announcements": true},
	})
}

// formatItemsForTemplate shapes records for the list template, annotating
// each row with edit and delete action URLs for editors.
func (h *AnnouncementsHandler) formatItemsForTemplate(items []*model.Announcement, role string) gin.H {
	editor := services.CanEdit(role)

	children := make([]gin.H, 0, len(items))
	for _, item := range items {
		row := gin.H{
			"key":      item.ID,
			"title":    item.Title,
			"date":     item.Date,
			"html":     template.HTML(item.HTML),
			"is_draft": item.IsDraft,
		}
		if editor {
			row["edit_action"] = utils.ActionURL("edit", item.ID)
			row["delete_action"] = utils.ActionURL("delete", item.ID)
		}
		children = append(children, row)
	}

	output := gin.H{"children": children}
	if editor {
		output["add_action"] = utils.ActionURL("add", "")
	}
	return output
}

func (h *AnnouncementsHandler) getEdit(c *gin.Context) {
	if !services.CanEdit(c.GetString("role")) {
		c.Status(http.StatusUnauthorized)
		return
	}

	key := c.Query("key")
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"key":      key,
		"schema":   dto.SchemaFields,
		"rest_url": utils.CanonicalizeURL("/rest/announcements/item"),
		"exit_url": utils.EditExitURL(key),
		"navbar":   gin.H{"announcements": true},
	})
}

func (h *AnnouncementsHandler) postAdd(c *gin.Context) {
	if !services.CanAdd(c.GetString("role")) {
		c.Status(http.StatusUnauthorized)
		return
	}

	item, err := h.Service.CreateDraft(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to create announcement")
		return
	}

	c.Redirect(http.StatusFound, utils.ActionURL("edit", item.ID))
}

func (h *AnnouncementsHandler) postDelete(c *gin.Context) {
	if !services.CanDelete(c.GetString("role")) {
		c.Status(http.StatusUnauthorized)
		return
	}

	if err := h.Service.Delete(c.Request.Context(), c.PostForm("key")); err != nil {
		utils.InternalError(c, "Failed to delete announcement")
		return
	}

	c.Redirect(http.StatusFound, utils.CanonicalizeURL("/announcements"))
}
