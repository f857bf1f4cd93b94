package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginPage renders the sign-in form. The continue parameter carries the URL
// the visitor was heading to.
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"continue": c.DefaultQuery("continue", "/announcements"),
	})
}

// PreviewPage is where authenticated but unenrolled visitors land.
func PreviewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "preview.html", gin.H{
		"navbar": gin.H{"course": true},
	})
}
