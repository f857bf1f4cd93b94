package utils

import (
	"encoding/json"
	"net/http"

	"courseboard/dto"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{
		Status: http.StatusOK,
		Data:   data,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{
		Status: http.StatusConflict,
		Error:  message,
	})
}

// SendEnvelope writes the fixed REST envelope with HTTP 200; the semantic
// status travels in the envelope itself. A non-nil payload is JSON-encoded
// into a string, not nested.
func SendEnvelope(c *gin.Context, status int, message string, payload interface{}) {
	env := dto.Envelope{Status: status, Message: message}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			InternalError(c, "Failed to encode payload")
			return
		}
		env.Payload = string(data)
	}
	c.JSON(http.StatusOK, env)
}
