package handler

import (
	"net/http"

	"courseboard/dto"
	"courseboard/model"
	"courseboard/services"
	"courseboard/usecase"
	"courseboard/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *usecase.UserService
}

func NewAuthHandler(users *usecase.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register creates a student-role user, enrolls them, and signs them in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.Users.RegisterStudent(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if err.Error() == "email already exists" {
			utils.Conflict(c, "Email already exists")
			return
		}
		utils.BadRequest(c, "Invalid request")
		return
	}

	h.issueToken(c, user, "User registered successfully")
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	h.issueToken(c, user, "Login successful")
}

// issueToken returns the JWT and also sets it as a cookie so the HTML views
// see the same identity as API callers.
func (h *AuthHandler) issueToken(c *gin.Context, user *model.User, message string) {
	token, err := services.GenerateToken(user)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	c.SetCookie("auth_token", token, int(utils.JWTExpirationTime), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"token":   token,
		"role":    user.Role,
	})
}
