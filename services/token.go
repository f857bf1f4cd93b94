package services

import (
	"time"

	"courseboard/model"
	"courseboard/utils"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer names this service in issued tokens.
const TokenIssuer = "courseboard"

// GenerateToken signs a JWT carrying the user's identity and role.
func GenerateToken(user *model.User) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    user.Role,
		"iss":     TokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}
