package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token for a back-office user. The token
// carries token_version so sessions can be revoked server-side.
func GenerateJWT(secret string, userID int64, email string, roleID int64, tokenVersion int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id":       userID,
		"email":         email,
		"role_id":       roleID,
		"token_version": tokenVersion,
		"exp":           time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
