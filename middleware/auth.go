package middleware

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"portfolio-cms/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenVersionSource reports the current token_version for a user so
// revoked sessions stop validating.
type TokenVersionSource interface {
	TokenVersion(ctx context.Context, id int64) (int64, error)
}

// JWTMiddleware validates the bearer token and puts user_id, email and
// role_id into the request context.
func JWTMiddleware(secret string, users TokenVersionSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Missing or invalid token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if len(strings.Split(tokenString, ".")) != 3 {
				return apperrors.NewUnauthorized(apperrors.ErrCodeTokenMalformed, "Malformed token")
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return apperrors.NewUnauthorized(apperrors.ErrCodeTokenExpired, "Invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Invalid token claims")
			}

			userIDClaim, ok := claims["user_id"].(float64)
			if !ok {
				return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Invalid token claims")
			}
			userID := int64(userIDClaim)

			c.Set("user_id", userID)
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
			if roleID, ok := claims["role_id"].(float64); ok {
				c.Set("role_id", int64(roleID))
			}

			if versionClaim, ok := claims["token_version"].(float64); ok {
				dbVersion, err := users.TokenVersion(c.Request().Context(), userID)
				if err != nil {
					if errors.Is(err, sql.ErrNoRows) {
						return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "User not found")
					}
					return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to validate session", err)
				}
				if int64(versionClaim) != dbVersion {
					return apperrors.NewUnauthorized(apperrors.ErrCodeTokenExpired, "Session revoked, please log in again")
				}
			}

			return next(c)
		}
	}
}
