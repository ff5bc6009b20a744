package middleware

import (
	"portfolio-cms/domain/user"
	"portfolio-cms/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// AdminOnly rejects requests whose token does not carry the admin role.
// Must run after JWTMiddleware.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roleID, ok := c.Get("role_id").(int64)
		if !ok || roleID != user.RoleAdmin {
			return apperrors.NewForbidden(apperrors.ErrCodeForbidden, "Access denied")
		}
		return next(c)
	}
}
