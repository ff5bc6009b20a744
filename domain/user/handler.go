package user

import (
	"database/sql"
	"errors"
	"net/http"
	"net/mail"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/utils"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	store     *Store
	jwtSecret string
	log       logger.Logger
}

func NewHandler(store *Store, jwtSecret string, log logger.Logger) *Handler {
	return &Handler{store: store, jwtSecret: jwtSecret, log: log.WithComponent("user")}
}

// Login handles POST /admin/login. Invalid email and invalid password
// return the same error so the endpoint does not leak which accounts exist.
func (h *Handler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}

	u, err := h.store.ByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, "Invalid email or password")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to look up user", err)
	}

	if !utils.CheckPasswordHash(req.Password, u.Password) {
		h.log.Warn("Failed login attempt", logger.String("email", req.Email), logger.RemoteIP(c.RealIP()))
		return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, "Invalid email or password")
	}

	token, err := utils.GenerateJWT(h.jwtSecret, u.ID, u.Email, int64(u.RoleID), u.TokenVersion)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to issue token", err)
	}

	h.log.Info("User logged in", logger.UserID(u.ID))
	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: u})
}

// Logout handles POST /admin/logout. Bumping token_version revokes the
// presented token and any others issued before it.
func (h *Handler) Logout(c echo.Context) error {
	userID := c.Get("user_id").(int64)
	if err := h.store.BumpTokenVersion(c.Request().Context(), userID); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to log out", err)
	}
	h.log.Info("User logged out", logger.UserID(userID))
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// Create handles POST /admin/users.
func (h *Handler) Create(c echo.Context) error {
	req := new(CreateUserRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "A valid email is required")
	}
	if len(req.Password) < 8 {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to hash password", err)
	}

	id, err := h.store.Create(c.Request().Context(), req.Email, hashed, req.RoleID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to create user", err)
	}

	h.log.Info("User created", logger.UserID(id), logger.String("email", req.Email))
	return c.JSON(http.StatusCreated, map[string]interface{}{"id": id, "email": req.Email})
}

// ChangePassword handles POST /admin/users/password for the current user.
func (h *Handler) ChangePassword(c echo.Context) error {
	userID := c.Get("user_id").(int64)

	req := new(ChangePasswordRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if len(req.NewPassword) < 8 {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Password must be at least 8 characters")
	}

	u, err := h.store.ByID(c.Request().Context(), userID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to look up user", err)
	}
	if !utils.CheckPasswordHash(req.OldPassword, u.Password) {
		return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, "The current password is incorrect")
	}
	if req.OldPassword == req.NewPassword {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed,
			"The new password cannot be the same as the old password")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to hash password", err)
	}
	if err := h.store.UpdatePassword(c.Request().Context(), userID, hashed); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update password", err)
	}

	h.log.Info("Password changed", logger.UserID(userID))
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated"})
}
