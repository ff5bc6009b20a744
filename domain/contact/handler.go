package contact

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"portfolio-cms/domain/site"
	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/mailer"

	"github.com/labstack/echo/v4"
)

// SettingsSource reports whether the contact form is enabled.
type SettingsSource interface {
	Get(ctx context.Context) (site.Settings, error)
}

type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Handler struct {
	settings SettingsSource
	mailer   mailer.Mailer
	log      logger.Logger
}

func NewHandler(settings SettingsSource, m mailer.Mailer, log logger.Logger) *Handler {
	return &Handler{settings: settings, mailer: m, log: log.WithComponent("contact")}
}

// Submit handles POST /api/contact/. The endpoint is a no-op 403 when
// the owner has switched the form off in site settings.
func (h *Handler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to load site settings", err)
	}
	if !settings.EnableContactForm {
		return apperrors.NewForbidden(apperrors.ErrCodeFeatureDisabled, "The contact form is disabled")
	}

	req := new(Request)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Name and message are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "A valid email is required")
	}

	msg := mailer.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		h.log.Error("Contact mail delivery failed", err, logger.String("from", req.Email))
		return apperrors.NewInternal(apperrors.ErrCodeMailerError, "Failed to deliver your message", err)
	}

	h.log.Info("Contact message delivered", logger.String("from", req.Email))
	return c.JSON(http.StatusOK, map[string]string{"message": "Your message has been sent"})
}
