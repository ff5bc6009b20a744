package site

import (
	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Handler exposes back-office access to the site-settings singleton.
// There is deliberately no delete endpoint: the settings row is
// permanent once created.
type Handler struct {
	store *Store
	log   logger.Logger
}

func NewHandler(store *Store, log logger.Logger) *Handler {
	return &Handler{store: store, log: log.WithComponent("site")}
}

func (h *Handler) Get(c echo.Context) error {
	settings, err := h.store.Get(c.Request().Context())
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to load site settings", err)
	}
	return apperrors.RespondWithSuccess(c, settings)
}

// Save handles both create and update. A create attempt when settings
// already exist returns the existing row with its data untouched.
func (h *Handler) Save(c echo.Context) error {
	req := new(Settings)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}

	saved, err := h.store.Save(c.Request().Context(), *req)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to save site settings", err)
	}
	h.log.Info("Site settings saved", logger.RecordID(saved.ID))
	return apperrors.RespondWithSuccess(c, saved)
}
