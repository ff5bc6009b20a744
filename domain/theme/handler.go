package theme

import (
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// maxCustomCSS bounds the free-form stylesheet a theme may carry.
const maxCustomCSS = 20000

// Handler exposes back-office CRUD for themes.
type Handler struct {
	store *Store
	log   logger.Logger
}

func NewHandler(store *Store, log logger.Logger) *Handler {
	return &Handler{store: store, log: log.WithComponent("theme")}
}

func (h *Handler) List(c echo.Context) error {
	themes, err := h.store.List(c.Request().Context())
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to list themes", err)
	}
	return apperrors.RespondWithSuccess(c, themes)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid theme id")
	}
	t, err := h.store.Get(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(apperrors.ErrCodeThemeNotFound, "Theme not found")
	}
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch theme", err)
	}
	return apperrors.RespondWithSuccess(c, t)
}

func (h *Handler) Create(c echo.Context) error {
	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := validate(req); appErr != nil {
		return appErr
	}

	t := fromRequest(req)
	if err := h.store.Save(c.Request().Context(), &t); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to create theme", err)
	}
	h.log.Info("Theme created", logger.RecordID(t.ID), logger.Bool("active", t.IsActive))
	return apperrors.RespondWithCreated(c, t)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid theme id")
	}
	if _, err := h.store.Get(c.Request().Context(), id); errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(apperrors.ErrCodeThemeNotFound, "Theme not found")
	} else if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch theme", err)
	}

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := validate(req); appErr != nil {
		return appErr
	}

	t := fromRequest(req)
	t.ID = id
	if err := h.store.Save(c.Request().Context(), &t); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update theme", err)
	}
	h.log.Info("Theme updated", logger.RecordID(t.ID), logger.Bool("active", t.IsActive))
	return apperrors.RespondWithSuccess(c, t)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid theme id")
	}
	err = h.store.Delete(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(apperrors.ErrCodeThemeNotFound, "Theme not found")
	}
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to delete theme", err)
	}
	h.log.Info("Theme deleted", logger.RecordID(id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Theme deleted"})
}

func validate(req *SaveRequest) *apperrors.AppError {
	colors := map[string]string{
		"primary_color":    req.PrimaryColor,
		"secondary_color":  req.SecondaryColor,
		"accent_color":     req.AccentColor,
		"background_color": req.BackgroundColor,
		"text_color":       req.TextColor,
		"card_color":       req.CardColor,
	}
	for field, value := range colors {
		if value != "" && !hexColor.MatchString(value) {
			return apperrors.NewBadRequest(apperrors.ErrCodeInvalidColor,
				"Color values must be #RRGGBB").WithDetail(field)
		}
	}
	if len(req.CustomCSS) > maxCustomCSS {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed,
			"Custom CSS is too large").WithDetail("custom_css")
	}
	return nil
}

// fromRequest builds a Theme, substituting bootstrap defaults for any
// blank field so a sparse admin payload still yields a renderable theme.
func fromRequest(req *SaveRequest) Theme {
	t := Default()
	t.IsActive = req.IsActive
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.PrimaryColor != "" {
		t.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		t.SecondaryColor = req.SecondaryColor
	}
	if req.AccentColor != "" {
		t.AccentColor = req.AccentColor
	}
	if req.BackgroundColor != "" {
		t.BackgroundColor = req.BackgroundColor
	}
	if req.TextColor != "" {
		t.TextColor = req.TextColor
	}
	if req.CardColor != "" {
		t.CardColor = req.CardColor
	}
	if req.FontFamily != "" {
		t.FontFamily = req.FontFamily
	}
	if req.HeadingFont != "" {
		t.HeadingFont = req.HeadingFont
	}
	if req.FontSizeBase > 0 {
		t.FontSizeBase = req.FontSizeBase
	}
	if req.SidebarWidth > 0 {
		t.SidebarWidth = req.SidebarWidth
	}
	if req.BorderRadius > 0 {
		t.BorderRadius = req.BorderRadius
	}
	if req.SpacingUnit > 0 {
		t.SpacingUnit = req.SpacingUnit
	}
	t.EnableAnimations = req.EnableAnimations
	if req.AnimationSpeed > 0 {
		t.AnimationSpeed = req.AnimationSpeed
	}
	t.EnableStars = req.EnableStars
	t.CustomCSS = req.CustomCSS
	return t
}
