package aggregate

import (
	"net/http"

	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Handler serves the public surface: the theme payload and the
// server-rendered landing page.
type Handler struct {
	svc *Service
	log logger.Logger
}

func NewHandler(svc *Service, log logger.Logger) *Handler {
	return &Handler{svc: svc, log: log.WithComponent("public")}
}

// Theme serves the aggregated payload. Failures return a bare
// {"error": message} body with status 500; frontends key off that shape.
func (h *Handler) Theme(c echo.Context) error {
	v, err := h.svc.Build(c.Request().Context())
	if err != nil {
		h.log.Error("Theme payload build failed", err,
			logger.Path(c.Request().URL.Path),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}

// Home renders the landing page with the aggregated view and skills
// grouped by category for the template.
func (h *Handler) Home(c echo.Context) error {
	v, err := h.svc.Build(c.Request().Context())
	if err != nil {
		h.log.Error("Landing page build failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to load page")
	}
	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"View":         v,
		"SkillBuckets": SkillBuckets(v.Skills),
	})
}

// About is a minimal static page.
func (h *Handler) About(c echo.Context) error {
	return c.HTML(http.StatusOK, "<h1>About</h1>")
}
