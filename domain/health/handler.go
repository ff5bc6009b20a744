package health

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"portfolio-cms/config"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Database  string           `json:"database"`
	Timestamp string           `json:"timestamp"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// StatsResponse represents system statistics
type StatsResponse struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	Uptime       string `json:"uptime,omitempty"`
}

// DirReport describes one served asset directory for the diagnostic pages.
type DirReport struct {
	Configured string `json:"configured"`
	URL        string `json:"url"`
	Exists     bool   `json:"exists"`
	FileCount  int    `json:"file_count"`
	Error      string `json:"error,omitempty"`
}

var startTime = time.Now()

// Handler serves liveness and asset-directory diagnostics.
type Handler struct {
	db  *sqlx.DB
	cfg *config.Config
}

func NewHandler(db *sqlx.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// Health handles GET /health and /health/. The database probe runs a
// SELECT 1 so a broken schema surfaces the same way a dead socket does.
func (h *Handler) Health(c echo.Context) error {
	checks := make(map[string]Check)

	dbCheck := h.checkDatabase(c)
	checks["database"] = dbCheck

	status := "healthy"
	dbStatus := "connected"
	httpStatus := http.StatusOK
	if dbCheck.Status != "ok" {
		status = "unhealthy"
		dbStatus = "disconnected"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

// Stats handles GET /health/stats.
func (h *Handler) Stats(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return c.JSON(http.StatusOK, StatsResponse{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     m.Alloc,
		MemSys:       m.Sys,
		Uptime:       time.Since(startTime).Round(time.Second).String(),
	})
}

// StaticTest handles GET /static-test/ and reports the static asset setup.
func (h *Handler) StaticTest(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]DirReport{
		"static": inspectDir(h.cfg.StaticRoot, h.cfg.StaticURL),
	})
}

// MediaTest handles GET /media-test/ and reports the uploaded-media setup.
func (h *Handler) MediaTest(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]DirReport{
		"media": inspectDir(h.cfg.MediaRoot, h.cfg.MediaURL),
	})
}

func (h *Handler) checkDatabase(c echo.Context) Check {
	start := time.Now()

	var one int
	err := h.db.GetContext(c.Request().Context(), &one, "SELECT 1")
	latency := time.Since(start)

	if err != nil {
		return Check{
			Status:  "error",
			Message: "Database connection failed",
			Latency: latency.String(),
		}
	}
	return Check{Status: "ok", Latency: latency.String()}
}

func inspectDir(root, url string) DirReport {
	report := DirReport{Configured: root, URL: url}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return report
	}
	report.Exists = true

	err = filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			report.FileCount++
		}
		return nil
	})
	if err != nil {
		report.Error = err.Error()
	}
	return report
}
