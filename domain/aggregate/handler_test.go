package aggregate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/domain/site"
	"portfolio-cms/domain/theme"
	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeEndpointSuccess(t *testing.T) {
	svc := newTestService(stubThemes{theme: theme.Default()}, stubSettings{settings: site.Default()}, stubContent{})
	h := NewHandler(svc, logger.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/theme/", nil)
	rec := httptest.NewRecorder()

	err := h.Theme(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"colors", "typography", "layout", "animations", "custom_css",
		"site", "personal", "skills", "projects", "experience", "education"} {
		assert.Contains(t, body, key)
	}
}

func TestThemeEndpointFailureShape(t *testing.T) {
	svc := newTestService(stubThemes{err: errors.New("db gone")}, stubSettings{}, stubContent{})
	h := NewHandler(svc, logger.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/theme/", nil)
	rec := httptest.NewRecorder()

	err := h.Theme(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "db gone")
}
