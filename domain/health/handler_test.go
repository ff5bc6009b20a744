package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlite3")
	return NewHandler(db, &config.Config{}), mock
}

func healthCheck(t *testing.T, h *Handler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.Health(c))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHealthReportsHealthy(t *testing.T) {
	h, mock := newMockHandler(t)
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	rec, resp := healthCheck(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, "ok", resp.Checks["database"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthReportsUnhealthyWhenDatabaseIsDown(t *testing.T) {
	h, mock := newMockHandler(t)
	mock.ExpectQuery("SELECT 1").
		WillReturnError(errors.New("connection refused"))

	rec, resp := healthCheck(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "disconnected", resp.Database)
	assert.Equal(t, "error", resp.Checks["database"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
