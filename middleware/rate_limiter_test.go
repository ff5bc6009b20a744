package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T) (echo.MiddlewareFunc, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mw := RateLimiterMiddleware(RateLimiterConfig{
		MaxRequests:   5,
		Window:        time.Minute,
		BlockDuration: 15 * time.Minute,
		DB:            sqlx.NewDb(mockDB, "sqlite3"),
		Log:           logger.Nop(),
	})
	return mw, mock
}

func runLimited(t *testing.T, mw echo.MiddlewareFunc) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestRateLimiterFirstRequestPasses(t *testing.T) {
	mw, mock := newLimiter(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_count, first_request_time, blocked_until").
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	// Unknown IP rows insert and pass; a store failure must not.
	require.Error(t, runLimited(t, mw))

	mw, mock = newLimiter(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_count, first_request_time, blocked_until").
		WillReturnRows(sqlmock.NewRows([]string{"request_count", "first_request_time", "blocked_until"}))
	mock.ExpectExec("INSERT INTO ip_rate_limits").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, runLimited(t, mw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiterRejectsWhileBlocked(t *testing.T) {
	mw, mock := newLimiter(t)

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_count, first_request_time, blocked_until").
		WillReturnRows(sqlmock.NewRows([]string{"request_count", "first_request_time", "blocked_until"}).
			AddRow(6, now.Add(-10*time.Second), now.Add(10*time.Minute)))
	mock.ExpectCommit()

	err := runLimited(t, mw)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeRateLimitExceeded, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiterBlockedBranchSurfacesCommitFailure(t *testing.T) {
	mw, mock := newLimiter(t)

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_count, first_request_time, blocked_until").
		WillReturnRows(sqlmock.NewRows([]string{"request_count", "first_request_time", "blocked_until"}).
			AddRow(6, now.Add(-10*time.Second), now.Add(10*time.Minute)))
	mock.ExpectCommit().WillReturnError(sqlmock.ErrCancelled)

	err := runLimited(t, mw)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
