package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	store := NewStore(sqlx.NewDb(mockDB, "sqlite3"))
	return NewHandler(store, "test-secret", logger.Nop()), mock
}

func userRow(t *testing.T, email, password string) *sqlmock.Rows {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "password", "role_id", "token_version"}).
		AddRow(1, email, hashed, RoleAdmin, 0)
}

func login(h *Handler, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Login(e.NewContext(req, rec))
}

func TestLoginIssuesToken(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT \\* FROM users WHERE email =").
		WithArgs("admin@example.com").
		WillReturnRows(userRow(t, "admin@example.com", "correct-horse"))

	rec, err := login(h, `{"email":"admin@example.com","password":"correct-horse"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	// The password hash must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT \\* FROM users WHERE email =").
		WithArgs("admin@example.com").
		WillReturnRows(userRow(t, "admin@example.com", "correct-horse"))

	_, err := login(h, `{"email":"admin@example.com","password":"wrong"}`)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT \\* FROM users WHERE email =").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role_id", "token_version"}))

	_, err := login(h, `{"email":"ghost@example.com","password":"anything"}`)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, appErr.Code)
}

func TestCreateUserValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	for name, body := range map[string]string{
		"bad email":      `{"email":"nope","password":"longenough"}`,
		"short password": `{"email":"ok@example.com","password":"short"}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/users", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			err := h.Create(e.NewContext(req, rec))
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}
