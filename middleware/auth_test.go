package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVersions struct {
	version int64
	err     error
}

func (s stubVersions) TokenVersion(ctx context.Context, id int64) (int64, error) {
	return s.version, s.err
}

func runAuth(t *testing.T, authHeader string, versions TokenVersionSource) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/skills", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := JWTMiddleware("test-secret", versions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestJWTMiddlewarePopulatesContext(t *testing.T) {
	token, err := utils.GenerateJWT("test-secret", 42, "admin@example.com", 0, 3)
	require.NoError(t, err)

	c, err := runAuth(t, "Bearer "+token, stubVersions{version: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(42), c.Get("user_id"))
	assert.Equal(t, "admin@example.com", c.Get("email"))
	assert.Equal(t, int64(0), c.Get("role_id"))
}

func TestJWTMiddlewareRejectsRevokedSession(t *testing.T) {
	token, err := utils.GenerateJWT("test-secret", 42, "admin@example.com", 0, 3)
	require.NoError(t, err)

	// Password change bumped the stored version past the token's.
	_, err = runAuth(t, "Bearer "+token, stubVersions{version: 4})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeTokenExpired, appErr.Code)
}

func TestJWTMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("other-secret", 42, "admin@example.com", 0, 3)
	require.NoError(t, err)

	_, err = runAuth(t, "Bearer "+token, stubVersions{version: 3})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
}

func TestJWTMiddlewareRejectsMissingAndMalformedTokens(t *testing.T) {
	for name, header := range map[string]string{
		"missing header": "",
		"no bearer":      "Basic abc",
		"two segments":   "Bearer aaaa.bbbb",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := runAuth(t, header, stubVersions{})

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus)
		})
	}
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/skills", nil), httptest.NewRecorder())
	c.Set("role_id", int64(1))

	err := AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/skills", nil), rec)
	c.Set("role_id", int64(0))

	require.NoError(t, AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
