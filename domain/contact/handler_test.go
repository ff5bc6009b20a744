package contact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-cms/domain/site"
	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/mailer"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettings struct {
	settings site.Settings
	err      error
}

func (s stubSettings) Get(context.Context) (site.Settings, error) { return s.settings, s.err }

type recordingMailer struct {
	sent []mailer.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func submit(h *Handler, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Submit(e.NewContext(req, rec))
}

func TestSubmitDeliversMessage(t *testing.T) {
	settings := site.Default()
	settings.EnableContactForm = true
	m := &recordingMailer{}
	h := NewHandler(stubSettings{settings: settings}, m, logger.Nop())

	rec, err := submit(h, `{"name":"Visitor","email":"visitor@example.com","subject":"Hi","message":"Nice site"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "visitor@example.com", m.sent[0].Email)
	assert.Equal(t, "Nice site", m.sent[0].Body)
}

func TestSubmitRejectedWhenFormDisabled(t *testing.T) {
	settings := site.Default()
	settings.EnableContactForm = false
	m := &recordingMailer{}
	h := NewHandler(stubSettings{settings: settings}, m, logger.Nop())

	_, err := submit(h, `{"name":"Visitor","email":"visitor@example.com","message":"Hello"}`)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	assert.Equal(t, apperrors.ErrCodeFeatureDisabled, appErr.Code)
	assert.Empty(t, m.sent)
}

func TestSubmitValidatesInput(t *testing.T) {
	settings := site.Default()
	settings.EnableContactForm = true
	h := NewHandler(stubSettings{settings: settings}, &recordingMailer{}, logger.Nop())

	for name, body := range map[string]string{
		"missing name":    `{"email":"a@b.com","message":"hi"}`,
		"missing message": `{"name":"A","email":"a@b.com"}`,
		"bad email":       `{"name":"A","email":"not-an-email","message":"hi"}`,
		"blank message":   `{"name":"A","email":"a@b.com","message":"   "}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := submit(h, body)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}
