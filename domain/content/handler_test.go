package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()
	store, mock := newMockStore(t)
	return NewHandler(store, logger.Nop()), mock
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireBadRequest(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	return appErr
}

func TestCreateSkillRejectsProficiencyOutOfRange(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	for _, body := range []string{
		`{"name":"HTML","proficiency":101}`,
		`{"name":"HTML","proficiency":-5}`,
	} {
		c, _ := postJSON(e, "/admin/skills", body)
		err := h.CreateSkill(c)
		requireBadRequest(t, err)
	}
}

func TestCreateSkillDefaultsCategory(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	mock.ExpectExec("INSERT INTO skills").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, rec := postJSON(e, "/admin/skills", `{"name":"HTML","proficiency":90,"is_active":true}`)
	require.NoError(t, h.CreateSkill(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created Skill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, CategoryFrontend, created.Category)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateTestimonialRejectsBadRating(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	for _, body := range []string{
		`{"name":"A Client","text":"Great","date":"2024-01-01","rating":0}`,
		`{"name":"A Client","text":"Great","date":"2024-01-01","rating":6}`,
	} {
		c, _ := postJSON(e, "/admin/testimonials", body)
		err := h.CreateTestimonial(c)
		appErr := requireBadRequest(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidRating, appErr.Code)
	}
}

func TestCreateExperienceRejectsBadDate(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := postJSON(e, "/admin/experiences", `{"title":"Dev","company":"Acme","start_date":"01/07/2022"}`)
	err := h.CreateExperience(c)
	requireBadRequest(t, err)
}

func TestCreateExperienceParsesDates(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	mock.ExpectExec("INSERT INTO experiences").
		WillReturnResult(sqlmock.NewResult(5, 1))

	c, rec := postJSON(e, "/admin/experiences",
		`{"title":"Dev","company":"Acme","start_date":"2022-07-01","end_date":"2023-01-31","is_active":true}`)
	require.NoError(t, h.CreateExperience(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created Experience
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(5), created.ID)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2023-01-31", created.EndDate.Format("2006-01-02"))
}

func TestCreateLandingSectionSanitizesContent(t *testing.T) {
	h, mock := newTestHandler(t)
	e := echo.New()

	mock.ExpectExec("INSERT INTO landing_sections").
		WillReturnResult(sqlmock.NewResult(2, 1))

	c, rec := postJSON(e, "/admin/sections",
		`{"title":"About","section_type":"custom","content":"<p>hello</p><script>alert(1)</script>","is_active":true}`)
	require.NoError(t, h.CreateLandingSection(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created LandingSection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Contains(t, created.Content, "<p>hello</p>")
	assert.NotContains(t, created.Content, "<script>")
}

func TestCreateLandingSectionRejectsUnknownType(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := postJSON(e, "/admin/sections", `{"title":"About","section_type":"carousel","content":"x"}`)
	err := h.CreateLandingSection(c)
	requireBadRequest(t, err)
}

func TestParamIDRejectsGarbage(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/admin/skills/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetSkill(c)
	requireBadRequest(t, err)
}
