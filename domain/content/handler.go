package content

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// Handler exposes back-office CRUD for the content collections.
type Handler struct {
	store     *Store
	log       logger.Logger
	sanitizer *bluemonday.Policy
}

func NewHandler(store *Store, log logger.Logger) *Handler {
	return &Handler{
		store:     store,
		log:       log.WithComponent("content"),
		sanitizer: richTextPolicy(),
	}
}

// richTextPolicy allows the formatting a rich-text editor produces while
// stripping scripts and event handlers.
func richTextPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").OnElements("p", "span", "div", "i", "ul", "ol", "li")
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowRelativeURLs(true)
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	return p
}

func paramID(c echo.Context) (int64, *apperrors.AppError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid record id")
	}
	return id, nil
}

func parseDate(value, field string) (time.Time, *apperrors.AppError) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed,
			"Dates must be YYYY-MM-DD").WithDetail(field)
	}
	return d, nil
}

func parseOptionalDate(value, field string) (*time.Time, *apperrors.AppError) {
	if value == "" {
		return nil, nil
	}
	d, appErr := parseDate(value, field)
	if appErr != nil {
		return nil, appErr
	}
	return &d, nil
}

func (h *Handler) respondStoreError(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NewNotFound(apperrors.ErrCodeRecordNotFound, entity+" not found")
	}
	return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to access "+entity, err)
}

func deleted(c echo.Context, entity string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": entity + " deleted"})
}

// --- Skills ---

func (h *Handler) ListSkills(c echo.Context) error {
	out, err := h.store.ListSkills(c.Request().Context())
	if err != nil {
		return h.respondStoreError("skills", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetSkill(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetSkill(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("skill", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateSkill(c echo.Context) error {
	sk := new(Skill)
	if err := c.Bind(sk); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := validateSkill(sk); appErr != nil {
		return appErr
	}
	if err := h.store.CreateSkill(c.Request().Context(), sk); err != nil {
		return h.respondStoreError("skill", err)
	}
	h.log.Info("Skill created", logger.RecordID(sk.ID), logger.String("name", sk.Name))
	return apperrors.RespondWithCreated(c, sk)
}

func (h *Handler) UpdateSkill(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	sk := new(Skill)
	if err := c.Bind(sk); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := validateSkill(sk); appErr != nil {
		return appErr
	}
	sk.ID = id
	if err := h.store.UpdateSkill(c.Request().Context(), sk); err != nil {
		return h.respondStoreError("skill", err)
	}
	return apperrors.RespondWithSuccess(c, sk)
}

func (h *Handler) DeleteSkill(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "skills", id); err != nil {
		return h.respondStoreError("skill", err)
	}
	return deleted(c, "Skill")
}

func validateSkill(sk *Skill) *apperrors.AppError {
	if sk.Name == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Skill name is required")
	}
	if sk.Proficiency < 0 || sk.Proficiency > 100 {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Proficiency must be 0-100")
	}
	if sk.Category == "" {
		sk.Category = CategoryFrontend
	}
	return nil
}

// --- Projects ---

func (h *Handler) ListProjects(c echo.Context) error {
	out, err := h.store.ListProjects(c.Request().Context())
	if err != nil {
		return h.respondStoreError("projects", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetProject(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("project", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateProject(c echo.Context) error {
	p := new(Project)
	if err := c.Bind(p); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if p.Title == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Project title is required")
	}
	if err := h.store.CreateProject(c.Request().Context(), p); err != nil {
		return h.respondStoreError("project", err)
	}
	h.log.Info("Project created", logger.RecordID(p.ID), logger.String("title", p.Title))
	return apperrors.RespondWithCreated(c, p)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	p := new(Project)
	if err := c.Bind(p); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	p.ID = id
	if err := h.store.UpdateProject(c.Request().Context(), p); err != nil {
		return h.respondStoreError("project", err)
	}
	return apperrors.RespondWithSuccess(c, p)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "projects", id); err != nil {
		return h.respondStoreError("project", err)
	}
	return deleted(c, "Project")
}

// --- Experiences ---

// experienceRequest carries dates as YYYY-MM-DD strings.
type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

func (r *experienceRequest) toModel() (Experience, *apperrors.AppError) {
	start, appErr := parseDate(r.StartDate, "start_date")
	if appErr != nil {
		return Experience{}, appErr
	}
	end, appErr := parseOptionalDate(r.EndDate, "end_date")
	if appErr != nil {
		return Experience{}, appErr
	}
	return Experience{
		Title: r.Title, Company: r.Company, Description: r.Description,
		StartDate: start, EndDate: end, IsCurrent: r.IsCurrent,
		Order: r.Order, IsActive: r.IsActive,
	}, nil
}

func (h *Handler) ListExperiences(c echo.Context) error {
	out, err := h.store.ListExperiences(c.Request().Context())
	if err != nil {
		return h.respondStoreError("experiences", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetExperience(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetExperience(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("experience", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateExperience(c echo.Context) error {
	req := new(experienceRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	e, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	if err := h.store.CreateExperience(c.Request().Context(), &e); err != nil {
		return h.respondStoreError("experience", err)
	}
	h.log.Info("Experience created", logger.RecordID(e.ID), logger.String("title", e.Title))
	return apperrors.RespondWithCreated(c, e)
}

func (h *Handler) UpdateExperience(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	req := new(experienceRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	e, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	e.ID = id
	if err := h.store.UpdateExperience(c.Request().Context(), &e); err != nil {
		return h.respondStoreError("experience", err)
	}
	return apperrors.RespondWithSuccess(c, e)
}

func (h *Handler) DeleteExperience(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "experiences", id); err != nil {
		return h.respondStoreError("experience", err)
	}
	return deleted(c, "Experience")
}

// --- Education ---

type educationRequest struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
}

func (r *educationRequest) toModel() (Education, *apperrors.AppError) {
	start, appErr := parseDate(r.StartDate, "start_date")
	if appErr != nil {
		return Education{}, appErr
	}
	end, appErr := parseOptionalDate(r.EndDate, "end_date")
	if appErr != nil {
		return Education{}, appErr
	}
	return Education{
		Degree: r.Degree, Institution: r.Institution, Description: r.Description,
		StartDate: start, EndDate: end, IsCurrent: r.IsCurrent,
		Order: r.Order, IsActive: r.IsActive,
	}, nil
}

func (h *Handler) ListEducation(c echo.Context) error {
	out, err := h.store.ListEducation(c.Request().Context())
	if err != nil {
		return h.respondStoreError("education", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetEducation(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetEducation(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("education", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateEducation(c echo.Context) error {
	req := new(educationRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	e, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	if err := h.store.CreateEducation(c.Request().Context(), &e); err != nil {
		return h.respondStoreError("education", err)
	}
	h.log.Info("Education created", logger.RecordID(e.ID), logger.String("degree", e.Degree))
	return apperrors.RespondWithCreated(c, e)
}

func (h *Handler) UpdateEducation(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	req := new(educationRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	e, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	e.ID = id
	if err := h.store.UpdateEducation(c.Request().Context(), &e); err != nil {
		return h.respondStoreError("education", err)
	}
	return apperrors.RespondWithSuccess(c, e)
}

func (h *Handler) DeleteEducation(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "education", id); err != nil {
		return h.respondStoreError("education", err)
	}
	return deleted(c, "Education")
}

// --- Services ---

func (h *Handler) ListServices(c echo.Context) error {
	out, err := h.store.ListServices(c.Request().Context())
	if err != nil {
		return h.respondStoreError("services", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetService(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetService(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("service", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateService(c echo.Context) error {
	sv := new(Service)
	if err := c.Bind(sv); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if sv.Title == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Service title is required")
	}
	if err := h.store.CreateService(c.Request().Context(), sv); err != nil {
		return h.respondStoreError("service", err)
	}
	return apperrors.RespondWithCreated(c, sv)
}

func (h *Handler) UpdateService(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	sv := new(Service)
	if err := c.Bind(sv); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	sv.ID = id
	if err := h.store.UpdateService(c.Request().Context(), sv); err != nil {
		return h.respondStoreError("service", err)
	}
	return apperrors.RespondWithSuccess(c, sv)
}

func (h *Handler) DeleteService(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "services", id); err != nil {
		return h.respondStoreError("service", err)
	}
	return deleted(c, "Service")
}

// --- Testimonials ---

type testimonialRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Text     string `json:"text"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

func (r *testimonialRequest) toModel() (Testimonial, *apperrors.AppError) {
	if r.Rating < 1 || r.Rating > 5 {
		return Testimonial{}, apperrors.NewBadRequest(apperrors.ErrCodeInvalidRating, "Rating must be 1-5")
	}
	date, appErr := parseDate(r.Date, "date")
	if appErr != nil {
		return Testimonial{}, appErr
	}
	return Testimonial{
		Name: r.Name, Position: r.Position, Company: r.Company,
		Text: r.Text, Image: r.Image, GivenOn: date,
		Rating: r.Rating, Order: r.Order, IsActive: r.IsActive,
	}, nil
}

func (h *Handler) ListTestimonials(c echo.Context) error {
	out, err := h.store.ListTestimonials(c.Request().Context())
	if err != nil {
		return h.respondStoreError("testimonials", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetTestimonial(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("testimonial", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateTestimonial(c echo.Context) error {
	req := new(testimonialRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	t, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	if err := h.store.CreateTestimonial(c.Request().Context(), &t); err != nil {
		return h.respondStoreError("testimonial", err)
	}
	return apperrors.RespondWithCreated(c, t)
}

func (h *Handler) UpdateTestimonial(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	req := new(testimonialRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	t, appErr := req.toModel()
	if appErr != nil {
		return appErr
	}
	t.ID = id
	if err := h.store.UpdateTestimonial(c.Request().Context(), &t); err != nil {
		return h.respondStoreError("testimonial", err)
	}
	return apperrors.RespondWithSuccess(c, t)
}

func (h *Handler) DeleteTestimonial(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "testimonials", id); err != nil {
		return h.respondStoreError("testimonial", err)
	}
	return deleted(c, "Testimonial")
}

// --- Landing sections ---

func (h *Handler) ListLandingSections(c echo.Context) error {
	out, err := h.store.ListLandingSections(c.Request().Context())
	if err != nil {
		return h.respondStoreError("landing sections", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) GetLandingSection(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	out, err := h.store.GetLandingSection(c.Request().Context(), id)
	if err != nil {
		return h.respondStoreError("landing section", err)
	}
	return apperrors.RespondWithSuccess(c, out)
}

func (h *Handler) CreateLandingSection(c echo.Context) error {
	l := new(LandingSection)
	if err := c.Bind(l); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := h.prepareSection(l); appErr != nil {
		return appErr
	}
	if err := h.store.CreateLandingSection(c.Request().Context(), l); err != nil {
		return h.respondStoreError("landing section", err)
	}
	return apperrors.RespondWithCreated(c, l)
}

func (h *Handler) UpdateLandingSection(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	l := new(LandingSection)
	if err := c.Bind(l); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if appErr := h.prepareSection(l); appErr != nil {
		return appErr
	}
	l.ID = id
	if err := h.store.UpdateLandingSection(c.Request().Context(), l); err != nil {
		return h.respondStoreError("landing section", err)
	}
	return apperrors.RespondWithSuccess(c, l)
}

func (h *Handler) DeleteLandingSection(c echo.Context) error {
	id, appErr := paramID(c)
	if appErr != nil {
		return appErr
	}
	if err := h.store.Delete(c.Request().Context(), "landing_sections", id); err != nil {
		return h.respondStoreError("landing section", err)
	}
	return deleted(c, "Landing section")
}

func (h *Handler) prepareSection(l *LandingSection) *apperrors.AppError {
	if l.Title == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Section title is required")
	}
	if l.SectionType == "" {
		l.SectionType = SectionCustom
	}
	if !ValidSectionType(l.SectionType) {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed,
			"Section type must be services, testimonials, stats or custom")
	}
	// Section content comes from a rich-text editor; strip anything unsafe.
	l.Content = h.sanitizer.Sanitize(l.Content)
	return nil
}
