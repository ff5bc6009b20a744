package routes

import (
	"time"

	"portfolio-cms/config"
	"portfolio-cms/domain/aggregate"
	"portfolio-cms/domain/contact"
	"portfolio-cms/domain/content"
	"portfolio-cms/domain/health"
	"portfolio-cms/domain/media"
	"portfolio-cms/domain/site"
	"portfolio-cms/domain/theme"
	"portfolio-cms/domain/user"
	"portfolio-cms/middleware"
	"portfolio-cms/pkg/logger"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
)

// Deps carries every handler the router wires up. cmd/main.go builds it
// once and passes it down; nothing here reaches for globals.
type Deps struct {
	Cfg     *config.Config
	DB      *sqlx.DB
	Log     logger.Logger
	Users   *user.Store
	Theme   *theme.Handler
	Site    *site.Handler
	Content *content.Handler
	Public  *aggregate.Handler
	Health  *health.Handler
	Media   *media.Handler
	Contact *contact.Handler
	User    *user.Handler
}

func RegisterRoutes(e *echo.Echo, d Deps) {
	// Public pages and payload
	e.GET("/", d.Public.Home)
	e.GET("/about/", d.Public.About)
	e.GET("/api/theme/", d.Public.Theme)

	// Diagnostics
	e.GET("/health", d.Health.Health)
	e.GET("/health/", d.Health.Health)
	e.GET("/health/stats", d.Health.Stats)
	e.GET("/static-test/", d.Health.StaticTest)
	e.GET("/media-test/", d.Health.MediaTest)

	// Contact form, rate limited per IP
	contactLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		MaxRequests:   5,
		Window:        time.Minute,
		BlockDuration: 15 * time.Minute,
		DB:            d.DB,
		Log:           d.Log,
	})
	e.POST("/api/contact/", d.Contact.Submit, contactLimiter)

	// Served asset trees
	e.Static(d.Cfg.StaticURL, d.Cfg.StaticRoot)
	e.Static(d.Cfg.MediaURL, d.Cfg.MediaRoot)

	// Back office
	jwt := middleware.JWTMiddleware(d.Cfg.JWTSecret, d.Users)

	e.POST("/admin/login", d.User.Login)

	admin := e.Group("/admin", jwt, middleware.AdminOnly)
	admin.POST("/logout", d.User.Logout)
	admin.POST("/users", d.User.Create)
	admin.PUT("/users/password", d.User.ChangePassword)

	admin.POST("/media/upload", d.Media.Upload)

	admin.GET("/themes", d.Theme.List)
	admin.POST("/themes", d.Theme.Create)
	admin.GET("/themes/:id", d.Theme.Get)
	admin.PUT("/themes/:id", d.Theme.Update)
	admin.DELETE("/themes/:id", d.Theme.Delete)

	admin.GET("/settings", d.Site.Get)
	admin.PUT("/settings", d.Site.Save)

	admin.GET("/skills", d.Content.ListSkills)
	admin.POST("/skills", d.Content.CreateSkill)
	admin.GET("/skills/:id", d.Content.GetSkill)
	admin.PUT("/skills/:id", d.Content.UpdateSkill)
	admin.DELETE("/skills/:id", d.Content.DeleteSkill)

	admin.GET("/projects", d.Content.ListProjects)
	admin.POST("/projects", d.Content.CreateProject)
	admin.GET("/projects/:id", d.Content.GetProject)
	admin.PUT("/projects/:id", d.Content.UpdateProject)
	admin.DELETE("/projects/:id", d.Content.DeleteProject)

	admin.GET("/experiences", d.Content.ListExperiences)
	admin.POST("/experiences", d.Content.CreateExperience)
	admin.GET("/experiences/:id", d.Content.GetExperience)
	admin.PUT("/experiences/:id", d.Content.UpdateExperience)
	admin.DELETE("/experiences/:id", d.Content.DeleteExperience)

	admin.GET("/education", d.Content.ListEducation)
	admin.POST("/education", d.Content.CreateEducation)
	admin.GET("/education/:id", d.Content.GetEducation)
	admin.PUT("/education/:id", d.Content.UpdateEducation)
	admin.DELETE("/education/:id", d.Content.DeleteEducation)

	admin.GET("/services", d.Content.ListServices)
	admin.POST("/services", d.Content.CreateService)
	admin.GET("/services/:id", d.Content.GetService)
	admin.PUT("/services/:id", d.Content.UpdateService)
	admin.DELETE("/services/:id", d.Content.DeleteService)

	admin.GET("/testimonials", d.Content.ListTestimonials)
	admin.POST("/testimonials", d.Content.CreateTestimonial)
	admin.GET("/testimonials/:id", d.Content.GetTestimonial)
	admin.PUT("/testimonials/:id", d.Content.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", d.Content.DeleteTestimonial)

	admin.GET("/sections", d.Content.ListLandingSections)
	admin.POST("/sections", d.Content.CreateLandingSection)
	admin.GET("/sections/:id", d.Content.GetLandingSection)
	admin.PUT("/sections/:id", d.Content.UpdateLandingSection)
	admin.DELETE("/sections/:id", d.Content.DeleteLandingSection)
}
