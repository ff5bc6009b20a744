package main

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"portfolio-cms/config"
	"portfolio-cms/domain/aggregate"
	"portfolio-cms/domain/contact"
	"portfolio-cms/domain/content"
	"portfolio-cms/domain/health"
	"portfolio-cms/domain/media"
	"portfolio-cms/domain/site"
	"portfolio-cms/domain/theme"
	"portfolio-cms/domain/user"
	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/pkg/mailer"
	"portfolio-cms/routes"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/main.go [server|migrate|seed]")
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:       logger.Level(cfg.LogLevel),
		Environment: cfg.Environment,
	})

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to open database", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "server":
		if err := config.Migrate(db, cfg); err != nil {
			log.Fatal("Failed to run migrations", err)
		}
		startServer(cfg, db, log)
	case "migrate":
		if err := config.Migrate(db, cfg); err != nil {
			log.Fatal("Failed to run migrations", err)
		}
		log.Info("Migrations applied")
	case "seed":
		if err := config.Migrate(db, cfg); err != nil {
			log.Fatal("Failed to run migrations", err)
		}
		if err := seed(db, log); err != nil {
			log.Fatal("Failed to seed database", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// templateRenderer adapts html/template to Echo's Renderer interface.
type templateRenderer struct {
	templates *template.Template
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func startServer(cfg config.Config, db *sqlx.DB, log logger.Logger) {
	themeStore := theme.NewStore(db)
	siteStore := site.NewStore(db)
	contentStore := content.NewStore(db)
	userStore := user.NewStore(db)
	mediaStorage := media.NewStorage(cfg.MediaRoot)

	aggSvc := aggregate.NewService(themeStore, siteStore, contentStore, cfg.MediaURL, log)

	var contactMailer mailer.Mailer
	if cfg.ResendAPIKey != "" {
		contactMailer = mailer.NewResendMailer(cfg.ResendAPIKey, cfg.ContactSender, cfg.ContactRecipient)
	} else {
		sesMailer, err := mailer.NewSESMailer(cfg.AWSRegion, cfg.ContactSender, cfg.ContactRecipient)
		if err != nil {
			log.Fatal("Failed to initialize mailer", err)
		}
		contactMailer = sesMailer
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.Debug
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)
	e.Renderer = &templateRenderer{
		templates: template.Must(template.ParseGlob("templates/*.html")),
	}

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.RegisterRoutes(e, routes.Deps{
		Cfg:     &cfg,
		DB:      db,
		Log:     log,
		Users:   userStore,
		Theme:   theme.NewHandler(themeStore, log),
		Site:    site.NewHandler(siteStore, log),
		Content: content.NewHandler(contentStore, log),
		Public:  aggregate.NewHandler(aggSvc, log),
		Health:  health.NewHandler(db, &cfg),
		Media:   media.NewHandler(mediaStorage, cfg.MediaURL, log),
		Contact: contact.NewHandler(siteStore, contactMailer, log),
		User:    user.NewHandler(userStore, cfg.JWTSecret, log),
	})

	log.Info("Server starting", logger.String("port", cfg.Port), logger.String("env", cfg.Environment))
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", err)
	}
}
