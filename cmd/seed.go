package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"portfolio-cms/domain/content"
	"portfolio-cms/domain/site"
	"portfolio-cms/domain/theme"
	"portfolio-cms/domain/user"
	"portfolio-cms/pkg/logger"
	"portfolio-cms/utils"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// seed fills an empty database with a default admin account, the active
// theme, site settings and starter content. Safe to run repeatedly:
// records that already exist are left alone.
func seed(db *sqlx.DB, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userStore := user.NewStore(db)
	themeStore := theme.NewStore(db)
	siteStore := site.NewStore(db)
	contentStore := content.NewStore(db)

	adminEmail := viper.GetString("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
	}

	if _, err := userStore.ByEmail(ctx, adminEmail); errors.Is(err, sql.ErrNoRows) {
		hashed, err := utils.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		if _, err := userStore.Create(ctx, adminEmail, hashed, user.RoleAdmin); err != nil {
			return err
		}
		log.Info("Seeded admin user", logger.String("email", adminEmail))
	} else if err != nil {
		return err
	}

	// Bootstraps the default theme and settings rows when absent.
	if _, err := themeStore.Active(ctx); err != nil {
		return err
	}
	settings, err := siteStore.Get(ctx)
	if err != nil {
		return err
	}
	log.Info("Site settings present", logger.RecordID(settings.ID))

	if err := seedSkills(ctx, contentStore, log); err != nil {
		return err
	}
	if err := seedServices(ctx, contentStore, log); err != nil {
		return err
	}

	log.Info("Database seeded")
	return nil
}

func seedSkills(ctx context.Context, store *content.Store, log logger.Logger) error {
	existing, err := store.ListSkills(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, sk := range existing {
		have[sk.Name] = true
	}

	defaults := []content.Skill{
		{Name: "HTML", Category: content.CategoryFrontend, Proficiency: 90, Order: 1, IsActive: true},
		{Name: "CSS", Category: content.CategoryFrontend, Proficiency: 85, Order: 2, IsActive: true},
		{Name: "JavaScript", Category: content.CategoryFrontend, Proficiency: 80, Order: 3, IsActive: true},
		{Name: "React", Category: content.CategoryFrontend, Proficiency: 75, Order: 4, IsActive: true},
		{Name: "Python", Category: content.CategoryBackend, Proficiency: 70, Order: 5, IsActive: true},
		{Name: "Django", Category: content.CategoryBackend, Proficiency: 65, Order: 6, IsActive: true},
		{Name: "Git", Category: content.CategoryTools, Proficiency: 80, Order: 7, IsActive: true},
		{Name: "VS Code", Category: content.CategoryTools, Proficiency: 85, Order: 8, IsActive: true},
	}

	for _, sk := range defaults {
		if have[sk.Name] {
			continue
		}
		sk := sk
		if err := store.CreateSkill(ctx, &sk); err != nil {
			return err
		}
		log.Info("Seeded skill", logger.String("name", sk.Name))
	}
	return nil
}

func seedServices(ctx context.Context, store *content.Store, log logger.Logger) error {
	existing, err := store.ListServices(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, sv := range existing {
		have[sv.Title] = true
	}

	defaults := []content.Service{
		{Title: "Web Design", Description: "Creating beautiful and responsive web designs", IconClass: "uil uil-web-grid", Order: 1, IsActive: true},
		{Title: "Frontend Development", Description: "Building interactive user interfaces", IconClass: "uil uil-brackets-curly", Order: 2, IsActive: true},
		{Title: "UI/UX Design", Description: "Designing user-friendly interfaces", IconClass: "uil uil-swatchbook", Order: 3, IsActive: true},
	}

	for _, sv := range defaults {
		if have[sv.Title] {
			continue
		}
		sv := sv
		if err := store.CreateService(ctx, &sv); err != nil {
			return err
		}
		log.Info("Seeded service", logger.String("title", sv.Title))
	}
	return nil
}
