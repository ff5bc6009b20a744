package site

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// settingsColumns are every writable column, in struct order. Insert and
// update statements are derived from this list so the two never drift.
var settingsColumns = []string{
	"site_title", "site_description", "site_keywords",
	"full_name", "job_title", "bio", "profile_image", "about_image",
	"welcome_message", "home_background_image", "home_image_url", "social_follow_text", "cta_button_text",
	"years_experience", "completed_projects", "support_availability",
	"email", "phone", "location",
	"messenger_display", "whatsapp_display", "email_display",
	"facebook_url", "instagram_url", "twitter_url", "linkedin_url", "github_url",
	"about_title", "about_description",
	"qualifications_title", "qualifications_subtitle",
	"experience_title", "experience_subtitle",
	"portfolio_title", "portfolio_subtitle",
	"services_title", "services_subtitle",
	"testimonials_title", "testimonials_subtitle",
	"contact_title", "contact_subtitle",
	"default_project_image", "default_testimonial_image", "default_about_image",
	"footer_copyright_text", "footer_copyright_link", "footer_copyright_link_text",
	"google_analytics_id", "meta_image",
	"enable_blog", "enable_contact_form", "enable_dark_mode",
}

// greetings accepted as a bare welcome prefix, checked in order.
var greetings = []string{"hello, i am", "hi, i'm", "welcome, i'm", "hey, i'm"}

// Store persists the site-settings singleton. The singleton rule and the
// welcome-message normalization both live here, on the write path.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func insertQuery() string {
	placeholders := ":" + strings.Join(settingsColumns, ", :")
	return fmt.Sprintf("INSERT INTO site_settings (%s) VALUES (%s)",
		strings.Join(settingsColumns, ", "), placeholders)
}

func updateQuery() string {
	assigns := make([]string, len(settingsColumns))
	for i, col := range settingsColumns {
		assigns[i] = fmt.Sprintf("%s = :%s", col, col)
	}
	return fmt.Sprintf("UPDATE site_settings SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = :id",
		strings.Join(assigns, ", "))
}

// Get returns the singleton settings row, creating the default row on
// first read.
func (s *Store) Get(ctx context.Context) (Settings, error) {
	var out Settings
	err := s.db.GetContext(ctx, &out, `SELECT * FROM site_settings ORDER BY id LIMIT 1`)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Settings{}, fmt.Errorf("query site settings: %w", err)
	}

	def := Default()
	created, err := s.Save(ctx, def)
	if err != nil {
		return Settings{}, fmt.Errorf("bootstrap site settings: %w", err)
	}
	return created, nil
}

// Save writes the settings. Creating when a row already exists returns
// the existing row unchanged: callers that try to create the singleton
// are treated as callers that want it. Updates always target the single
// existing row.
func (s *Store) Save(ctx context.Context, in Settings) (Settings, error) {
	var existing Settings
	err := s.db.GetContext(ctx, &existing, `SELECT * FROM site_settings ORDER BY id LIMIT 1`)
	switch {
	case err == nil && in.ID == 0:
		// Attempted second create; the new data is discarded.
		return existing, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return Settings{}, fmt.Errorf("query site settings: %w", err)
	}

	in.WelcomeMessage = normalizeWelcome(in.WelcomeMessage, in.FullName)

	if in.ID == 0 {
		res, err := s.db.NamedExecContext(ctx, insertQuery(), in)
		if err != nil {
			return Settings{}, fmt.Errorf("insert site settings: %w", err)
		}
		if id, err := res.LastInsertId(); err == nil && id > 0 {
			in.ID = id
		}
	} else {
		if _, err := s.db.NamedExecContext(ctx, updateQuery(), in); err != nil {
			return Settings{}, fmt.Errorf("update site settings: %w", err)
		}
	}

	var out Settings
	if err := s.db.GetContext(ctx, &out, `SELECT * FROM site_settings ORDER BY id LIMIT 1`); err != nil {
		return Settings{}, fmt.Errorf("reload site settings: %w", err)
	}
	return out, nil
}

// normalizeWelcome strips the owner's name out of the welcome message.
// The presentation layer appends the full name after the welcome prefix,
// so a message that already contains the name would show it twice. When
// the name is present the message collapses to the matching greeting
// template, or to "Hello, I am" when none matches.
func normalizeWelcome(message, fullName string) string {
	if fullName == "" {
		return message
	}
	lowerMsg := strings.ToLower(message)
	if !strings.Contains(lowerMsg, strings.ToLower(fullName)) {
		return message
	}
	for _, g := range greetings {
		if strings.Contains(lowerMsg, g) {
			return titleCase(g)
		}
	}
	return "Hello, I am"
}

// titleCase uppercases the first letter of each space-separated word,
// leaving interior punctuation alone.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
