package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const themeColumns = `id, name, is_active, created_at, updated_at,
	primary_color, secondary_color, accent_color, background_color, text_color, card_color,
	font_family, heading_font, font_size_base,
	sidebar_width, border_radius, spacing_unit,
	enable_animations, animation_speed, enable_stars, custom_css`

// Store persists themes and enforces active-theme exclusivity on the
// write path, so the invariant is visible here rather than hidden in a
// model hook.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Save inserts or updates a theme. When the incoming theme is active,
// every other theme is deactivated in the same transaction; if two
// activations race, the last committed write owns the active flag.
func (s *Store) Save(ctx context.Context, t *Theme) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if t.IsActive {
		if _, err := tx.ExecContext(ctx, s.db.Rebind(
			`UPDATE theme_settings SET is_active = FALSE WHERE id <> ?`), t.ID); err != nil {
			return fmt.Errorf("deactivate others: %w", err)
		}
	}

	if t.ID == 0 {
		query := s.db.Rebind(`INSERT INTO theme_settings
			(name, is_active, primary_color, secondary_color, accent_color, background_color, text_color, card_color,
			 font_family, heading_font, font_size_base, sidebar_width, border_radius, spacing_unit,
			 enable_animations, animation_speed, enable_stars, custom_css)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		args := []interface{}{
			t.Name, t.IsActive, t.PrimaryColor, t.SecondaryColor, t.AccentColor, t.BackgroundColor, t.TextColor, t.CardColor,
			t.FontFamily, t.HeadingFont, t.FontSizeBase, t.SidebarWidth, t.BorderRadius, t.SpacingUnit,
			t.EnableAnimations, t.AnimationSpeed, t.EnableStars, t.CustomCSS,
		}
		if s.db.DriverName() == "postgres" {
			if err := tx.QueryRowxContext(ctx, query+` RETURNING id`, args...).Scan(&t.ID); err != nil {
				return fmt.Errorf("insert theme: %w", err)
			}
		} else {
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("insert theme: %w", err)
			}
			t.ID, _ = res.LastInsertId()
		}
	} else {
		query := s.db.Rebind(`UPDATE theme_settings SET
			name = ?, is_active = ?, primary_color = ?, secondary_color = ?, accent_color = ?,
			background_color = ?, text_color = ?, card_color = ?,
			font_family = ?, heading_font = ?, font_size_base = ?,
			sidebar_width = ?, border_radius = ?, spacing_unit = ?,
			enable_animations = ?, animation_speed = ?, enable_stars = ?, custom_css = ?,
			updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, query,
			t.Name, t.IsActive, t.PrimaryColor, t.SecondaryColor, t.AccentColor,
			t.BackgroundColor, t.TextColor, t.CardColor,
			t.FontFamily, t.HeadingFont, t.FontSizeBase,
			t.SidebarWidth, t.BorderRadius, t.SpacingUnit,
			t.EnableAnimations, t.AnimationSpeed, t.EnableStars, t.CustomCSS,
			t.ID); err != nil {
			return fmt.Errorf("update theme: %w", err)
		}
	}

	return tx.Commit()
}

// Active returns the most recently created active theme. When none
// exists it persists the bootstrap default and returns that row; a
// bootstrap failure propagates rather than being swallowed.
func (s *Store) Active(ctx context.Context) (Theme, error) {
	var t Theme
	err := s.db.GetContext(ctx, &t, `SELECT `+themeColumns+` FROM theme_settings
		WHERE is_active = TRUE ORDER BY created_at DESC, id DESC LIMIT 1`)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Theme{}, fmt.Errorf("query active theme: %w", err)
	}

	def := Default()
	if err := s.Save(ctx, &def); err != nil {
		return Theme{}, fmt.Errorf("bootstrap default theme: %w", err)
	}
	return def, nil
}

// List returns all themes, active first, newest first within each group.
func (s *Store) List(ctx context.Context) ([]Theme, error) {
	themes := []Theme{}
	err := s.db.SelectContext(ctx, &themes, `SELECT `+themeColumns+` FROM theme_settings
		ORDER BY is_active DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Theme, error) {
	var t Theme
	err := s.db.GetContext(ctx, &t, s.db.Rebind(
		`SELECT `+themeColumns+` FROM theme_settings WHERE id = ?`), id)
	if err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM theme_settings WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
