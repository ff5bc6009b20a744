package content

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store reads and writes the seven content collections. Public reads see
// only active rows, ordered by sort_order with a per-entity tie-break;
// the back-office sees everything.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// --- Public (active-only) reads. Empty tables yield empty slices. ---

func (s *Store) ActiveSkills(ctx context.Context) ([]Skill, error) {
	out := []Skill{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM skills
		WHERE is_active = TRUE ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active skills: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveProjects(ctx context.Context) ([]Project, error) {
	out := []Project{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM projects
		WHERE is_active = TRUE ORDER BY sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list active projects: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveExperiences(ctx context.Context) ([]Experience, error) {
	out := []Experience{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM experiences
		WHERE is_active = TRUE ORDER BY sort_order ASC, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list active experiences: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveEducation(ctx context.Context) ([]Education, error) {
	out := []Education{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM education
		WHERE is_active = TRUE ORDER BY sort_order ASC, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list active education: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveServices(ctx context.Context) ([]Service, error) {
	out := []Service{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM services
		WHERE is_active = TRUE ORDER BY sort_order ASC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveTestimonials(ctx context.Context) ([]Testimonial, error) {
	out := []Testimonial{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM testimonials
		WHERE is_active = TRUE ORDER BY sort_order ASC, given_on ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active testimonials: %w", err)
	}
	return out, nil
}

func (s *Store) ActiveLandingSections(ctx context.Context) ([]LandingSection, error) {
	out := []LandingSection{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM landing_sections
		WHERE is_active = TRUE ORDER BY sort_order ASC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active landing sections: %w", err)
	}
	return out, nil
}
