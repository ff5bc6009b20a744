package content

import (
	"context"
	"database/sql"
	"fmt"
)

// Back-office reads and writes. Admin listings reuse the public ordering
// but include inactive rows.

func (s *Store) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if s.db.DriverName() == "postgres" {
		var id int64
		err := s.db.QueryRowxContext(ctx, s.db.Rebind(query)+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) update(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// contentTables is the fixed set of tables Delete may touch.
var contentTables = map[string]bool{
	"skills":           true,
	"projects":         true,
	"experiences":      true,
	"education":        true,
	"services":         true,
	"testimonials":     true,
	"landing_sections": true,
}

// Delete removes one row from a content table. Table names must come
// from the fixed registry, never from request input.
func (s *Store) Delete(ctx context.Context, table string, id int64) error {
	if !contentTables[table] {
		return fmt.Errorf("unknown content table %q", table)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// --- Skills ---

func (s *Store) ListSkills(ctx context.Context) ([]Skill, error) {
	out := []Skill{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM skills ORDER BY sort_order ASC, name ASC`)
	return out, err
}

func (s *Store) GetSkill(ctx context.Context, id int64) (Skill, error) {
	var out Skill
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM skills WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateSkill(ctx context.Context, sk *Skill) error {
	id, err := s.insert(ctx, `INSERT INTO skills (name, category, proficiency, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?)`, sk.Name, sk.Category, sk.Proficiency, sk.Order, sk.IsActive)
	if err != nil {
		return fmt.Errorf("insert skill: %w", err)
	}
	sk.ID = id
	return nil
}

func (s *Store) UpdateSkill(ctx context.Context, sk *Skill) error {
	return s.update(ctx, `UPDATE skills SET name = ?, category = ?, proficiency = ?, sort_order = ?, is_active = ?
		WHERE id = ?`, sk.Name, sk.Category, sk.Proficiency, sk.Order, sk.IsActive, sk.ID)
}

// --- Projects ---

func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	out := []Project{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM projects ORDER BY sort_order ASC, created_at DESC`)
	return out, err
}

func (s *Store) GetProject(ctx context.Context, id int64) (Project, error) {
	var out Project
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM projects WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateProject(ctx context.Context, p *Project) error {
	id, err := s.insert(ctx, `INSERT INTO projects (title, description, image, technologies, demo_url, github_url, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Image, p.Technologies, p.DemoURL, p.GithubURL, p.Order, p.IsActive)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	p.ID = id
	return nil
}

func (s *Store) UpdateProject(ctx context.Context, p *Project) error {
	return s.update(ctx, `UPDATE projects SET title = ?, description = ?, image = ?, technologies = ?,
		demo_url = ?, github_url = ?, sort_order = ?, is_active = ? WHERE id = ?`,
		p.Title, p.Description, p.Image, p.Technologies, p.DemoURL, p.GithubURL, p.Order, p.IsActive, p.ID)
}

// --- Experiences ---

func (s *Store) ListExperiences(ctx context.Context) ([]Experience, error) {
	out := []Experience{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM experiences ORDER BY sort_order ASC, start_date DESC`)
	return out, err
}

func (s *Store) GetExperience(ctx context.Context, id int64) (Experience, error) {
	var out Experience
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM experiences WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateExperience(ctx context.Context, e *Experience) error {
	id, err := s.insert(ctx, `INSERT INTO experiences (title, company, description, start_date, end_date, is_current, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Company, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Order, e.IsActive)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	e.ID = id
	return nil
}

func (s *Store) UpdateExperience(ctx context.Context, e *Experience) error {
	return s.update(ctx, `UPDATE experiences SET title = ?, company = ?, description = ?, start_date = ?,
		end_date = ?, is_current = ?, sort_order = ?, is_active = ? WHERE id = ?`,
		e.Title, e.Company, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Order, e.IsActive, e.ID)
}

// --- Education ---

func (s *Store) ListEducation(ctx context.Context) ([]Education, error) {
	out := []Education{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM education ORDER BY sort_order ASC, start_date DESC`)
	return out, err
}

func (s *Store) GetEducation(ctx context.Context, id int64) (Education, error) {
	var out Education
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM education WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateEducation(ctx context.Context, e *Education) error {
	id, err := s.insert(ctx, `INSERT INTO education (degree, institution, description, start_date, end_date, is_current, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Degree, e.Institution, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Order, e.IsActive)
	if err != nil {
		return fmt.Errorf("insert education: %w", err)
	}
	e.ID = id
	return nil
}

func (s *Store) UpdateEducation(ctx context.Context, e *Education) error {
	return s.update(ctx, `UPDATE education SET degree = ?, institution = ?, description = ?, start_date = ?,
		end_date = ?, is_current = ?, sort_order = ?, is_active = ? WHERE id = ?`,
		e.Degree, e.Institution, e.Description, e.StartDate, e.EndDate, e.IsCurrent, e.Order, e.IsActive, e.ID)
}

// --- Services ---

func (s *Store) ListServices(ctx context.Context) ([]Service, error) {
	out := []Service{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM services ORDER BY sort_order ASC, title ASC`)
	return out, err
}

func (s *Store) GetService(ctx context.Context, id int64) (Service, error) {
	var out Service
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM services WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateService(ctx context.Context, sv *Service) error {
	id, err := s.insert(ctx, `INSERT INTO services (title, description, icon_class, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?)`, sv.Title, sv.Description, sv.IconClass, sv.Order, sv.IsActive)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	sv.ID = id
	return nil
}

func (s *Store) UpdateService(ctx context.Context, sv *Service) error {
	return s.update(ctx, `UPDATE services SET title = ?, description = ?, icon_class = ?, sort_order = ?, is_active = ?
		WHERE id = ?`, sv.Title, sv.Description, sv.IconClass, sv.Order, sv.IsActive, sv.ID)
}

// --- Testimonials ---

func (s *Store) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	out := []Testimonial{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM testimonials ORDER BY sort_order ASC, given_on ASC`)
	return out, err
}

func (s *Store) GetTestimonial(ctx context.Context, id int64) (Testimonial, error) {
	var out Testimonial
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM testimonials WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	id, err := s.insert(ctx, `INSERT INTO testimonials (name, position, company, testimonial_text, image, given_on, rating, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Name, t.Position, t.Company, t.Text, t.Image, t.GivenOn, t.Rating, t.Order, t.IsActive)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	t.ID = id
	return nil
}

func (s *Store) UpdateTestimonial(ctx context.Context, t *Testimonial) error {
	return s.update(ctx, `UPDATE testimonials SET name = ?, position = ?, company = ?, testimonial_text = ?,
		image = ?, given_on = ?, rating = ?, sort_order = ?, is_active = ? WHERE id = ?`,
		t.Name, t.Position, t.Company, t.Text, t.Image, t.GivenOn, t.Rating, t.Order, t.IsActive, t.ID)
}

// --- Landing sections ---

func (s *Store) ListLandingSections(ctx context.Context) ([]LandingSection, error) {
	out := []LandingSection{}
	err := s.db.SelectContext(ctx, &out, `SELECT * FROM landing_sections ORDER BY sort_order ASC, title ASC`)
	return out, err
}

func (s *Store) GetLandingSection(ctx context.Context, id int64) (LandingSection, error) {
	var out LandingSection
	err := s.db.GetContext(ctx, &out, s.db.Rebind(`SELECT * FROM landing_sections WHERE id = ?`), id)
	return out, err
}

func (s *Store) CreateLandingSection(ctx context.Context, l *LandingSection) error {
	id, err := s.insert(ctx, `INSERT INTO landing_sections (title, subtitle, section_type, content, icon_class, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.Title, l.Subtitle, l.SectionType, l.Content, l.IconClass, l.Order, l.IsActive)
	if err != nil {
		return fmt.Errorf("insert landing section: %w", err)
	}
	l.ID = id
	return nil
}

func (s *Store) UpdateLandingSection(ctx context.Context, l *LandingSection) error {
	return s.update(ctx, `UPDATE landing_sections SET title = ?, subtitle = ?, section_type = ?, content = ?,
		icon_class = ?, sort_order = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		l.Title, l.Subtitle, l.SectionType, l.Content, l.IconClass, l.Order, l.IsActive, l.ID)
}
