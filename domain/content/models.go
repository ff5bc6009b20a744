package content

import "time"

// Skill categories shipped by default. Category is free text at the
// storage level; unknown values form their own bucket on the page.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryTools    = "tools"
	CategoryOther    = "other"
)

// KnownCategories lists the built-in skill categories in display order.
var KnownCategories = []string{CategoryFrontend, CategoryBackend, CategoryTools, CategoryOther}

// Landing section types.
const (
	SectionServices     = "services"
	SectionTestimonials = "testimonials"
	SectionStats        = "stats"
	SectionCustom       = "custom"
)

var validSectionTypes = map[string]bool{
	SectionServices:     true,
	SectionTestimonials: true,
	SectionStats:        true,
	SectionCustom:       true,
}

type Skill struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Category    string `db:"category" json:"category"`
	Proficiency int    `db:"proficiency" json:"proficiency"`
	Order       int    `db:"sort_order" json:"order"`
	IsActive    bool   `db:"is_active" json:"is_active"`
}

type Project struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Image        string    `db:"image" json:"image"`
	Technologies string    `db:"technologies" json:"technologies"`
	DemoURL      string    `db:"demo_url" json:"demo_url"`
	GithubURL    string    `db:"github_url" json:"github_url"`
	Order        int       `db:"sort_order" json:"order"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Experience struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Company     string     `db:"company" json:"company"`
	Description string     `db:"description" json:"description"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date"`
	IsCurrent   bool       `db:"is_current" json:"is_current"`
	Order       int        `db:"sort_order" json:"order"`
	IsActive    bool       `db:"is_active" json:"is_active"`
}

type Education struct {
	ID          int64      `db:"id" json:"id"`
	Degree      string     `db:"degree" json:"degree"`
	Institution string     `db:"institution" json:"institution"`
	Description string     `db:"description" json:"description"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date"`
	IsCurrent   bool       `db:"is_current" json:"is_current"`
	Order       int        `db:"sort_order" json:"order"`
	IsActive    bool       `db:"is_active" json:"is_active"`
}

type Service struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	IconClass   string `db:"icon_class" json:"icon_class"`
	Order       int    `db:"sort_order" json:"order"`
	IsActive    bool   `db:"is_active" json:"is_active"`
}

type Testimonial struct {
	ID       int64     `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Position string    `db:"position" json:"position"`
	Company  string    `db:"company" json:"company"`
	Text     string    `db:"testimonial_text" json:"text"`
	Image    string    `db:"image" json:"image"`
	GivenOn  time.Time `db:"given_on" json:"date"`
	Rating   int       `db:"rating" json:"rating"`
	Order    int       `db:"sort_order" json:"order"`
	IsActive bool      `db:"is_active" json:"is_active"`
}

type LandingSection struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Subtitle    string    `db:"subtitle" json:"subtitle"`
	SectionType string    `db:"section_type" json:"section_type"`
	Content     string    `db:"content" json:"content"`
	IconClass   string    `db:"icon_class" json:"icon_class"`
	Order       int       `db:"sort_order" json:"order"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ValidSectionType reports whether t is one of the landing section types.
func ValidSectionType(t string) bool {
	return validSectionTypes[t]
}
