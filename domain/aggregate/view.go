package aggregate

// View is the complete payload the public theme endpoint serves. Field
// names and nesting are part of the frontend contract; change them only
// together with the consuming templates.
type View struct {
	Colors     Colors           `json:"colors"`
	Typography Typography       `json:"typography"`
	Layout     Layout           `json:"layout"`
	Animations Animations       `json:"animations"`
	CustomCSS  string           `json:"custom_css"`
	Site       SiteInfo         `json:"site"`
	Personal   Personal         `json:"personal"`
	Skills     []SkillView      `json:"skills"`
	Projects   []ProjectView    `json:"projects"`
	Experience []ExperienceView `json:"experience"`
	Education  []EducationView  `json:"education"`
}

type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Card       string `json:"card"`
}

type Typography struct {
	FontFamily   string `json:"font_family"`
	HeadingFont  string `json:"heading_font"`
	FontSizeBase int    `json:"font_size_base"`
}

type Layout struct {
	SidebarWidth int `json:"sidebar_width"`
	BorderRadius int `json:"border_radius"`
	SpacingUnit  int `json:"spacing_unit"`
}

type Animations struct {
	Enabled bool    `json:"enabled"`
	Speed   float64 `json:"speed"`
	Stars   bool    `json:"stars"`
}

type SiteInfo struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Social      SocialLinks `json:"social"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Linkedin  string `json:"linkedin"`
	Github    string `json:"github"`
}

type Personal struct {
	FullName         string  `json:"full_name"`
	JobTitle         string  `json:"job_title"`
	Bio              string  `json:"bio"`
	ProfileImage     *string `json:"profile_image"`
	AboutTitle       string  `json:"about_title"`
	AboutDescription string  `json:"about_description"`
}

type SkillView struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

type ProjectView struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Image        *string `json:"image"`
	Technologies string  `json:"technologies"`
	DemoURL      string  `json:"demo_url"`
	GithubURL    string  `json:"github_url"`
}

type ExperienceView struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
}

type EducationView struct {
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
}
