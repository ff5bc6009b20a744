package site

import "time"

// Settings is the single global site/business-card record. The store
// guarantees at most one row exists; creation when a row is present
// returns the existing row untouched.
type Settings struct {
	ID int64 `db:"id" json:"id"`

	// Site info
	SiteTitle       string `db:"site_title" json:"site_title"`
	SiteDescription string `db:"site_description" json:"site_description"`
	SiteKeywords    string `db:"site_keywords" json:"site_keywords"`

	// Personal information
	FullName     string `db:"full_name" json:"full_name"`
	JobTitle     string `db:"job_title" json:"job_title"`
	Bio          string `db:"bio" json:"bio"`
	ProfileImage string `db:"profile_image" json:"profile_image"`
	AboutImage   string `db:"about_image" json:"about_image"`

	// Home section
	WelcomeMessage      string `db:"welcome_message" json:"welcome_message"`
	HomeBackgroundImage string `db:"home_background_image" json:"home_background_image"`
	HomeImageURL        string `db:"home_image_url" json:"home_image_url"`
	SocialFollowText    string `db:"social_follow_text" json:"social_follow_text"`
	CTAButtonText       string `db:"cta_button_text" json:"cta_button_text"`

	// About stats
	YearsExperience     string `db:"years_experience" json:"years_experience"`
	CompletedProjects   string `db:"completed_projects" json:"completed_projects"`
	SupportAvailability string `db:"support_availability" json:"support_availability"`

	// Contact info
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	Location string `db:"location" json:"location"`

	// Contact display overrides (blank falls back to name/phone/email)
	MessengerDisplay string `db:"messenger_display" json:"messenger_display"`
	WhatsappDisplay  string `db:"whatsapp_display" json:"whatsapp_display"`
	EmailDisplay     string `db:"email_display" json:"email_display"`

	// Social media
	FacebookURL  string `db:"facebook_url" json:"facebook_url"`
	InstagramURL string `db:"instagram_url" json:"instagram_url"`
	TwitterURL   string `db:"twitter_url" json:"twitter_url"`
	LinkedinURL  string `db:"linkedin_url" json:"linkedin_url"`
	GithubURL    string `db:"github_url" json:"github_url"`

	// About section
	AboutTitle       string `db:"about_title" json:"about_title"`
	AboutDescription string `db:"about_description" json:"about_description"`

	// Section titles
	QualificationsTitle    string `db:"qualifications_title" json:"qualifications_title"`
	QualificationsSubtitle string `db:"qualifications_subtitle" json:"qualifications_subtitle"`
	ExperienceTitle        string `db:"experience_title" json:"experience_title"`
	ExperienceSubtitle     string `db:"experience_subtitle" json:"experience_subtitle"`
	PortfolioTitle         string `db:"portfolio_title" json:"portfolio_title"`
	PortfolioSubtitle      string `db:"portfolio_subtitle" json:"portfolio_subtitle"`
	ServicesTitle          string `db:"services_title" json:"services_title"`
	ServicesSubtitle       string `db:"services_subtitle" json:"services_subtitle"`
	TestimonialsTitle      string `db:"testimonials_title" json:"testimonials_title"`
	TestimonialsSubtitle   string `db:"testimonials_subtitle" json:"testimonials_subtitle"`
	ContactTitle           string `db:"contact_title" json:"contact_title"`
	ContactSubtitle        string `db:"contact_subtitle" json:"contact_subtitle"`

	// Default images used when a record has none attached
	DefaultProjectImage     string `db:"default_project_image" json:"default_project_image"`
	DefaultTestimonialImage string `db:"default_testimonial_image" json:"default_testimonial_image"`
	DefaultAboutImage       string `db:"default_about_image" json:"default_about_image"`

	// Footer
	FooterCopyrightText     string `db:"footer_copyright_text" json:"footer_copyright_text"`
	FooterCopyrightLink     string `db:"footer_copyright_link" json:"footer_copyright_link"`
	FooterCopyrightLinkText string `db:"footer_copyright_link_text" json:"footer_copyright_link_text"`

	// SEO
	GoogleAnalyticsID string `db:"google_analytics_id" json:"google_analytics_id"`
	MetaImage         string `db:"meta_image" json:"meta_image"`

	// Feature flags
	EnableBlog        bool `db:"enable_blog" json:"enable_blog"`
	EnableContactForm bool `db:"enable_contact_form" json:"enable_contact_form"`
	EnableDarkMode    bool `db:"enable_dark_mode" json:"enable_dark_mode"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Default returns the bootstrap settings row created on first read.
func Default() Settings {
	return Settings{
		SiteTitle:           "My Portfolio",
		SiteDescription:     "Frontend Developer Portfolio",
		SiteKeywords:        "portfolio, frontend, developer, web design",
		JobTitle:            "Frontend Developer",
		WelcomeMessage:      "Hello, I am",
		SocialFollowText:    "Follow Me",
		CTAButtonText:       "More About me!",
		YearsExperience:     "5+",
		CompletedProjects:   "30+",
		SupportAvailability: "Online 24/7",
		AboutTitle:          "About Me",
		QualificationsTitle: "My Journey", QualificationsSubtitle: "Qualifications",
		ExperienceTitle: "My Abilities", ExperienceSubtitle: "My Experience",
		PortfolioTitle: "My Portfolio", PortfolioSubtitle: "Recent Works",
		ServicesTitle: "Services", ServicesSubtitle: "What I Offer",
		TestimonialsTitle: "My clients say", TestimonialsSubtitle: "Testimonials",
		ContactTitle: "Get in Touch", ContactSubtitle: "Contact me",
		FooterCopyrightText: "All rights reserved",
		EnableContactForm:   true,
		EnableDarkMode:      true,
	}
}
