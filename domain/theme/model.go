package theme

import "time"

// Theme is one visual theme for the public site. At most one row is
// active at a time; the store's write path enforces that.
type Theme struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Color scheme (hex values including leading #)
	PrimaryColor    string `db:"primary_color" json:"primary_color"`
	SecondaryColor  string `db:"secondary_color" json:"secondary_color"`
	AccentColor     string `db:"accent_color" json:"accent_color"`
	BackgroundColor string `db:"background_color" json:"background_color"`
	TextColor       string `db:"text_color" json:"text_color"`
	CardColor       string `db:"card_color" json:"card_color"`

	// Typography
	FontFamily   string `db:"font_family" json:"font_family"`
	HeadingFont  string `db:"heading_font" json:"heading_font"`
	FontSizeBase int    `db:"font_size_base" json:"font_size_base"`

	// Layout (px)
	SidebarWidth int `db:"sidebar_width" json:"sidebar_width"`
	BorderRadius int `db:"border_radius" json:"border_radius"`
	SpacingUnit  int `db:"spacing_unit" json:"spacing_unit"`

	// Animations
	EnableAnimations bool    `db:"enable_animations" json:"enable_animations"`
	AnimationSpeed   float64 `db:"animation_speed" json:"animation_speed"`
	EnableStars      bool    `db:"enable_stars" json:"enable_stars"`

	CustomCSS string `db:"custom_css" json:"custom_css"`
}

// Default returns the bootstrap theme created when no active theme exists.
func Default() Theme {
	return Theme{
		Name:             "Default Theme",
		IsActive:         true,
		PrimaryColor:     "#667eea",
		SecondaryColor:   "#764ba2",
		AccentColor:      "#f093fb",
		BackgroundColor:  "#1a1a2e",
		TextColor:        "#ffffff",
		CardColor:        "#16213e",
		FontFamily:       "Poppins",
		HeadingFont:      "Turret Road",
		FontSizeBase:     16,
		SidebarWidth:     100,
		BorderRadius:     8,
		SpacingUnit:      16,
		EnableAnimations: true,
		AnimationSpeed:   1.0,
		EnableStars:      true,
	}
}

// SaveRequest is the admin payload for creating or updating a theme.
type SaveRequest struct {
	Name             string  `json:"name"`
	IsActive         bool    `json:"is_active"`
	PrimaryColor     string  `json:"primary_color"`
	SecondaryColor   string  `json:"secondary_color"`
	AccentColor      string  `json:"accent_color"`
	BackgroundColor  string  `json:"background_color"`
	TextColor        string  `json:"text_color"`
	CardColor        string  `json:"card_color"`
	FontFamily       string  `json:"font_family"`
	HeadingFont      string  `json:"heading_font"`
	FontSizeBase     int     `json:"font_size_base"`
	SidebarWidth     int     `json:"sidebar_width"`
	BorderRadius     int     `json:"border_radius"`
	SpacingUnit      int     `json:"spacing_unit"`
	EnableAnimations bool    `json:"enable_animations"`
	AnimationSpeed   float64 `json:"animation_speed"`
	EnableStars      bool    `json:"enable_stars"`
	CustomCSS        string  `json:"custom_css"`
}
