package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every environment-level option the application recognizes.
// It is built once in main and handed explicitly to the components that
// need it; nothing reads viper after startup.
type Config struct {
	Port           string
	Debug          bool
	JWTSecret      string
	DatabaseURL    string
	AllowedOrigins []string

	MediaRoot  string
	MediaURL   string
	StaticRoot string
	StaticURL  string

	AWSRegion        string
	ResendAPIKey     string
	ContactRecipient string
	ContactSender    string

	Environment string // "development" or "production"
	LogLevel    string
}

// Load reads .env (when present) plus process environment variables.
func Load() Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine in deployed environments; everything
		// can come from real environment variables.
		log.Printf("No .env file loaded: %v", err)
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEPLOY_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STATIC_ROOT", "static")
	viper.SetDefault("STATIC_URL", "/static")
	viper.SetDefault("MEDIA_URL", "/media")
	viper.SetDefault("AWS_REGION", "us-east-1")

	cfg := Config{
		Port:             viper.GetString("PORT"),
		Debug:            viper.GetBool("DEBUG"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		MediaURL:         viper.GetString("MEDIA_URL"),
		StaticRoot:       viper.GetString("STATIC_ROOT"),
		StaticURL:        viper.GetString("STATIC_URL"),
		AWSRegion:        viper.GetString("AWS_REGION"),
		ResendAPIKey:     viper.GetString("RESEND_API_KEY"),
		ContactRecipient: viper.GetString("CONTACT_RECIPIENT"),
		ContactSender:    viper.GetString("CONTACT_SENDER"),
		Environment:      viper.GetString("DEPLOY_ENV"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}

	if origins := viper.GetString("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:8000"}
	}

	// Media lives on the durable volume in production deployments and in
	// a local directory everywhere else. MEDIA_ROOT overrides both.
	cfg.MediaRoot = viper.GetString("MEDIA_ROOT")
	if cfg.MediaRoot == "" {
		if cfg.Environment == "production" {
			cfg.MediaRoot = "/data/media"
		} else {
			cfg.MediaRoot = "media"
		}
	}

	return cfg
}
