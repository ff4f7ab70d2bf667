package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Bootstrap credentials for the first admin account. Ignored once an
	// admin row exists.
	AdminEmail    string
	AdminPassword string

	// AI providers. Any key may be empty; the assistant degrades to a
	// fixed notice when none is configured.
	GeminiAPIKey string
	GroqAPIKey   string
	MetaAPIKey   string
	PreferredAI  string // auto | gemini | meta | meta-direct

	// Fallback contact number when site_content has no whatsapp_number.
	WhatsAppNumber string

	UploadDir     string
	PublicBaseURL string
	MigrationsDir string
}

func Load() *Config {
	// Local dev convenience; missing .env is fine.
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", "dev-jwt-secret-not-for-production-use-64-chars-minimum-padding"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GroqAPIKey:     getEnv("GROQ_API_KEY", ""),
		MetaAPIKey:     getEnv("META_API_KEY", ""),
		PreferredAI:    getEnv("PREFERRED_AI", "auto"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "221779883924"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

// DatabaseConfigured reports whether a real backend is wired. When false
// the public endpoints serve the built-in fallback content and admin
// mutations are rejected.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
