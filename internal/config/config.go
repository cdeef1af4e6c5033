package config

import (
	"os"
	"strconv"
	"time"

	"pecheck/internal/registry"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database (optional; empty disables Postgres entirely)
	DatabaseURL string

	// PE database
	DatabaseSource string        // "bundled", "file" or "postgres"
	DatabaseFile   string        // JSON file used when DatabaseSource is "file"
	MatchMode      string        // "substring" or "label"
	ReloadInterval time.Duration // 0 disables periodic reloads

	// Rate limiting
	RedisURL     string // Shared limiter storage; in-memory when empty
	RateLimitMax int    // Requests per minute per client

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "PE Checker"
	SiteFooter string // env: SITE_FOOTER, default: "PE Checker - Is this company owned by private equity?"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":3000"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabaseSource: getEnv("PE_DATABASE_SOURCE", SourceBundled),
		DatabaseFile:   getEnv("PE_DATABASE_FILE", "pe_database.json"),
		MatchMode:      getEnv("MATCH_MODE", "substring"),
		ReloadInterval: getDuration("RELOAD_INTERVAL", 0),
		RedisURL:       getEnv("REDIS_URL", ""),
		RateLimitMax:   getInt("RATE_LIMIT_MAX", 120),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),

		SiteTitle:  getEnv("SITE_TITLE", "PE Checker"),
		SiteFooter: getEnv("SITE_FOOTER", "PE Checker - Is this company owned by private equity?"),
	}
}

// Database sources.
const (
	SourceBundled  = registry.KindBundled
	SourceFile     = registry.KindFile
	SourcePostgres = registry.KindPostgres
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasDatabase returns true if a Postgres connection is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
