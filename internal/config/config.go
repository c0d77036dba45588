// Package config reads all runtime configuration from environment
// variables, falling back to sensible local-development defaults.
// A .env file in the working directory is loaded if present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Pricing model identifiers. Exactly one is active per deployment.
const (
	PricingPerGuest = "per_guest"
	PricingPerRoom  = "per_room"
)

// Audit store backends.
const (
	StoreSupabase = "supabase"
	StorePostgres = "postgres"
	StoreDisabled = "disabled"
)

// Config holds the full service configuration.
type Config struct {
	Port string

	// Supabase PostgREST endpoint for the booking audit trail.
	// Leaving either value empty disables persistence entirely.
	SupabaseURL string
	SupabaseKey string

	// StoreBackend selects where booking records are written:
	// "supabase" (default), "postgres", or "disabled".
	StoreBackend string

	Database DatabaseConfig

	// WhatsAppNumber is the destination contact handle for the
	// booking deep link, in international format without "+".
	WhatsAppNumber string

	// PricingModel is "per_guest" or "per_room".
	PricingModel string

	// RatePerGuest is the flat nightly rate per person in rupiah,
	// used by the per_guest pricing model.
	RatePerGuest int
}

// DatabaseConfig holds PostgreSQL connection settings for the
// direct-insert audit store backend.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds a libpq-compatible connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load reads configuration from the environment. A missing .env file
// is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseKey:    getEnv("SUPABASE_ANON_KEY", ""),
		StoreBackend:   getEnv("STORE_BACKEND", StoreSupabase),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "6281354617616"),
		PricingModel:   getEnv("PRICING_MODEL", PricingPerGuest),
		RatePerGuest:   getEnvInt("RATE_PER_GUEST", 100_000),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "guesthouse"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// StoreConfigured reports whether the selected backend has enough
// configuration to accept writes.
func (c Config) StoreConfigured() bool {
	switch c.StoreBackend {
	case StoreSupabase:
		return c.SupabaseURL != "" && c.SupabaseKey != ""
	case StorePostgres:
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
