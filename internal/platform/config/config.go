package config

import (
	"fmt"
	"log"

	"github.com/SscSPs/sitebooks_ledger/internal/importer"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
	MigrationsPath  string

	PosthogAPIKey   string
	PosthogEndpoint string

	// ImportRateLimit uses the ulule limiter format, e.g. "30-M".
	ImportRateLimit     string
	MaxImportBytes      int64
	NegativePaymentRule importer.NegativePaymentRule
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")
	viper.SetDefault("IMPORT_RATE_LIMIT", "30-M")
	viper.SetDefault("MAX_IMPORT_BYTES", 10<<20)
	viper.SetDefault("NEGATIVE_PAYMENT_RULE", string(importer.NegativePaymentInclude))

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	rule, err := importer.ParseNegativePaymentRule(viper.GetString("NEGATIVE_PAYMENT_RULE"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEGATIVE_PAYMENT_RULE: %w", err)
	}
	cfg.NegativePaymentRule = rule

	cfg.MaxImportBytes = viper.GetInt64("MAX_IMPORT_BYTES")
	if cfg.MaxImportBytes <= 0 {
		return nil, fmt.Errorf("MAX_IMPORT_BYTES must be positive, got %d", cfg.MaxImportBytes)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.ImportRateLimit = viper.GetString("IMPORT_RATE_LIMIT")

	if cfg.IsProduction && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	return cfg, nil
}
