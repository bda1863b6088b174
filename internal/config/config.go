// Package config loads runtime settings from defaults, an optional .env
// file and the process environment, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// StoreBackend picks the repository implementation: "gorm" or "sqlx".
	StoreBackend string
	// DBDriver is "postgres" or "sqlite".
	DBDriver    string
	DatabaseURL string

	JWTSecret      string
	SessionTTL     time.Duration
	PasswordHasher string
	SeedDemoUser   bool

	AIProvider   string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	CityDatasetPath string
	CityDatasetTTL  time.Duration

	LogLevel  string
	LogFormat string
}

func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.StoreBackend = "gorm"
	c.DBDriver = "sqlite"
	c.DatabaseURL = "travel_app.db"
	c.JWTSecret = "dev-secret-change-me"
	c.SessionTTL = 12 * time.Hour
	c.PasswordHasher = "bcrypt"
	c.SeedDemoUser = true
	c.AIProvider = "gemini"
	c.GeminiModel = "gemini-2.5-flash"
	c.OpenAIModel = "gpt-4o-mini"
	c.CityDatasetPath = "worldcities.csv"
	c.CityDatasetTTL = 10 * time.Minute
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then .env (if present), then the environment.
func LoadConfig() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key, current string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return current
	}

	c.Port = get("PORT", c.Port)
	c.StoreBackend = strings.ToLower(get("STORE_BACKEND", c.StoreBackend))
	c.DBDriver = strings.ToLower(get("DB_DRIVER", c.DBDriver))
	c.DatabaseURL = get("DATABASE_URL", c.DatabaseURL)
	c.JWTSecret = get("JWT_SECRET", c.JWTSecret)
	c.PasswordHasher = strings.ToLower(get("PASSWORD_HASHER", c.PasswordHasher))
	c.AIProvider = strings.ToLower(get("AI_PROVIDER", c.AIProvider))
	c.GeminiAPIKey = get("GEMINI_API_KEY", c.GeminiAPIKey)
	c.GeminiModel = get("GEMINI_MODEL", c.GeminiModel)
	c.OpenAIAPIKey = get("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.OpenAIModel = get("OPENAI_MODEL", c.OpenAIModel)
	c.CityDatasetPath = get("CITY_DATASET_PATH", c.CityDatasetPath)
	c.LogLevel = strings.ToLower(get("LOG_LEVEL", c.LogLevel))
	c.LogFormat = strings.ToLower(get("LOG_FORMAT", c.LogFormat))

	var err error
	if c.SessionTTL, err = parseDuration("SESSION_TTL", get("SESSION_TTL", ""), c.SessionTTL); err != nil {
		return err
	}
	if c.CityDatasetTTL, err = parseDuration("CITY_DATASET_TTL", get("CITY_DATASET_TTL", ""), c.CityDatasetTTL); err != nil {
		return err
	}
	if v := get("SEED_DEMO_USER", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_DEMO_USER: %w", err)
		}
		c.SeedDemoUser = b
	}
	return nil
}

func parseDuration(key, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "gorm", "sqlx":
	default:
		return fmt.Errorf("unsupported store backend: %s. Use 'gorm' or 'sqlx'", c.StoreBackend)
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver: %s. Use 'postgres' or 'sqlite'", c.DBDriver)
	}
	switch c.AIProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when using OpenAI provider")
		}
	default:
		return fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", c.AIProvider)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
