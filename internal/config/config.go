package config

import (
	"os"
	"strconv"
	"time"
)

// Config is everything the server reads from the environment. Values are
// resolved once at startup and passed down explicitly; nothing else in the
// codebase touches os.Getenv.
type Config struct {
	Addr           string
	DatabaseURL    string
	StoreBackend   string // "postgres" or "memory"
	GeminiAPIKey   string
	GeminiModel    string
	RedisURL       string
	ExtractTimeout time.Duration
}

// FromEnv builds a Config with safe defaults. The store backend defaults to
// postgres when DATABASE_URL is present and memory otherwise, so the app
// always starts.
func FromEnv() Config {
	cfg := Config{
		Addr:           ":8080",
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		StoreBackend:   os.Getenv("STORE"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    "gemini-2.0-flash",
		RedisURL:       os.Getenv("REDIS_URL"),
		ExtractTimeout: 30 * time.Second,
	}

	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err == nil {
			cfg.Addr = ":" + port
		}
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if secs := os.Getenv("EXTRACT_TIMEOUT_SECONDS"); secs != "" {
		if v, err := strconv.Atoi(secs); err == nil && v > 0 {
			cfg.ExtractTimeout = time.Duration(v) * time.Second
		}
	}
	if cfg.StoreBackend == "" {
		if cfg.DatabaseURL != "" {
			cfg.StoreBackend = "postgres"
		} else {
			cfg.StoreBackend = "memory"
		}
	}
	return cfg
}
