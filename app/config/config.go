package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	APIBaseURL     string
	StorageBaseURL string
	Session        SessionConfig
	APITimeout     time.Duration
	TimeZone       string
	CSRFEnabled    bool
}

type SessionConfig struct {
	Secret       string
	CookieSecure bool
	MaxAge       time.Duration
}

// Load reads .env (if any) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env file: %v", err)
	}

	cfg := &Config{
		Addr:           envOrDefault("APP_ADDR", ":3000"),
		APIBaseURL:     strings.TrimRight(envOrDefault("API_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
		StorageBaseURL: strings.TrimRight(envOrDefault("STORAGE_BASE_URL", "http://127.0.0.1:8000/storage"), "/"),
		Session: SessionConfig{
			Secret:       envOrDefault("SESSION_SECRET", "rembug-warga-secret-key"), // Default for development
			CookieSecure: envBool("COOKIE_SECURE", false),
			MaxAge:       envDuration("SESSION_MAX_AGE", 7*24*time.Hour),
		},
		APITimeout:  envDuration("API_TIMEOUT", 10*time.Second),
		TimeZone:    envOrDefault("APP_TIMEZONE", "Asia/Jakarta"),
		CSRFEnabled: envBool("CSRF_ENABLED", true),
	}

	if os.Getenv("SESSION_SECRET") == "" {
		log.Println("Warning: SESSION_SECRET not set, using development secret")
	}
	log.Printf("API base URL: %s", cfg.APIBaseURL)
	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
