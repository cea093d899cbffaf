// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	// AppBaseURL is the public URL of the frontend; password reset links
	// are built against it.
	AppBaseURL string

	ResetTokenTTL time.Duration
	// AuthExposeResetLink puts the reset URL into the forgot-password
	// response body. Development convenience only; in production the link
	// travels by email.
	AuthExposeResetLink bool

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool

	GolfAPIBaseURL string
	GolfAPIKey     string
}

func Load() *Config {
	// Missing .env is fine; real env vars take over in production.
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "teebox")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: databaseURL,

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),

		ResetTokenTTL:       getDurationEnv("RESET_TOKEN_TTL", time.Hour),
		AuthExposeResetLink: getBoolEnv("AUTH_EXPOSE_RESET_LINK", env == "development"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@teebox.local"),
		SMTPUseTLS:   getBoolEnv("SMTP_USE_TLS", false),

		GolfAPIBaseURL: getEnv("GOLF_API_BASE_URL", "https://api.golfcourseapi.com"),
		GolfAPIKey:     os.Getenv("GOLF_API_KEY"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
