package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Mongo        MongoConfig
	Logger       LoggerConfig
	CSRF         CSRFConfig
	CORS         CORSConfig
	Health       HealthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MongoConfig holds document-store connection values.
type MongoConfig struct {
	URI               string
	Database          string
	MaxPoolSize       uint64
	MinPoolSize       uint64
	ConnectTimeoutSec int
	SocketTimeoutSec  int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// CSRFConfig defines anti-forgery token parameters.
type CSRFConfig struct {
	Enabled    bool
	Secret     string
	TTLMinutes int
}

// CORSConfig holds the allowed browser origin.
type CORSConfig struct {
	AllowedOrigin string
}

// HealthConfig controls the background store probe.
type HealthConfig struct {
	CheckIntervalSeconds int
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
// It fails when a required secret or URI is absent so the process can exit at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}

	csrfEnabled := getEnvAsBool("CSRF_ENABLED", false)
	csrfSecret := getEnv("CSRF_SECRET", "dev-secret")
	if csrfEnabled && os.Getenv("CSRF_SECRET") == "" {
		return nil, errors.New("CSRF_SECRET is required when CSRF_ENABLED is true")
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "membership-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mongo: MongoConfig{
			URI:               mongoURI,
			Database:          getEnv("MONGO_DATABASE", "membership"),
			MaxPoolSize:       uint64(getEnvAsInt("MONGO_MAX_POOL_SIZE", 10)),
			MinPoolSize:       uint64(getEnvAsInt("MONGO_MIN_POOL_SIZE", 5)),
			ConnectTimeoutSec: getEnvAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10),
			SocketTimeoutSec:  getEnvAsInt("MONGO_SOCKET_TIMEOUT_SECONDS", 45),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CSRF: CSRFConfig{
			Enabled:    csrfEnabled,
			Secret:     csrfSecret,
			TTLMinutes: getEnvAsInt("CSRF_TOKEN_TTL_MINUTES", 60),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		Health: HealthConfig{
			CheckIntervalSeconds: getEnvAsInt("HEALTH_CHECK_INTERVAL_SECONDS", 30),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsProduction reports whether the service runs in production mode.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// ConnectTimeout returns the store connection-establish timeout.
func (m MongoConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutSec) * time.Second
}

// SocketTimeout returns the per-operation socket timeout.
func (m MongoConfig) SocketTimeout() time.Duration {
	return time.Duration(m.SocketTimeoutSec) * time.Second
}

// CheckInterval returns the background probe interval.
func (h HealthConfig) CheckInterval() time.Duration {
	if h.CheckIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(h.CheckIntervalSeconds) * time.Second
}

// TokenTTL returns the CSRF token lifetime.
func (c CSRFConfig) TokenTTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
