package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Reference table sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

// ErrInvalid is returned by Validate for settings that cannot be defaulted.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	ReferenceSource       string
	ReferenceFile         string
	DBPath                string
	DBDriver              string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	ReferenceCacheTTL     time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool
	HTTPAddr              string
	ChartFontPath         string
}

// LoadFromEnv loads configuration from environment variables. Numbers and
// durations that fail to parse fall back to their defaults; the reference
// source is kept as given and checked by Validate.
func LoadFromEnv() *Config {
	portStr := getEnv("GRPC_PORT", "50051")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 50051
	}

	reflectionStr := getEnv("GRPC_REFLECTION_ENABLED", "false")
	reflection, err := strconv.ParseBool(reflectionStr)
	if err != nil {
		reflection = false
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		redisDB = 0
	}

	ttl, err := time.ParseDuration(getEnv("REFERENCE_CACHE_TTL", "10m"))
	if err != nil || ttl <= 0 {
		ttl = 10 * time.Minute
	}

	source := strings.ToLower(strings.TrimSpace(getEnv("REFERENCE_SOURCE", SourceEmbedded)))

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		ReferenceSource:       source,
		ReferenceFile:         getEnv("REFERENCE_FILE", "./config/reference.yaml"),
		DBPath:                getEnv("DB_PATH", "./data/reference.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               redisDB,
		ReferenceCacheTTL:     ttl,
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		ChartFontPath:         os.Getenv("CHART_FONT_PATH"),
	}
}

// Validate rejects settings that would silently change which reference
// tables are served.
func (c *Config) Validate() error {
	switch c.ReferenceSource {
	case SourceEmbedded, SourceFile, SourceSQLite:
		return nil
	default:
		return fmt.Errorf("%w: REFERENCE_SOURCE %q, want %s, %s or %s",
			ErrInvalid, c.ReferenceSource, SourceEmbedded, SourceFile, SourceSQLite)
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
