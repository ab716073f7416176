package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV", "REFERENCE_SOURCE", "REFERENCE_FILE", "DB_DRIVER", "DB_PATH",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REFERENCE_CACHE_TTL", "GRPC_PORT", "GRPC_REFLECTION_ENABLED",
	"HTTP_ADDR", "CHART_FONT_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadFromEnv()

	assert.Equal(t, &Config{
		AppEnv:            "development",
		ReferenceSource:   SourceEmbedded,
		ReferenceFile:     "./config/reference.yaml",
		DBPath:            "./data/reference.db",
		DBDriver:          "sqlite3",
		ReferenceCacheTTL: 10 * time.Minute,
		GRPCPort:          50051,
		HTTPAddr:          ":8080",
	}, cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("REFERENCE_SOURCE", "SQLite")
	t.Setenv("DB_PATH", "/tmp/ref.db")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REFERENCE_CACHE_TTL", "90s")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("GRPC_REFLECTION_ENABLED", "true")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("CHART_FONT_PATH", "/fonts/NotoSansTC.ttf")

	cfg := LoadFromEnv()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, SourceSQLite, cfg.ReferenceSource)
	assert.Equal(t, "/tmp/ref.db", cfg.DBPath)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPassword)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.ReferenceCacheTTL)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.True(t, cfg.GRPCReflectionEnabled)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "/fonts/NotoSansTC.ttf", cfg.ChartFontPath)
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REFERENCE_CACHE_TTL", "-5m")
	t.Setenv("GRPC_PORT", "not-a-port")
	t.Setenv("REDIS_DB", "-1")
	t.Setenv("GRPC_REFLECTION_ENABLED", "maybe")

	cfg := LoadFromEnv()

	assert.Equal(t, 10*time.Minute, cfg.ReferenceCacheTTL)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Zero(t, cfg.RedisDB)
	assert.False(t, cfg.GRPCReflectionEnabled)
}

func TestValidate_ReferenceSource(t *testing.T) {
	clearEnv(t)

	for _, source := range []string{"embedded", "FILE", " sqlite "} {
		t.Setenv("REFERENCE_SOURCE", source)

		assert.NoError(t, LoadFromEnv().Validate(), source)
	}

	for _, source := range []string{"sqlit", "postgres"} {
		t.Setenv("REFERENCE_SOURCE", source)

		cfg := LoadFromEnv()
		err := cfg.Validate()

		assert.Equal(t, source, cfg.ReferenceSource, "unknown sources are not replaced")
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), source)
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(&Config{AppEnv: env})

		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
