// Command server serves score reports over gRPC and HTTP.
package main

import (
	"context"
	"log"
	"os"

	"github.com/godilite/score-report/internal/app"
	"github.com/godilite/score-report/internal/config"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	envErr := godotenv.Load(envFile)

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil && !os.IsNotExist(envErr) {
		logger.Warn("env file not loaded", zap.String("path", envFile), zap.Error(envErr))
	}

	logger.Info("configuration loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("reference_source", cfg.ReferenceSource),
		zap.Bool("reference_cache", cfg.RedisAddr != ""),
		zap.Int("grpc_port", cfg.GRPCPort),
		zap.String("http_addr", cfg.HTTPAddr))

	application, err := app.NewApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	if err := application.Run(); err != nil {
		logger.Fatal("Application exited with error", zap.Error(err))
	}
}
