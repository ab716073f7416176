package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/score-report/api/v1"
	"github.com/godilite/score-report/internal/chart"
	"github.com/godilite/score-report/internal/config"
	handler "github.com/godilite/score-report/internal/grpc"
	"github.com/godilite/score-report/internal/httpapi"
	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/internal/repository"
	"github.com/godilite/score-report/internal/service"
	"github.com/godilite/score-report/pkg/cache"
	dbbuilder "github.com/godilite/score-report/pkg/database"
	grpcsrv "github.com/godilite/score-report/pkg/grpc/server"
	"github.com/godilite/score-report/pkg/metrics"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	loadTimeout     = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
	httpServer *http.Server
}

// NewApp loads the reference tables and wires both transports. An invalid
// config or a reference snapshot that fails validation aborts startup.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{logger: logger}

	src, err := a.referenceSource(ctx, cfg)
	if err != nil {
		a.closeStores()
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	tables, err := reference.Load(loadCtx, src)
	if err != nil {
		a.closeStores()
		return nil, fmt.Errorf("reference source %s: %w", cfg.ReferenceSource, err)
	}
	logger.Info("Reference tables loaded",
		zap.String("source", cfg.ReferenceSource),
		zap.Strings("subjects", tables.Subjects()))

	metricsManager := metrics.NewManager()
	metricsManager.SetReferenceSubjects(len(tables.Subjects()))

	reportService := service.NewReportService(tables, logger, service.WithMetrics(metricsManager))

	chartOpts := []chart.Option{}
	if cfg.ChartFontPath != "" {
		font, err := chart.LoadFont(cfg.ChartFontPath)
		if err != nil {
			a.closeStores()
			return nil, fmt.Errorf("chart font: %w", err)
		}
		chartOpts = append(chartOpts, chart.WithFont(font))
	}

	grpcHandlers := handler.NewGRPCHandlers(reportService, logger)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
		grpcsrv.WithRequestID(true),
		grpcsrv.WithMetrics(metricsManager),
	)
	if err != nil {
		a.closeStores()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(pb.ScoreReport_ServiceDesc.ServiceName, func(s *grpc.Server) {
		pb.RegisterScoreReportServer(s, grpcHandlers)
	})
	a.grpcServer = grpcServer

	httpHandler := httpapi.NewHandler(reportService, chart.New(chartOpts...), metricsManager, logger)
	a.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpHandler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

func (a *App) referenceSource(ctx context.Context, cfg *config.Config) (reference.Source, error) {
	var src reference.Source

	switch cfg.ReferenceSource {
	case config.SourceFile:
		src = reference.FileSource{Path: cfg.ReferenceFile}
	case config.SourceSQLite:
		dbPool, err := dbbuilder.New(
			dbbuilder.WithDriver(cfg.DBDriver),
			dbbuilder.WithDataSource(dbbuilder.SQLiteDSN(cfg.DBPath)),
		)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		a.dbPool = dbPool
		a.logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))
		src = reference.NewStoreSource(repository.NewReferenceRepository(dbPool))
	default:
		src = reference.EmbeddedSource{}
	}

	if cfg.RedisAddr == "" {
		return src, nil
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
		cache.WithPassword(cfg.RedisPassword),
		cache.WithDB(cfg.RedisDB),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	a.cache = cacheClient
	a.logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	return reference.NewCachedSource(src, cacheClient, cfg.ReferenceCacheTTL, a.logger), nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext serves until ctx is done or the HTTP listener fails, then shuts
// both servers down.
func (a *App) RunContext(ctx context.Context) error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	httpErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- err
		}
		close(httpErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-httpErr:
		if ok {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	a.logger.Info("application shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", zap.Error(err))
	}
	if err := a.grpcServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("grpc shutdown error", zap.Error(err))
	}
	a.closeStores()

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		a.logger.Warn("shutdown completed but deadline exceeded")
	} else {
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return runErr
}

func (a *App) closeStores() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("cache shutdown error", zap.Error(err))
		}
		a.cache = nil
	}
	if a.dbPool != nil {
		if err := a.dbPool.Close(); err != nil {
			a.logger.Error("database shutdown error", zap.Error(err))
		}
		a.dbPool = nil
	}
}
