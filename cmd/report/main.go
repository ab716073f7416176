// Command report prints a student's score analysis and optionally writes
// the comparison and percentile charts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"

	"github.com/godilite/score-report/internal/chart"
	"github.com/godilite/score-report/internal/config"
	"github.com/godilite/score-report/internal/input"
	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/internal/repository"
	"github.com/godilite/score-report/internal/service"
	"github.com/godilite/score-report/internal/textreport"
	"github.com/godilite/score-report/pkg/cache"
	dbbuilder "github.com/godilite/score-report/pkg/database"
)

type options struct {
	input         string
	referenceFile string
	referenceDB   string
	chartDir      string
	chartFormat   string
	font          string
	seedDB        bool
	redisAddr     string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.input, "input", "", "JSON file with the student's scores, - for stdin")
	fs.StringVar(&opts.referenceFile, "reference-file", "", "YAML reference tables (default: built-in tables)")
	fs.StringVar(&opts.referenceDB, "reference-db", "", "SQLite database holding the reference tables")
	fs.StringVar(&opts.chartDir, "chart-dir", "", "directory to write comparison and percentile charts to")
	fs.StringVar(&opts.chartFormat, "chart-format", "png", "chart format: png or svg")
	fs.StringVar(&opts.font, "font", "", "TrueType font for chart labels")
	fs.BoolVar(&opts.seedDB, "seed-db", false, "write the reference tables into -reference-db and exit unless -input is set")
	fs.StringVar(&opts.redisAddr, "redis-addr", "", "Redis holding the servers' cached reference tables, cleared after -seed-db")
	_ = fs.String("config", "", "config file (optional), JSON format")

	if err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("SCORE_REPORT"),
	); err != nil {
		return nil, err
	}

	switch {
	case opts.seedDB && opts.referenceDB == "":
		return nil, errors.New("-seed-db requires -reference-db")
	case opts.referenceFile != "" && opts.referenceDB != "" && !opts.seedDB:
		return nil, errors.New("-reference-file and -reference-db are mutually exclusive")
	case opts.input == "" && !opts.seedDB:
		return nil, errors.New("-input is required")
	}
	return opts, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := config.NewLogger(config.LoadFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	src, closeSrc, err := referenceSource(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer closeSrc()

	if opts.input == "" {
		return nil
	}

	tables, err := reference.Load(ctx, src)
	if err != nil {
		return err
	}

	scores, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	analysis, err := service.NewReportService(tables, logger).Analyze(scores)
	if err != nil {
		return err
	}

	if err := textreport.Write(stdout, analysis); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.chartDir == "" {
		return nil
	}
	return writeCharts(opts, analysis.Report, logger)
}

// referenceSource picks the table source. With -seed-db the database is
// filled first, from -reference-file when given.
func referenceSource(ctx context.Context, opts *options, logger *zap.Logger) (reference.Source, func(), error) {
	noop := func() {}

	if opts.referenceDB == "" {
		if opts.referenceFile != "" {
			return reference.FileSource{Path: opts.referenceFile}, noop, nil
		}
		return reference.EmbeddedSource{}, noop, nil
	}

	db, err := dbbuilder.New(dbbuilder.WithDataSource(dbbuilder.SQLiteDSN(opts.referenceDB)))
	if err != nil {
		return nil, noop, err
	}
	closeDB := func() { _ = db.Close() }
	repo := repository.NewReferenceRepository(db)

	if opts.seedDB {
		if err := seed(ctx, repo, opts.referenceFile); err != nil {
			closeDB()
			return nil, noop, err
		}
		logger.Info("reference database seeded", zap.String("path", opts.referenceDB))
		if opts.redisAddr != "" {
			invalidateCachedTables(ctx, opts.redisAddr, logger)
		}
	}

	return reference.NewStoreSource(repo), closeDB, nil
}

func seed(ctx context.Context, repo *repository.ReferenceRepository, referenceFile string) error {
	var src reference.Source = reference.EmbeddedSource{}
	if referenceFile != "" {
		src = reference.FileSource{Path: referenceFile}
	}
	snap, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if _, err := snap.Tables(); err != nil {
		return err
	}

	if err := repo.CreateSchema(ctx); err != nil {
		return err
	}
	averages, bins := snap.Rows()
	return repo.ReplaceReference(ctx, averages, bins)
}

// invalidateCachedTables drops the shared snapshot so servers pick up the
// seeded tables on their next load instead of after the TTL.
func invalidateCachedTables(ctx context.Context, addr string, logger *zap.Logger) {
	c, err := cache.New(ctx, cache.WithAddress(addr))
	if err != nil {
		logger.Warn("cached reference tables not cleared", zap.Error(err))
		return
	}
	defer c.Close()

	if err := c.Delete(ctx, reference.SnapshotCacheKey); err != nil {
		logger.Warn("cached reference tables not cleared", zap.Error(err))
		return
	}
	logger.Info("cached reference tables cleared", zap.String("redis", addr))
}

func readInput(path string, stdin io.Reader) ([]service.SubjectScore, error) {
	if path == "-" {
		return input.ReadScores(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return input.ReadScores(f)
}

func writeCharts(opts *options, report service.AnalysisReport, logger *zap.Logger) error {
	format, err := chart.ParseFormat(opts.chartFormat)
	if err != nil {
		return err
	}

	var chartOpts []chart.Option
	if opts.font != "" {
		font, err := chart.LoadFont(opts.font)
		if err != nil {
			return err
		}
		chartOpts = append(chartOpts, chart.WithFont(font))
	}
	renderer := chart.New(chartOpts...)

	if err := os.MkdirAll(opts.chartDir, 0o755); err != nil {
		return err
	}

	charts := []struct {
		name string
		draw func(io.Writer, service.AnalysisReport, chart.Format) error
	}{
		{name: "comparison", draw: renderer.Comparison},
		{name: "percentile", draw: renderer.Percentile},
	}
	for _, c := range charts {
		path := filepath.Join(opts.chartDir, c.name+"."+string(format))
		if err := writeChart(path, c.draw, report, format); err != nil {
			if errors.Is(err, chart.ErrNoData) {
				logger.Warn("chart skipped, nothing to draw", zap.String("chart", c.name))
				continue
			}
			return err
		}
		logger.Info("chart written", zap.String("path", path))
	}
	return nil
}

func writeChart(path string, draw func(io.Writer, service.AnalysisReport, chart.Format) error, report service.AnalysisReport, format chart.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f, report, format); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
