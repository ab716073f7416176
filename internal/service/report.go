package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/pkg/metrics"
	"go.uber.org/zap"
)

const (
	minScore = 0
	maxScore = 100
)

// ReportService merges student scores with the reference tables.
// It holds no per-request state and is safe for concurrent use.
type ReportService struct {
	ref     ReferenceData
	logger  *zap.Logger
	metrics *metrics.Manager
	now     func() time.Time
}

type Option func(*ReportService)

// WithMetrics records build counters on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *ReportService) {
		s.metrics = m
	}
}

// WithClock overrides the clock that stamps Analysis.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *ReportService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewReportService creates a new ReportService instance.
func NewReportService(ref ReferenceData, logger *zap.Logger, opts ...Option) *ReportService {
	if ref == nil {
		panic("reference data must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	s := &ReportService{
		ref:    ref,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateScores(scores []SubjectScore) error {
	seen := make(map[string]struct{}, len(scores))
	for i, sc := range scores {
		if strings.TrimSpace(sc.Subject) == "" {
			return fmt.Errorf("%w: entry %d has no subject", ErrValidation, i)
		}
		if math.IsNaN(sc.Score) || sc.Score < minScore || sc.Score > maxScore {
			return fmt.Errorf("%w: score %v for %q is outside [%d, %d]", ErrValidation, sc.Score, sc.Subject, minScore, maxScore)
		}
		if _, dup := seen[sc.Subject]; dup {
			return fmt.Errorf("%w: subject %q appears more than once", ErrValidation, sc.Subject)
		}
		seen[sc.Subject] = struct{}{}
	}
	return nil
}

// BuildReport merges scores with the class averages and distributions and
// sorts the rows by score, highest first. Subjects missing from a table get
// nil fields rather than an error.
func (s *ReportService) BuildReport(scores []SubjectScore) (AnalysisReport, error) {
	start := time.Now()

	if err := validateScores(scores); err != nil {
		s.metrics.RecordValidationError()
		s.logger.Debug("rejected scores", zap.Error(err))
		return AnalysisReport{}, err
	}

	rows := make([]AnalysisRow, 0, len(scores))
	for _, sc := range scores {
		row := AnalysisRow{
			Subject:      sc.Subject,
			StudentScore: sc.Score,
		}

		if avg, ok := s.ref.ClassAverage(sc.Subject); ok {
			diff := sc.Score - avg
			row.ClassAverage = &avg
			row.Difference = &diff
		} else {
			s.metrics.RecordReferenceMiss("class_average")
		}

		if dist, ok := s.ref.Distribution(sc.Subject); ok && dist != nil {
			if dist.Total() <= 0 {
				return AnalysisReport{}, fmt.Errorf("%w: distribution %q has no students", reference.ErrConfiguration, sc.Subject)
			}
			row.PercentileRank = EstimatePercentile(sc.Score, dist)
		} else {
			s.metrics.RecordReferenceMiss("distribution")
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StudentScore > rows[j].StudentScore
	})

	elapsed := time.Since(start)
	s.metrics.RecordReportBuilt(elapsed)
	s.logger.Debug("built report",
		zap.Int("subjects", len(rows)),
		zap.Duration("elapsed", elapsed))

	return AnalysisReport{Rows: rows}, nil
}

// Classify partitions the report's subjects around their class averages.
func (s *ReportService) Classify(report AnalysisReport) Recommendation {
	return Classify(report)
}

// Analyze builds the report, classifies it and summarizes the scores.
func (s *ReportService) Analyze(scores []SubjectScore) (Analysis, error) {
	report, err := s.BuildReport(scores)
	if err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{
		Report:         report,
		Recommendation: Classify(report),
		GeneratedAt:    s.now().UTC(),
	}

	summary, err := Summarize(report)
	switch {
	case err == nil:
		analysis.Summary = &summary
	case !errors.Is(err, ErrNoScores):
		return Analysis{}, fmt.Errorf("summarize: %w", err)
	}

	s.logger.Info("analyzed scores",
		zap.Int("subjects", len(report.Rows)),
		zap.Int("above", len(analysis.Recommendation.Above)),
		zap.Int("below", len(analysis.Recommendation.Below)))

	return analysis, nil
}
