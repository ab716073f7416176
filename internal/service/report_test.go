package service

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/score-report/internal/reference"
	"github.com/godilite/score-report/internal/service/mocks"
	"github.com/godilite/score-report/pkg/metrics"
)

func subjects(report AnalysisReport) []string {
	out := make([]string, len(report.Rows))
	for i, r := range report.Rows {
		out[i] = r.Subject
	}
	return out
}

// TestNewReportService tests the constructor
func TestNewReportService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		ref := &mocks.MockReferenceData{}
		logger := zap.NewNop()

		svc := NewReportService(ref, logger)

		assert.NotNil(t, svc)
		assert.Equal(t, ref, svc.ref)
		assert.Equal(t, logger, svc.logger)
		assert.Nil(t, svc.metrics)
	})

	t.Run("nil reference data panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewReportService(nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewReportService(&mocks.MockReferenceData{}, nil)

		assert.NotNil(t, svc.logger)
	})
}

func TestBuildReport(t *testing.T) {
	svc := NewReportService(mustTables(t), zap.NewNop())

	t.Run("worked example", func(t *testing.T) {
		report, err := svc.BuildReport([]SubjectScore{{Subject: "數學", Score: 85}})

		require.NoError(t, err)
		require.Len(t, report.Rows, 1)
		row := report.Rows[0]
		assert.Equal(t, "數學", row.Subject)
		assert.Equal(t, 85.0, row.StudentScore)
		require.NotNil(t, row.ClassAverage)
		assert.Equal(t, 69.76, *row.ClassAverage)
		require.NotNil(t, row.Difference)
		assert.InDelta(t, 15.24, *row.Difference, 1e-9)
		require.NotNil(t, row.PercentileRank)
		assert.InDelta(t, 82.3, *row.PercentileRank, 1e-9)
	})

	t.Run("subject with average but no distribution", func(t *testing.T) {
		report, err := svc.BuildReport([]SubjectScore{{Subject: "地理", Score: 70}})

		require.NoError(t, err)
		row := report.Rows[0]
		require.NotNil(t, row.ClassAverage)
		assert.Equal(t, 68.22, *row.ClassAverage)
		assert.Nil(t, row.PercentileRank)
	})

	t.Run("unknown subject has no reference fields", func(t *testing.T) {
		report, err := svc.BuildReport([]SubjectScore{{Subject: "音樂", Score: 90}})

		require.NoError(t, err)
		row := report.Rows[0]
		assert.Nil(t, row.ClassAverage)
		assert.Nil(t, row.Difference)
		assert.Nil(t, row.PercentileRank)
	})

	t.Run("stable sort by score", func(t *testing.T) {
		report, err := svc.BuildReport([]SubjectScore{
			{Subject: "A", Score: 80},
			{Subject: "B", Score: 80},
			{Subject: "C", Score: 90},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A", "B"}, subjects(report))
	})

	t.Run("output is a permutation of input", func(t *testing.T) {
		in := []SubjectScore{
			{Subject: "國語文", Score: 70},
			{Subject: "英語文", Score: 95.5},
			{Subject: "數學", Score: 70},
			{Subject: "生物", Score: 0},
			{Subject: "化學", Score: 100},
			{Subject: "歷史", Score: 61},
		}

		report, err := svc.BuildReport(in)

		require.NoError(t, err)
		require.Len(t, report.Rows, len(in))
		got := make(map[string]float64, len(report.Rows))
		for _, r := range report.Rows {
			got[r.Subject] = r.StudentScore
		}
		for _, sc := range in {
			assert.Equal(t, sc.Score, got[sc.Subject])
		}
		assert.Equal(t, []string{"化學", "英語文", "國語文", "數學", "歷史", "生物"}, subjects(report))
	})

	t.Run("empty input", func(t *testing.T) {
		report, err := svc.BuildReport(nil)

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []SubjectScore{{Subject: "A", Score: 10}, {Subject: "B", Score: 20}}

		_, err := svc.BuildReport(in)

		require.NoError(t, err)
		assert.Equal(t, "A", in[0].Subject)
	})
}

func TestBuildReport_Validation(t *testing.T) {
	svc := NewReportService(mustTables(t), zap.NewNop())

	cases := []struct {
		name   string
		scores []SubjectScore
		msg    string
	}{
		{name: "above 100", scores: []SubjectScore{{Subject: "數學", Score: 100.5}}, msg: "outside [0, 100]"},
		{name: "negative", scores: []SubjectScore{{Subject: "數學", Score: -1}}, msg: "outside [0, 100]"},
		{name: "NaN", scores: []SubjectScore{{Subject: "數學", Score: math.NaN()}}, msg: "outside [0, 100]"},
		{name: "infinite", scores: []SubjectScore{{Subject: "數學", Score: math.Inf(1)}}, msg: "outside [0, 100]"},
		{name: "blank subject", scores: []SubjectScore{{Subject: "  ", Score: 50}}, msg: "no subject"},
		{
			name:   "duplicate subject",
			scores: []SubjectScore{{Subject: "數學", Score: 50}, {Subject: "英語文", Score: 50}, {Subject: "數學", Score: 60}},
			msg:    `"數學" appears more than once`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := svc.BuildReport(tc.scores)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Empty(t, report.Rows)
		})
	}
}

func TestBuildReport_BrokenDistribution(t *testing.T) {
	ref := &mocks.MockReferenceData{
		DistributionFunc: func(string) (*reference.Distribution, bool) {
			return &reference.Distribution{}, true
		},
	}
	svc := NewReportService(ref, zap.NewNop())

	_, err := svc.BuildReport([]SubjectScore{{Subject: "X", Score: 50}})

	assert.ErrorIs(t, err, reference.ErrConfiguration)
}

func TestBuildReport_UsesReferenceData(t *testing.T) {
	var asked []string
	ref := &mocks.MockReferenceData{
		ClassAverageFunc: func(subject string) (float64, bool) {
			asked = append(asked, subject)
			return 50, subject == "Art"
		},
	}
	svc := NewReportService(ref, zap.NewNop())

	report, err := svc.BuildReport([]SubjectScore{{Subject: "Art", Score: 50}, {Subject: "Music", Score: 40}})

	require.NoError(t, err)
	assert.Equal(t, []string{"Art", "Music"}, asked)
	require.NotNil(t, report.Rows[0].Difference)
	assert.Equal(t, 0.0, *report.Rows[0].Difference)
	assert.Nil(t, report.Rows[1].Difference)
}

func TestBuildReport_Metrics(t *testing.T) {
	m := metrics.NewManager()
	svc := NewReportService(mustTables(t), zap.NewNop(), WithMetrics(m))

	_, err := svc.BuildReport([]SubjectScore{{Subject: "數學", Score: 85}, {Subject: "地理", Score: 60}, {Subject: "音樂", Score: 60}})
	require.NoError(t, err)
	_, err = svc.BuildReport([]SubjectScore{{Subject: "數學", Score: 101}})
	require.Error(t, err)

	count, err := testutil.GatherAndCount(m.Registry(),
		"score_report_reports_built_total",
		"score_report_validation_errors_total",
		"score_report_reference_misses_total",
	)
	require.NoError(t, err)
	// one series each for built and validation, two tables for misses
	assert.Equal(t, 4, count)
}

func TestAnalyze(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 8, 0, 0, 0, time.FixedZone("CST", 8*3600))
	svc := NewReportService(mustTables(t), zap.NewNop(), WithClock(func() time.Time { return fixed }))

	t.Run("full analysis", func(t *testing.T) {
		analysis, err := svc.Analyze([]SubjectScore{
			{Subject: "國語文", Score: 70},
			{Subject: "英語文", Score: 70},
			{Subject: "數學", Score: 70},
			{Subject: "生物", Score: 70},
			{Subject: "化學", Score: 70},
			{Subject: "歷史", Score: 70},
		})

		require.NoError(t, err)
		assert.Len(t, analysis.Report.Rows, 6)
		assert.Equal(t, []string{"英語文", "數學", "生物", "歷史"}, analysis.Recommendation.Above)
		assert.Equal(t, []string{"國語文", "化學"}, analysis.Recommendation.Below)
		require.NotNil(t, analysis.Summary)
		assert.Equal(t, Summary{Count: 6, Mean: 70, Max: 70, Min: 70}, *analysis.Summary)
		assert.Equal(t, fixed.UTC(), analysis.GeneratedAt)
	})

	t.Run("empty input has no summary", func(t *testing.T) {
		analysis, err := svc.Analyze(nil)

		require.NoError(t, err)
		assert.Nil(t, analysis.Summary)
		assert.Empty(t, analysis.Recommendation.Above)
		assert.Empty(t, analysis.Recommendation.Below)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := svc.Analyze([]SubjectScore{{Subject: "數學", Score: 120}})

		assert.ErrorIs(t, err, ErrValidation)
	})
}
