package service

import "github.com/aclements/go-moremath/stats"

// Summarize computes count, mean, max and min of the student scores.
func Summarize(report AnalysisReport) (Summary, error) {
	if len(report.Rows) == 0 {
		return Summary{}, ErrNoScores
	}

	sample := stats.Sample{Xs: make([]float64, len(report.Rows))}
	for i, row := range report.Rows {
		sample.Xs[i] = row.StudentScore
	}
	lo, hi := sample.Bounds()

	return Summary{
		Count: len(sample.Xs),
		Mean:  sample.Mean(),
		Max:   hi,
		Min:   lo,
	}, nil
}
