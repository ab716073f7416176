package service

import "time"

// SubjectScore is one of the student's raw scores.
type SubjectScore struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// AnalysisRow is the merged view of one subject. A nil pointer means the
// reference tables have no data for the subject.
type AnalysisRow struct {
	Subject        string   `json:"subject"`
	StudentScore   float64  `json:"student_score"`
	ClassAverage   *float64 `json:"class_average"`
	Difference     *float64 `json:"difference"`
	PercentileRank *float64 `json:"percentile_rank"`
}

// AnalysisReport holds rows sorted by StudentScore descending, ties in input order.
type AnalysisReport struct {
	Rows []AnalysisRow `json:"rows"`
}

// Recommendation splits subjects by their difference to the class average.
type Recommendation struct {
	Above []string `json:"above"`
	Below []string `json:"below"`
}

// Summary holds the headline statistics of the student's scores.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
}

// Analysis bundles everything a presentation layer renders. Summary is nil
// when no scores were supplied.
type Analysis struct {
	Report         AnalysisReport `json:"report"`
	Recommendation Recommendation `json:"recommendation"`
	Summary        *Summary       `json:"summary"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
