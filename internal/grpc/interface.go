package grpc

import "github.com/godilite/score-report/internal/service"

// ReportService is the analytic core the handlers expose.
type ReportService interface {
	BuildReport(scores []service.SubjectScore) (service.AnalysisReport, error)
	Classify(report service.AnalysisReport) service.Recommendation
	Analyze(scores []service.SubjectScore) (service.Analysis, error)
}
