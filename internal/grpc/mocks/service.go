package mocks

import (
	"errors"

	"github.com/godilite/score-report/internal/service"
)

// MockReportService is a mock implementation of the ReportService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockReportService struct {
	BuildReportFunc func(scores []service.SubjectScore) (service.AnalysisReport, error)
	ClassifyFunc    func(report service.AnalysisReport) service.Recommendation
	AnalyzeFunc     func(scores []service.SubjectScore) (service.Analysis, error)
}

// BuildReport implements the ReportService interface
func (m *MockReportService) BuildReport(scores []service.SubjectScore) (service.AnalysisReport, error) {
	if m.BuildReportFunc != nil {
		return m.BuildReportFunc(scores)
	}
	return service.AnalysisReport{}, errors.New("BuildReportFunc not implemented")
}

// Classify implements the ReportService interface
func (m *MockReportService) Classify(report service.AnalysisReport) service.Recommendation {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(report)
	}
	return service.Recommendation{}
}

// Analyze implements the ReportService interface
func (m *MockReportService) Analyze(scores []service.SubjectScore) (service.Analysis, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(scores)
	}
	return service.Analysis{}, errors.New("AnalyzeFunc not implemented")
}
