package mocks

import "github.com/godilite/score-report/internal/reference"

// MockReferenceData is a mock implementation of the ReferenceData interface
// for testing the service layer. Unset functions report every subject as missing.
type MockReferenceData struct {
	ClassAverageFunc func(subject string) (float64, bool)
	DistributionFunc func(subject string) (*reference.Distribution, bool)
}

// ClassAverage implements the ReferenceData interface
func (m *MockReferenceData) ClassAverage(subject string) (float64, bool) {
	if m.ClassAverageFunc != nil {
		return m.ClassAverageFunc(subject)
	}
	return 0, false
}

// Distribution implements the ReferenceData interface
func (m *MockReferenceData) Distribution(subject string) (*reference.Distribution, bool) {
	if m.DistributionFunc != nil {
		return m.DistributionFunc(subject)
	}
	return nil, false
}
