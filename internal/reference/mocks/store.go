package mocks

import (
	"context"
	"errors"

	"github.com/godilite/score-report/internal/repository/models"
)

// MockStore is a mock implementation of the reference.Store interface
// for testing the source layer.
type MockStore struct {
	GetClassAveragesFunc func(ctx context.Context) ([]models.ClassAverageRow, error)
	GetScoreBinsFunc     func(ctx context.Context) ([]models.ScoreBinRow, error)
}

// GetClassAverages implements the Store interface
func (m *MockStore) GetClassAverages(ctx context.Context) ([]models.ClassAverageRow, error) {
	if m.GetClassAveragesFunc != nil {
		return m.GetClassAveragesFunc(ctx)
	}
	return nil, errors.New("GetClassAveragesFunc not implemented")
}

// GetScoreBins implements the Store interface
func (m *MockStore) GetScoreBins(ctx context.Context) ([]models.ScoreBinRow, error) {
	if m.GetScoreBinsFunc != nil {
		return m.GetScoreBinsFunc(ctx)
	}
	return nil, errors.New("GetScoreBinsFunc not implemented")
}
