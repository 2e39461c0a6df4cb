package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsRepository) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(map[string]int64), args.Error(1)
	}
	return nil, args.Error(1)
}
