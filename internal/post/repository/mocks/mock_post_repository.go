package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/query"
	"tokoapi/internal/post/domain"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Post, int64, error) {
	args := m.Called(ctx, filter, p, sort)
	if res := args.Get(0); res != nil {
		return res.([]domain.Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) Insert(ctx context.Context, doc domain.Post) (primitive.ObjectID, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPostRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields domain.Post) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}
