package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/query"
	"tokoapi/internal/product/domain"
)

type MockProdukRepository struct {
	mock.Mock
}

func (m *MockProdukRepository) List(ctx context.Context, filter query.Filter, p query.Pagination, sort query.Sort) ([]domain.Produk, int64, error) {
	args := m.Called(ctx, filter, p, sort)
	if res := args.Get(0); res != nil {
		return res.([]domain.Produk), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockProdukRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukRepository) GetByKode(ctx context.Context, kodeProduk string) (*domain.Produk, error) {
	args := m.Called(ctx, kodeProduk)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukRepository) Insert(ctx context.Context, produk *domain.Produk) error {
	args := m.Called(ctx, produk)
	return args.Error(0)
}

func (m *MockProdukRepository) Replace(ctx context.Context, id primitive.ObjectID, produk *domain.Produk) (int64, error) {
	args := m.Called(ctx, id, produk)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProdukRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProdukRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Produk, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}
