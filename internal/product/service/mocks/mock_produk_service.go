package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tokoapi/internal/platform/query"
	"tokoapi/internal/product/domain"
)

type MockProdukService struct {
	mock.Mock
}

func (m *MockProdukService) ListProduk(ctx context.Context, params domain.ListProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error) {
	args := m.Called(ctx, params, p)
	if res := args.Get(0); res != nil {
		return res.([]domain.Produk), args.Get(1).(query.PageInfo), args.Error(2)
	}
	return nil, args.Get(1).(query.PageInfo), args.Error(2)
}

func (m *MockProdukService) SearchProduk(ctx context.Context, params domain.SearchProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error) {
	args := m.Called(ctx, params, p)
	if res := args.Get(0); res != nil {
		return res.([]domain.Produk), args.Get(1).(query.PageInfo), args.Error(2)
	}
	return nil, args.Get(1).(query.PageInfo), args.Error(2)
}

func (m *MockProdukService) GetProduk(ctx context.Context, id string) (*domain.Produk, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukService) CreateProduk(ctx context.Context, in domain.ProdukInput) (*domain.Produk, error) {
	args := m.Called(ctx, in)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukService) UpdateProduk(ctx context.Context, id string, in domain.ProdukInput) (*domain.Produk, error) {
	args := m.Called(ctx, id, in)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdukService) DeleteProduk(ctx context.Context, id string) (*domain.Produk, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Produk), args.Error(1)
	}
	return nil, args.Error(1)
}
