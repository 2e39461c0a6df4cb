package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/query"
	"tokoapi/internal/product/domain"
	"tokoapi/internal/product/repository"
)

var (
	ErrInvalidProdukID    = errors.New("invalid produk id")
	ErrKodeProdukConflict = errors.New("kode_produk is already used by another produk")
	ErrNoChange           = errors.New("no fields were changed")
	ErrNoSearchParams     = errors.New("at least one search parameter is required")
	ErrInvalidHarga       = errors.New("invalid price parameter")
)

// ValidationError membawa seluruh pesan validasi payload, bukan hanya yang
// pertama.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Field teks yang dicocokkan oleh parameter pencarian bebas.
var produkSearchFields = []string{"nama_produk", "deskripsi", "kode_produk"}

type ProdukService interface {
	ListProduk(ctx context.Context, params domain.ListProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error)
	SearchProduk(ctx context.Context, params domain.SearchProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error)
	GetProduk(ctx context.Context, id string) (*domain.Produk, error)
	CreateProduk(ctx context.Context, in domain.ProdukInput) (*domain.Produk, error)
	UpdateProduk(ctx context.Context, id string, in domain.ProdukInput) (*domain.Produk, error)
	DeleteProduk(ctx context.Context, id string) (*domain.Produk, error)
}

type produkServiceImpl struct {
	repo repository.ProdukRepository
}

func NewProdukService(repo repository.ProdukRepository) ProdukService {
	return &produkServiceImpl{repo: repo}
}

func (s *produkServiceImpl) ListProduk(ctx context.Context, params domain.ListProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error) {
	filter := &query.Filter{}
	if params.Search != "" {
		filter.Any(containsAny(produkSearchFields, params.Search)...)
	}
	if params.Kategori != "" {
		filter.Where("kategori", query.OpContains, params.Kategori)
	}
	if err := applyHargaRange(filter, params.MinHarga, params.MaxHarga); err != nil {
		return nil, query.PageInfo{}, err
	}

	produk, total, err := s.repo.List(ctx, *filter, p, query.Sort{Field: "tanggal_dibuat", Desc: true})
	if err != nil {
		return nil, query.PageInfo{}, err
	}
	return produk, query.NewPageInfo(p, total), nil
}

func (s *produkServiceImpl) SearchProduk(ctx context.Context, params domain.SearchProdukParams, p query.Pagination) ([]domain.Produk, query.PageInfo, error) {
	if params.IsEmpty() {
		return nil, query.PageInfo{}, ErrNoSearchParams
	}

	filter := &query.Filter{}
	if params.Query != "" {
		filter.Any(containsAny(produkSearchFields, params.Query)...)
	}
	if params.Kategori != "" {
		filter.Where("kategori", query.OpContains, params.Kategori)
	}
	if params.Supplier != "" {
		filter.Where("supplier", query.OpContains, params.Supplier)
	}
	if err := applyHargaRange(filter, params.MinHarga, params.MaxHarga); err != nil {
		return nil, query.PageInfo{}, err
	}
	if params.StokKosong {
		filter.Where("stok", query.OpLte, 0)
	}

	produk, total, err := s.repo.List(ctx, *filter, p, query.Sort{Field: "tanggal_dibuat", Desc: true})
	if err != nil {
		return nil, query.PageInfo{}, err
	}
	return produk, query.NewPageInfo(p, total), nil
}

func (s *produkServiceImpl) GetProduk(ctx context.Context, id string) (*domain.Produk, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProdukID
	}
	return s.repo.GetByID(ctx, oid)
}

func (s *produkServiceImpl) CreateProduk(ctx context.Context, in domain.ProdukInput) (*domain.Produk, error) {
	if msgs := domain.ValidateProdukInput(in); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	kode := strings.TrimSpace(in.KodeProduk)
	if _, err := s.repo.GetByKode(ctx, kode); err == nil {
		return nil, ErrKodeProdukConflict
	} else if !errors.Is(err, repository.ErrProdukNotFound) {
		return nil, err
	}

	now := time.Now()
	produk := buildProduk(in)
	produk.Status = domain.StatusAktif
	produk.TanggalDibuat = now
	produk.TanggalDiupdate = now

	if err := s.repo.Insert(ctx, produk); err != nil {
		if errors.Is(err, repository.ErrDuplicateKodeProduk) {
			// Race: dokumen dengan kode yang sama masuk di antara pengecekan
			// dan insert; unique index yang menangkapnya.
			return nil, ErrKodeProdukConflict
		}
		logger.Error("Svc.CreateProduk: repo error", err)
		return nil, err
	}
	return produk, nil
}

func (s *produkServiceImpl) UpdateProduk(ctx context.Context, id string, in domain.ProdukInput) (*domain.Produk, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProdukID
	}
	if msgs := domain.ValidateProdukInput(in); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	existing, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	kode := strings.TrimSpace(in.KodeProduk)
	if kode != existing.KodeProduk {
		other, err := s.repo.GetByKode(ctx, kode)
		if err == nil && other.ID != existing.ID {
			return nil, ErrKodeProdukConflict
		}
		if err != nil && !errors.Is(err, repository.ErrProdukNotFound) {
			return nil, err
		}
	}

	replacement := buildProduk(in)
	replacement.ID = existing.ID
	replacement.Status = existing.Status
	// Timestamp dibuat dipertahankan; tanggal_diupdate ikut dipertahankan
	// dulu supaya replace tanpa perubahan nyata terdeteksi oleh store.
	replacement.TanggalDibuat = existing.TanggalDibuat
	replacement.TanggalDiupdate = existing.TanggalDiupdate

	modified, err := s.repo.Replace(ctx, oid, replacement)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKodeProduk) {
			return nil, ErrKodeProdukConflict
		}
		return nil, err
	}
	if modified == 0 {
		return nil, ErrNoChange
	}

	now := time.Now()
	if err := s.repo.SetFields(ctx, oid, map[string]interface{}{"tanggal_diupdate": now}); err != nil {
		return nil, err
	}
	replacement.TanggalDiupdate = now
	return replacement, nil
}

func (s *produkServiceImpl) DeleteProduk(ctx context.Context, id string) (*domain.Produk, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProdukID
	}
	return s.repo.Delete(ctx, oid)
}

// buildProduk menormalkan input: trim string, dereference angka.
func buildProduk(in domain.ProdukInput) *domain.Produk {
	return &domain.Produk{
		KodeProduk: strings.TrimSpace(in.KodeProduk),
		NamaProduk: strings.TrimSpace(in.NamaProduk),
		Kategori:   strings.TrimSpace(in.Kategori),
		Harga:      *in.Harga,
		Stok:       *in.Stok,
		Deskripsi:  strings.TrimSpace(in.Deskripsi),
		Supplier:   strings.TrimSpace(in.Supplier),
	}
}

func applyHargaRange(filter *query.Filter, minHarga, maxHarga string) error {
	if minHarga != "" {
		min, err := strconv.ParseFloat(minHarga, 64)
		if err != nil {
			return fmt.Errorf("%w: min_harga %q", ErrInvalidHarga, minHarga)
		}
		filter.Where("harga", query.OpGte, min)
	}
	if maxHarga != "" {
		max, err := strconv.ParseFloat(maxHarga, 64)
		if err != nil {
			return fmt.Errorf("%w: max_harga %q", ErrInvalidHarga, maxHarga)
		}
		filter.Where("harga", query.OpLte, max)
	}
	return nil
}

func containsAny(fields []string, value string) []query.Condition {
	conditions := make([]query.Condition, 0, len(fields))
	for _, f := range fields {
		conditions = append(conditions, query.Condition{Field: f, Op: query.OpContains, Value: value})
	}
	return conditions
}
