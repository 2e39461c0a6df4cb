package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tokoapi/internal/platform/query"
	"tokoapi/internal/platform/response"
	"tokoapi/internal/product/domain"
	"tokoapi/internal/product/repository"
	"tokoapi/internal/product/service"
	"tokoapi/internal/product/service/mocks"
)

func setupRouter(svc service.ProdukService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewProdukHandler(svc).RegisterRoutes(api)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Body) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope response.Body
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestProdukHandler_CreateProduk(t *testing.T) {
	t.Run("Valid payload returns 201 with status aktif", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		created := &domain.Produk{
			ID:         primitive.NewObjectID(),
			KodeProduk: "P1",
			NamaProduk: "Pen",
			Kategori:   "Office",
			Harga:      5,
			Stok:       10,
			Status:     domain.StatusAktif,
		}
		mockSvc.On("CreateProduk", mock.Anything, mock.MatchedBy(func(in domain.ProdukInput) bool {
			return in.KodeProduk == "P1" && in.Harga != nil && *in.Harga == 5
		})).Return(created, nil).Once()

		w, envelope := doRequest(router, http.MethodPost, "/api/produk",
			`{"kode_produk":"P1","nama_produk":"Pen","kategori":"Office","harga":5,"stok":10}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, envelope.Success)
		data, _ := envelope.Data.(map[string]interface{})
		assert.Equal(t, "aktif", data["status"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("Duplicate kode_produk returns 409", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		mockSvc.On("CreateProduk", mock.Anything, mock.Anything).Return(nil, service.ErrKodeProdukConflict).Once()

		w, envelope := doRequest(router, http.MethodPost, "/api/produk",
			`{"kode_produk":"P1","nama_produk":"Pen","kategori":"Office","harga":5,"stok":10}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, envelope.Success)
	})

	t.Run("Validation failure returns 400 with the full message list", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		mockSvc.On("CreateProduk", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Messages: []string{"kode_produk wajib diisi", "kategori wajib diisi"}}).Once()

		w, envelope := doRequest(router, http.MethodPost, "/api/produk", `{"nama_produk":"Pen"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, envelope.Errors, 2)
	})
}

func TestProdukHandler_GetProduk(t *testing.T) {
	t.Run("Malformed id returns 400", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		mockSvc.On("GetProduk", mock.Anything, "xx").Return(nil, service.ErrInvalidProdukID).Once()

		w, envelope := doRequest(router, http.MethodGet, "/api/produk/xx", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, envelope.Success)
	})

	t.Run("Unknown id returns 404", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		oid := primitive.NewObjectID().Hex()
		mockSvc.On("GetProduk", mock.Anything, oid).Return(nil, repository.ErrProdukNotFound).Once()

		w, envelope := doRequest(router, http.MethodGet, "/api/produk/"+oid, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, envelope.Success)
	})
}

func TestProdukHandler_UpdateProduk(t *testing.T) {
	t.Run("No change returns 400", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		oid := primitive.NewObjectID().Hex()
		mockSvc.On("UpdateProduk", mock.Anything, oid, mock.Anything).Return(nil, service.ErrNoChange).Once()

		w, envelope := doRequest(router, http.MethodPut, "/api/produk/"+oid,
			`{"kode_produk":"P1","nama_produk":"Pen","kategori":"Office","harga":5,"stok":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Tidak ada perubahan data", envelope.Message)
	})
}

func TestProdukHandler_ListProduk(t *testing.T) {
	t.Run("Query parameters are forwarded and pagination is returned", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		expectedParams := domain.ListProdukParams{MinHarga: "10", MaxHarga: "20"}
		info := query.PageInfo{Page: 1, TotalPages: 1, Total: 2, Limit: 10}
		mockSvc.On("ListProduk", mock.Anything, expectedParams, query.Pagination{Page: 1, Limit: 10}).
			Return([]domain.Produk{{KodeProduk: "P1"}, {KodeProduk: "P2"}}, info, nil).Once()

		w, envelope := doRequest(router, http.MethodGet, "/api/produk?min_harga=10&max_harga=20", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, envelope.Pagination)
		assert.Equal(t, int64(2), envelope.Pagination.Total)
		mockSvc.AssertExpectations(t)
	})
}

func TestProdukHandler_SearchProduk(t *testing.T) {
	t.Run("Zero parameters returns 400", func(t *testing.T) {
		mockSvc := new(mocks.MockProdukService)
		router := setupRouter(mockSvc)

		mockSvc.On("SearchProduk", mock.Anything, domain.SearchProdukParams{}, mock.Anything).
			Return(nil, query.PageInfo{}, service.ErrNoSearchParams).Once()

		w, _ := doRequest(router, http.MethodGet, "/api/produk/search/advanced", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
