package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/query"
	"tokoapi/internal/platform/response"
	"tokoapi/internal/product/domain"
	"tokoapi/internal/product/repository"
	"tokoapi/internal/product/service"
)

type ProdukHandler struct {
	produkService service.ProdukService
}

func NewProdukHandler(ps service.ProdukService) *ProdukHandler {
	return &ProdukHandler{produkService: ps}
}

func (h *ProdukHandler) RegisterRoutes(router *gin.RouterGroup) {
	produkRoutes := router.Group("/produk")
	{
		produkRoutes.GET("", h.ListProduk)
		produkRoutes.GET("/search/advanced", h.SearchProduk)
		produkRoutes.GET("/:id", h.GetProduk)
		produkRoutes.POST("", h.CreateProduk)
		produkRoutes.PUT("/:id", h.UpdateProduk)
		produkRoutes.DELETE("/:id", h.DeleteProduk)
	}
}

func (h *ProdukHandler) ListProduk(c *gin.Context) {
	params := domain.ListProdukParams{
		Search:   c.Query("search"),
		Kategori: c.Query("kategori"),
		MinHarga: c.Query("min_harga"),
		MaxHarga: c.Query("max_harga"),
	}
	p := query.ParsePagination(c.Query("page"), c.Query("limit"))

	produk, info, err := h.produkService.ListProduk(c.Request.Context(), params, p)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHarga) {
			response.ErrorDetail(c, http.StatusBadRequest, "Parameter harga tidak valid", err.Error())
			return
		}
		logger.Error("Hdl.ListProduk: service error", err)
		response.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk")
		return
	}
	response.Page(c, "Data produk berhasil diambil", produk, info)
}

func (h *ProdukHandler) SearchProduk(c *gin.Context) {
	params := domain.SearchProdukParams{
		Query:      c.Query("q"),
		Kategori:   c.Query("kategori"),
		Supplier:   c.Query("supplier"),
		MinHarga:   c.Query("min_harga"),
		MaxHarga:   c.Query("max_harga"),
		StokKosong: c.Query("stok_kosong") == "true",
	}
	p := query.ParsePagination(c.Query("page"), c.Query("limit"))

	produk, info, err := h.produkService.SearchProduk(c.Request.Context(), params, p)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSearchParams):
			response.Error(c, http.StatusBadRequest, "Minimal satu parameter pencarian harus diisi")
		case errors.Is(err, service.ErrInvalidHarga):
			response.ErrorDetail(c, http.StatusBadRequest, "Parameter harga tidak valid", err.Error())
		default:
			logger.Error("Hdl.SearchProduk: service error", err)
			response.Error(c, http.StatusInternalServerError, "Gagal mencari produk")
		}
		return
	}
	response.Page(c, "Hasil pencarian produk berhasil diambil", produk, info)
}

func (h *ProdukHandler) GetProduk(c *gin.Context) {
	produk, err := h.produkService.GetProduk(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "Hdl.GetProduk", "Gagal mengambil produk", err)
		return
	}
	response.OK(c, "Produk berhasil diambil", produk)
}

func (h *ProdukHandler) CreateProduk(c *gin.Context) {
	var in domain.ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorDetail(c, http.StatusBadRequest, "Payload tidak valid", err.Error())
		return
	}

	created, err := h.produkService.CreateProduk(c.Request.Context(), in)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			response.ValidationFailed(c, "Validasi gagal", ve.Messages)
		case errors.Is(err, service.ErrKodeProdukConflict):
			response.Error(c, http.StatusConflict, "kode_produk sudah digunakan")
		default:
			logger.Error("Hdl.CreateProduk: service error", err)
			response.Error(c, http.StatusInternalServerError, "Gagal membuat produk")
		}
		return
	}
	response.Created(c, "Produk berhasil dibuat", created)
}

func (h *ProdukHandler) UpdateProduk(c *gin.Context) {
	var in domain.ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.ErrorDetail(c, http.StatusBadRequest, "Payload tidak valid", err.Error())
		return
	}

	updated, err := h.produkService.UpdateProduk(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			response.ValidationFailed(c, "Validasi gagal", ve.Messages)
		case errors.Is(err, service.ErrKodeProdukConflict):
			response.Error(c, http.StatusConflict, "kode_produk sudah digunakan produk lain")
		case errors.Is(err, service.ErrNoChange):
			response.Error(c, http.StatusBadRequest, "Tidak ada perubahan data")
		default:
			h.writeError(c, "Hdl.UpdateProduk", "Gagal mengupdate produk", err)
		}
		return
	}
	response.OK(c, "Produk berhasil diupdate", updated)
}

func (h *ProdukHandler) DeleteProduk(c *gin.Context) {
	removed, err := h.produkService.DeleteProduk(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "Hdl.DeleteProduk", "Gagal menghapus produk", err)
		return
	}
	response.OK(c, "Produk berhasil dihapus", removed)
}

// writeError memetakan error umum (invalid id / not found / internal).
func (h *ProdukHandler) writeError(c *gin.Context, op, fallback string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidProdukID):
		response.Error(c, http.StatusBadRequest, "ID produk tidak valid")
	case errors.Is(err, repository.ErrProdukNotFound):
		response.Error(c, http.StatusNotFound, "Produk tidak ditemukan")
	default:
		logger.Error(op+": service error", err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
