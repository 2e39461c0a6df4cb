package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokoapi/internal/health/service"
	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/response"
)

type HealthHandler struct {
	healthService service.HealthService
}

func NewHealthHandler(hs service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: hs}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	status, err := h.healthService.Check(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.Check: health check failed", err)
		response.ErrorDetail(c, http.StatusInternalServerError, "Service unhealthy", err.Error())
		return
	}
	response.OK(c, "Service healthy", status)
}
