package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	healthAPI "tokoapi/internal/health/api"
	healthRepo "tokoapi/internal/health/repository"
	healthService "tokoapi/internal/health/service"
	"tokoapi/internal/platform/config"
	"tokoapi/internal/platform/database"
	"tokoapi/internal/platform/logger"
	"tokoapi/internal/platform/middleware"
	"tokoapi/internal/platform/response"
	postAPI "tokoapi/internal/post/api"
	postRepo "tokoapi/internal/post/repository"
	postService "tokoapi/internal/post/service"
	produkAPI "tokoapi/internal/product/api"
	produkRepo "tokoapi/internal/product/repository"
	produkService "tokoapi/internal/product/service"
)

func main() {
	// Load Config
	mongoCfg := config.LoadMongoConfig()
	serverCfg := config.LoadServerConfig("3000")
	rateCfg := config.LoadRateLimitConfig()

	logger.Info("Starting Toko API...")

	// Setup Database (retry + backoff sampai store siap)
	ctx := context.Background()
	client, err := database.Connect(ctx, mongoCfg)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", err)
		return
	}
	db := client.Database(mongoCfg.Database)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Error("Failed to ensure indexes", err)
		database.Disconnect(ctx, client)
		return
	}

	// Setup Dependencies
	pRepository := postRepo.NewMongoPostRepository(db)
	pService := postService.NewPostService(pRepository)
	postHandler := postAPI.NewPostHandler(pService)

	prRepository := produkRepo.NewMongoProdukRepository(db)
	prService := produkService.NewProdukService(prRepository)
	produkHandler := produkAPI.NewProdukHandler(prService)

	hRepository := healthRepo.NewMongoStatsRepository(client, db)
	hService := healthService.NewHealthService(hRepository)
	healthHandler := healthAPI.NewHealthHandler(hService)

	hService.StartStatsLogger()

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimit(rateCfg.RequestsPerSecond, rateCfg.Burst))

	postHandler.RegisterRoutes(&router.RouterGroup)
	apiGroup := router.Group("/api")
	produkHandler.RegisterRoutes(apiGroup)
	healthHandler.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route tidak ditemukan")
	})

	server := &http.Server{
		Addr:    serverCfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Toko API listening on " + serverCfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", err)
		}
	}()

	// Graceful shutdown: berhenti menerima traffic, lalu tutup koneksi store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received, draining...")

	hService.StopStatsLogger()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", err)
	}
	database.Disconnect(shutdownCtx, client)
	logger.Info("Toko API stopped")
}
