package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"tokoapi/internal/health/domain"
	"tokoapi/internal/health/repository"
	"tokoapi/internal/platform/logger"
)

const statsLogInterval = "@every 5m"

type HealthService interface {
	Check(ctx context.Context) (*domain.HealthStatus, error)
	// StartStatsLogger menjalankan job berkala yang menulis jumlah dokumen
	// per koleksi ke log. StopStatsLogger dipanggil saat shutdown.
	StartStatsLogger()
	StopStatsLogger()
}

type healthServiceImpl struct {
	repo      repository.StatsRepository
	scheduler *cron.Cron
}

func NewHealthService(repo repository.StatsRepository) HealthService {
	return &healthServiceImpl{
		repo:      repo,
		scheduler: cron.New(),
	}
}

func (s *healthServiceImpl) Check(ctx context.Context) (*domain.HealthStatus, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	counts, err := s.repo.CollectionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count collections: %w", err)
	}
	return &domain.HealthStatus{Database: "connected", Counts: counts}, nil
}

func (s *healthServiceImpl) StartStatsLogger() {
	_, err := s.scheduler.AddFunc(statsLogInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		counts, err := s.repo.CollectionCounts(ctx)
		if err != nil {
			logger.Error("StatsLogger: failed to collect counts", err)
			return
		}
		logger.Info(fmt.Sprintf("Collection stats: %v", counts))
	})
	if err != nil {
		logger.Error("StatsLogger: failed to schedule job", err)
		return
	}
	s.scheduler.Start()
}

func (s *healthServiceImpl) StopStatsLogger() {
	s.scheduler.Stop()
}
