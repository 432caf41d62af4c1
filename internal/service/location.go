package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/metrics"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/sirupsen/logrus"
)

type locationService struct {
	repo   LocationRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewLocationService(repo LocationRepository, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// ReportLocation сохраняет позицию работника и обновляет последнюю известную точку
func (s *locationService) ReportLocation(ctx context.Context, report models.LocationReport) error {
	mode := report.TrackingMode
	if mode == "" {
		mode = models.TrackingModeGPS
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":       "location",
		"method":        "ReportLocation",
		"worker_id":     report.WorkerID,
		"tracking_mode": mode,
	})

	loc := &models.WorkerLocation{
		WorkerID:     report.WorkerID,
		Lat:          report.Lat,
		Lng:          report.Lng,
		TrackingMode: mode,
		ReportedAt:   s.now().UTC(),
	}
	if err := s.repo.SaveWorkerLocation(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to save worker location")
		return fmt.Errorf("service: could not save worker location: %w", err)
	}
	metrics.LocationReportsTotal.WithLabelValues(string(mode)).Inc()

	if err := s.repo.SetLatestPosition(ctx, loc); err != nil {
		log.WithError(err).Warn("Failed to cache latest worker position")
	}

	log.Debug("Location report saved")
	return nil
}

// GetStats возвращает число работников, приславших позицию за окно статистики
func (s *locationService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "GetStats",
		"minutes": s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetActiveWorkerCount(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get active worker count")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	log.WithField("count", count).Info("Stats fetched successfully")
	return count, nil
}
