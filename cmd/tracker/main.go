package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/tracker"
	"github.com/shenikar/site_grid_system/pkg/logger"
	"github.com/sirupsen/logrus"
)

const walkStepMeters = 2.0

func main() {
	cfg, err := config.LoadTrackerConfig()
	if err != nil {
		logrus.Fatalf("Failed to load tracker config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	locator := tracker.NewSimulatedLocator(cfg.StartLat, cfg.StartLng, walkStepMeters, cfg.WatchInterval, time.Now().UnixNano())
	reporter := tracker.NewHTTPReporter(cfg.ReportURL, cfg.APIKey, cfg.FixTimeout)

	tr := tracker.New(locator, reporter, log, tracker.Options{
		ReportInterval: cfg.ReportInterval,
		FixTimeout:     cfg.FixTimeout,
		OnPosition: func(fix tracker.Fix) {
			log.WithFields(logrus.Fields{
				"lat":      fix.Lat,
				"lng":      fix.Lng,
				"accuracy": fix.Accuracy,
			}).Debug("Position updated")
		},
	})

	tr.SetSession(ctx, &tracker.Session{WorkerID: cfg.WorkerID, Role: cfg.SessionRole})
	log.WithFields(logrus.Fields{
		"worker_id": cfg.WorkerID,
		"role":      cfg.SessionRole,
		"state":     tr.State().String(),
	}).Info("Tracker session started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Выход из сессии
	tr.SetSession(ctx, nil)
	log.WithField("state", tr.State().String()).Info("Tracker stopped")
}
