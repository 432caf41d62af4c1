package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// EventWorker доставляет события из очереди Redis на WEBHOOK_URL
type EventWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(ctx context.Context, d time.Duration)
}

func NewEventWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *EventWorker {
	return &EventWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: sleepCtx,
	}
}

// Start запускает горутину обработки очереди, остановка по отмене ctx
func (w *EventWorker) Start(ctx context.Context) {
	w.logger.Info("Starting zone event worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping zone event worker.")
				return
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, eventQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop zone event from Redis")
				w.sleep(ctx, w.cfg.WebhookTimeout)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event models.ZoneClickEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal zone event from Redis")
				continue
			}

			w.Deliver(ctx, event, []byte(payload))
		}
	}()
}

// Deliver отправляет одно событие с экспоненциальной задержкой между попытками
func (w *EventWorker) Deliver(ctx context.Context, event models.ZoneClickEvent, payload []byte) bool {
	log := w.logger.WithFields(logrus.Fields{
		"event_id":   event.EventID,
		"project_id": event.ProjectID,
		"zone":       event.Name,
	})
	log.Debug("Processing zone event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping event delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.send(ctx, payload)
		if err == nil {
			log.Info("Zone event delivered successfully.")
			return true
		}
		if ctx.Err() != nil {
			log.WithError(err).Warn("Zone event delivery interrupted")
			return false
		}
		left := maxRetries - 1 - i
		log.WithError(err).Warnf("Zone event delivery failed. Retrying in %v. Retries left: %d", delay, left)
		if left > 0 {
			w.sleep(ctx, delay)
			delay *= 2
		}
	}

	log.Errorf("Failed to deliver zone event after %d attempts.", maxRetries)
	return false
}

func (w *EventWorker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// Sign возвращает hex HMAC-SHA256 подпись тела
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
