package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/site_grid_system/internal/config"
	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, cfg *config.Config) (*EventWorker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewEventWorker(nil, logger, cfg)
	var sleeps []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) { sleeps = append(sleeps, d) }
	return w, &sleeps
}

func testEvent(t *testing.T) (models.ZoneClickEvent, []byte) {
	id := int64(42)
	event := models.ZoneClickEvent{
		EventID:   uuid.New(),
		ProjectID: 1,
		Row:       0,
		Col:       1,
		Name:      "1F-A2",
		Level:     "1F",
		ID:        &id,
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	var gotSig, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSig = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w, sleeps := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})
	event, payload := testEvent(t)

	ok := w.Deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, string(payload), gotBody)
	assert.Equal(t, Sign(payload, "secret"), gotSig)
	assert.Empty(t, *sleeps)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w, sleeps := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  100 * time.Millisecond,
	})
	event, payload := testEvent(t)

	ok := w.Deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *sleeps)
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w, sleeps := newTestWorker(t, &config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})
	event, payload := testEvent(t)

	ok := w.Deliver(context.Background(), event, payload)

	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, *sleeps, 1)
}

func TestDeliver_SkipsWithoutURL(t *testing.T) {
	w, _ := newTestWorker(t, &config.Config{WebhookMaxRetries: 3})
	event, payload := testEvent(t)

	assert.False(t, w.Deliver(context.Background(), event, payload))
}

func TestSign_Deterministic(t *testing.T) {
	payload := []byte(`{"name":"1F-A1"}`)
	assert.Equal(t, Sign(payload, "k"), Sign(payload, "k"))
	assert.NotEqual(t, Sign(payload, "k"), Sign(payload, "other"))
	assert.Len(t, Sign(payload, "k"), 64)
}
