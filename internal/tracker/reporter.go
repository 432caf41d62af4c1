package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/site_grid_system/internal/models"
)

// HTTPReporter отправляет отчет POST-запросом без повторов: следующий тик и есть повтор
type HTTPReporter struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPReporter(url, apiKey string, timeout time.Duration) *HTTPReporter {
	return &HTTPReporter{
		url:    url,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *HTTPReporter) Report(ctx context.Context, report models.LocationReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal location report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create location report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send location report: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("location report rejected with status code %d", resp.StatusCode)
	}
	return nil
}
