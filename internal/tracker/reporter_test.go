package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/site_grid_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPReporter_Success(t *testing.T) {
	var got models.LocationReport
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("X-API-Key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	rep := NewHTTPReporter(srv.URL, "secret", time.Second)
	err := rep.Report(context.Background(), models.LocationReport{
		WorkerID: 3, Lat: 1.5, Lng: 2.5, TrackingMode: models.TrackingModeGPS,
	})

	require.NoError(t, err)
	assert.Equal(t, "secret", apiKey)
	assert.Equal(t, int64(3), got.WorkerID)
	assert.Equal(t, models.TrackingModeGPS, got.TrackingMode)
}

func TestHTTPReporter_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rep := NewHTTPReporter(srv.URL, "", time.Second)
	err := rep.Report(context.Background(), models.LocationReport{WorkerID: 1})
	assert.ErrorContains(t, err, "status code 500")
}

func TestHTTPReporter_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rep := NewHTTPReporter(url, "", time.Second)
	err := rep.Report(context.Background(), models.LocationReport{WorkerID: 1})
	assert.ErrorContains(t, err, "failed to send location report")
}
