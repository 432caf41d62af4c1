package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RenderCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sitegrid_render_cache_hits_total",
		Help: "Total render model cache hits",
	})
	RenderCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sitegrid_render_cache_misses_total",
		Help: "Total render model cache misses",
	})
	RenderDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sitegrid_render_duration_ms",
		Help:    "Render model build duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500},
	})
	DuplicateZoneNamesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sitegrid_duplicate_zone_names_total",
		Help: "Total duplicate zone names seen while matching grid cells",
	})
	LocationReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegrid_location_reports_total",
		Help: "Total location reports received",
	}, []string{"tracking_mode"})
	TrackerFixFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegrid_tracker_fix_failures_total",
		Help: "Total failed location acquisitions on the tracker",
	}, []string{"stream"})
	TrackerReportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sitegrid_tracker_reports_total",
		Help: "Total location reports sent by the tracker by status",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(RenderCacheHitsTotal)
	prometheus.MustRegister(RenderCacheMissesTotal)
	prometheus.MustRegister(RenderDurationMs)
	prometheus.MustRegister(DuplicateZoneNamesTotal)
	prometheus.MustRegister(LocationReportsTotal)
	prometheus.MustRegister(TrackerFixFailuresTotal)
	prometheus.MustRegister(TrackerReportsTotal)
}

// Handler отдает зарегистрированные метрики для Prometheus
func Handler() http.Handler { return promhttp.Handler() }
