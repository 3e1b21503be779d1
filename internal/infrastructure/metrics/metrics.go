package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

// Docs-site metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Upstream model listing calls, by caller (proxy or catalog)
	UpstreamFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "upstream_fetches_total",
			Help:      "Total upstream model listing fetches by caller and result (success, error, timeout)",
		},
		[]string{"caller", "result"},
	)

	UpstreamFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Upstream model listing latency in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"caller"},
	)

	// Catalog state
	CatalogModels = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "catalog_models",
			Help:      "Models currently held by the catalog, by kind",
		},
		[]string{"kind"},
	)

	CatalogUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "catalog_up",
			Help:      "Catalog status (1=loaded, 0=loading or error)",
		},
	)

	CatalogAgeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "catalog_age_seconds",
			Help:      "Seconds since the catalog last loaded successfully",
		},
	)

	// User agent metrics (normalized to keep low cardinality)
	UserAgentFamilyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "megallm",
			Subsystem: "docs",
			Name:      "user_agent_family_total",
			Help:      "Requests by user agent family",
		},
		[]string{"family"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordUpstreamFetch records one call to the upstream listing endpoint
func RecordUpstreamFetch(caller string, err error, duration time.Duration) {
	if caller == "" {
		caller = "unknown"
	}
	result := "success"
	switch {
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeTimeout):
		result = "timeout"
	case err != nil:
		result = "error"
	}
	UpstreamFetchesTotal.WithLabelValues(caller, result).Inc()
	UpstreamFetchDuration.WithLabelValues(caller).Observe(duration.Seconds())
}

// SetCatalogModels publishes the size of the current catalog views
func SetCatalogModels(chat, embedding int) {
	CatalogModels.WithLabelValues("chat").Set(float64(chat))
	CatalogModels.WithLabelValues("embedding").Set(float64(embedding))
}

// SetCatalogUp sets whether the catalog currently holds a loaded set
func SetCatalogUp(up bool) {
	val := 0.0
	if up {
		val = 1.0
	}
	CatalogUp.Set(val)
}

// SetCatalogAge updates the freshness gauge. A zero lastUpdated resets it.
func SetCatalogAge(lastUpdated, now time.Time) {
	if lastUpdated.IsZero() {
		CatalogAgeSeconds.Set(0)
		return
	}
	CatalogAgeSeconds.Set(now.Sub(lastUpdated).Seconds())
}

// RecordUserAgent buckets the user agent into a coarse family
func RecordUserAgent(ua string) {
	UserAgentFamilyTotal.WithLabelValues(userAgentFamily(ua)).Inc()
}

func userAgentFamily(ua string) string {
	ua = strings.ToLower(strings.TrimSpace(ua))
	switch {
	case ua == "":
		return "unknown"
	case strings.Contains(ua, "mozilla") || strings.Contains(ua, "chrome") || strings.Contains(ua, "safari") || strings.Contains(ua, "firefox"):
		return "browser"
	case strings.Contains(ua, "curl") || strings.Contains(ua, "wget") || strings.Contains(ua, "httpie"):
		return "cli"
	case strings.Contains(ua, "python") || strings.Contains(ua, "go-http-client") || strings.Contains(ua, "node") || strings.Contains(ua, "axios") || strings.Contains(ua, "openai"):
		return "sdk"
	default:
		return "other"
	}
}
