package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Transport metrics
	FramesReceivedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_frames_received_total",
		Help: "Total number of raw frames received from transports",
	})

	// Pipeline metrics
	RecordsDecodedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_records_decoded_total",
		Help: "Total number of frames decoded and appended to the window set",
	})
	DecodeFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "telemetry_decode_failures_total",
		Help: "Total number of frames dropped by decode failure, by reason",
	}, []string{"reason"})
	LastSequence = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "telemetry_last_sequence",
		Help: "Global sequence index of the most recently appended record",
	})

	// Presentation metrics
	SnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_snapshots_total",
		Help: "Total number of window snapshots served to presentation consumers",
	})
	WindowFill = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "telemetry_window_fill",
		Help: "Number of samples currently stored per channel window",
	})

	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_http_requests_total",
		Help: "Total number of HTTP API requests",
	})
	HTTPRequestErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_http_request_errors_total",
		Help: "Total number of HTTP API request errors",
	})

	registerOnce sync.Once
)

func init() {
	InitMetrics()
}

// InitMetrics registers all Prometheus collectors used by the service.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			FramesReceivedTotal,
			RecordsDecodedTotal,
			DecodeFailuresTotal,
			LastSequence,
			SnapshotsTotal,
			WindowFill,
			HTTPRequestsTotal,
			HTTPRequestErrorsTotal,
		)
	})
}

// Handler returns an HTTP handler exposing the registered collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}
