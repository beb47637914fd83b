package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/metrics"
)

// handler contains the HTTP handlers and shared dependencies for the REST API.
type handler struct {
	feed  domain.SeriesProvider
	stats domain.StatsProvider
}

func registerRoutes(router chi.Router, h *handler) {
	router.Get("/api/v1/series", h.handleSeries)
	router.Get("/api/v1/stats", h.handleStats)
	router.Get("/healthz", h.handleHealth)
}

type seriesPayload struct {
	X []int64   `json:"x"`
	Y []float64 `json:"y"`
}

type statsResponse struct {
	State   string `json:"state"`
	Decoded uint64 `json:"decoded"`
	Failed  uint64 `json:"failed"`
}

// handleSeries serves the renderer-facing snapshot: per channel, parallel
// x/y arrays of equal length, x strictly increasing by one.
func (h *handler) handleSeries(w http.ResponseWriter, r *http.Request) {
	snap := h.feed.Tick()

	response := make(map[string]seriesPayload, len(snap))
	for ch, series := range snap {
		payload := seriesPayload{X: series.X, Y: series.Y}
		if payload.X == nil {
			payload.X = []int64{}
		}
		if payload.Y == nil {
			payload.Y = []float64{}
		}
		response[string(ch)] = payload
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.stats.Stats()
	h.writeJSON(w, http.StatusOK, statsResponse{
		State:   stats.State,
		Decoded: stats.Decoded,
		Failed:  stats.Failed,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	metrics.HTTPRequestsTotal.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		metrics.HTTPRequestErrorsTotal.Inc()
	}
}
