package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"telemetry-monitor/internal/domain"
)

// Server exposes the HTTP presentation surface of the telemetry monitor.
type Server struct {
	router chi.Router
}

// NewServer constructs a chi based HTTP server over the feed and the
// pipeline's stats.
func NewServer(feed domain.SeriesProvider, stats domain.StatsProvider) *Server {
	router := chi.NewRouter()
	h := &handler{feed: feed, stats: stats}
	registerRoutes(router, h)

	return &Server{router: router}
}

// Router returns the configured router for reuse in tests or external HTTP servers.
func (s *Server) Router() http.Handler {
	return s.router
}

// ServeHTTP allows Server to satisfy the http.Handler interface directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
