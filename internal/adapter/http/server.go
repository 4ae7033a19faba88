package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the chart API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	api        *api
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with the /api routes and /healthz,
// /readyz, and /metrics.
func NewServer(addr string, ready sharedobs.ReadinessChecker, current CurrentReader, series SeriesReader, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		api:     &api{current: current, series: series, logger: logger},
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /api/current", "current", s.api.handleCurrent)
	s.route(mux, "GET /api/series", "series", s.api.handleSeries)
	s.route(mux, "GET /api/daily", "daily", s.api.handleDaily)

	return s
}

func (s *Server) route(mux *http.ServeMux, pattern, name string, h http.HandlerFunc) {
	counter := s.metrics.HTTPRequests.MustCurryWith(prometheus.Labels{"route": name})
	mux.Handle(pattern, promhttp.InstrumentHandlerCounter(counter, h))
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
