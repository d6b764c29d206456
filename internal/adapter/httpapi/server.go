// Package httpapi exposes the quake view API, the websocket update push,
// the embedded frontend, and the health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/domain"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/observability"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/session"
	"github.com/rishik-kumar/Earthquake-Visualizer/internal/view"
)

// QuakeSession is the session surface the server consumes.
type QuakeSession interface {
	Snapshot() session.Snapshot
	Refresh() error
	CheckReadiness(ctx context.Context) error
}

// Server exposes the visualizer HTTP surface.
type Server struct {
	httpServer *http.Server
	sess       QuakeSession
	hub        *Hub
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API, websocket, static frontend,
// and operational routes. staticFS may be nil to disable the frontend.
func NewServer(addr string, sess QuakeSession, hub *Hub, metrics *observability.Metrics, logger *slog.Logger, staticFS fs.FS) *Server {
	mux := http.NewServeMux()

	s := &Server{
		// No read/write timeouts: /ws connections are long-lived.
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		sess:    sess,
		hub:     hub,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/quakes", s.handleQuakes)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("GET /ws", hub.HandleWS)

	if staticFS != nil {
		mux.Handle("GET /", http.FileServer(http.FS(staticFS)))
	}

	return s
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

// quakesResponse is the /api/quakes body: the session state plus the view
// composed for the requested threshold. The view is empty unless loaded.
type quakesResponse struct {
	State     string    `json:"state"`
	Error     string    `json:"error,omitempty"`
	FetchedAt string    `json:"fetched_at,omitempty"`
	View      view.View `json:"view"`
}

func (s *Server) handleQuakes(w http.ResponseWriter, r *http.Request) {
	threshold := 0.0
	if raw := r.URL.Query().Get("min_magnitude"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "min_magnitude must be a number",
			})
			return
		}
		threshold = domain.ClampThreshold(t)
	}

	snap := s.sess.Snapshot()
	resp := quakesResponse{
		State: snap.State.String(),
		Error: snap.Err,
		View:  view.Compose(snap.Quakes, threshold),
	}
	if !snap.FetchedAt.IsZero() {
		resp.FetchedAt = snap.FetchedAt.UTC().Format(time.RFC3339)
	}

	s.metrics.ViewsComposed.Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	if err := s.sess.Refresh(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"state": session.StateLoading.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.sess.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
