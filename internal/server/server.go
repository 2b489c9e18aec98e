// Package server serves the latest surf report snapshot over HTTP and keeps
// it fresh with a scheduled refresh job.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/report"
)

const (
	refreshJobName  = "report_refresh_job"
	shutdownTimeout = 10 * time.Second
)

// Loader runs one load cycle
type Loader interface {
	Load(ctx context.Context) (*report.Snapshot, error)
}

// Server exposes the report API together with health, readiness and
// metrics endpoints
type Server struct {
	httpServer *http.Server
	loader     Loader
	scheduler  gocron.Scheduler
	refresh    time.Duration
	logger     *logger.Logger

	mu       sync.RWMutex
	snapshot *report.Snapshot
	lastErr  error
}

// reportResponse is the body of GET /api/report
type reportResponse struct {
	*report.Snapshot
	Cards     []report.DayCard `json:"cards"`
	TideError string           `json:"tide_error,omitempty"`
	LastError string           `json:"last_error,omitempty"`
}

// New creates a server listening on addr that reloads every refresh
func New(addr string, loader Loader, refresh time.Duration, log *logger.Logger) (*Server, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	if log == nil {
		log = logger.Discard()
	}

	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		loader:    loader,
		scheduler: scheduler,
		refresh:   refresh,
		logger:    log,
	}

	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s, nil
}

// Run loads the first snapshot, starts the refresh job and serves until ctx
// is cancelled
func (s *Server) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("initial report load failed", logger.Err(err))
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.refresh),
		gocron.NewTask(s.refreshTask),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(refreshJobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", refreshJobName, err)
	}
	s.scheduler.Start()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		err = s.httpServer.Shutdown(shutdownCtx)
	}

	if schedErr := s.scheduler.Shutdown(); schedErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to stop scheduler: %w", schedErr))
	}
	return err
}

// Refresh runs one load cycle and keeps the result if it is newer than the
// current snapshot. A failed cycle leaves the previous snapshot in place.
func (s *Server) Refresh(ctx context.Context) error {
	snap, err := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = err
		return err
	}
	if snap.Newer(s.snapshot) {
		s.snapshot = snap
		s.lastErr = nil
	}
	return nil
}

func (s *Server) refreshTask(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("scheduled report refresh failed", logger.Err(err))
	}
}

// Snapshot returns the latest snapshot, or nil before the first good load
func (s *Server) Snapshot() *report.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	snap, lastErr := s.snapshot, s.lastErr
	s.mu.RUnlock()

	if snap == nil {
		msg := report.ErrNoReport.Error()
		if lastErr != nil {
			msg = lastErr.Error()
		}
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": msg})
		return
	}

	resp := reportResponse{
		Snapshot: snap,
		Cards:    report.Cards(snap),
	}
	if snap.TideErr != nil {
		resp.TideError = snap.TideErr.Error()
	}
	if lastErr != nil {
		resp.LastError = lastErr.Error()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.Snapshot() == nil {
		http.Error(w, "no report loaded", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", logger.Err(err))
	}
}
