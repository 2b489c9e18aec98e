package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ngmaloney/oahu-surf/internal/models"
	"github.com/ngmaloney/oahu-surf/internal/report"
)

type fakeLoader struct {
	mu    sync.Mutex
	seq   uint64
	err   error
	calls int
}

func (f *fakeLoader) Load(ctx context.Context) (*report.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.seq++
	if f.err != nil {
		return nil, &report.LoadError{Seq: f.seq, Err: f.err}
	}

	forecasts := models.NewShoreForecastSet()
	forecasts[models.ShoreNorth] = []models.DayForecast{
		{DayLabel: "Wed", Date: "01/15", Primary: models.SwellReading{Face: "10-15"}},
	}
	return &report.Snapshot{
		Seq:      f.seq,
		Report:   &models.Report{Forecasts: forecasts},
		Tides:    models.TideDayBuckets{},
		TideErr:  errors.New("tides down"),
		LoadedAt: time.Date(2025, 1, 15, 8, 0, 0, 0, report.Honolulu),
		Station:  "Honolulu",
	}, nil
}

func (f *fakeLoader) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func newTestServer(t *testing.T, loader Loader) *Server {
	t.Helper()
	s, err := New("127.0.0.1:0", loader, time.Hour, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_BeforeFirstLoad(t *testing.T) {
	s := newTestServer(t, &fakeLoader{})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusServiceUnavailable},
		{"/api/report", http.StatusServiceUnavailable},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := get(s, tt.path); rec.Code != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestServer_Report(t *testing.T) {
	s := newTestServer(t, &fakeLoader{})
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if rec := get(s, "/readyz"); rec.Code != http.StatusOK {
		t.Errorf("readyz status = %d, want 200", rec.Code)
	}

	rec := get(s, "/api/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body struct {
		Seq       uint64 `json:"seq"`
		Station   string `json:"station_name"`
		TideError string `json:"tide_error"`
		Cards     []struct {
			Label  string `json:"label"`
			Shores []struct {
				Shore     string `json:"shore"`
				Condition string `json:"condition"`
			} `json:"shores"`
		} `json:"cards"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if body.Seq != 1 || body.Station != "Honolulu" {
		t.Errorf("seq = %d, station = %q", body.Seq, body.Station)
	}
	if body.TideError != "tides down" {
		t.Errorf("tide_error = %q", body.TideError)
	}
	if len(body.Cards) != 1 || body.Cards[0].Label != "Wed 01/15" {
		t.Fatalf("cards = %+v", body.Cards)
	}
	if got := body.Cards[0].Shores[0]; got.Shore != "north" || got.Condition != "rough" {
		t.Errorf("shore = %+v", got)
	}
}

func TestServer_FailedRefreshKeepsSnapshot(t *testing.T) {
	loader := &fakeLoader{}
	s := newTestServer(t, loader)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	loader.setErr(errors.New("status 503"))
	err := s.Refresh(context.Background())
	if !errors.Is(err, report.ErrNoReport) {
		t.Fatalf("Refresh() error = %v, want ErrNoReport", err)
	}

	if snap := s.Snapshot(); snap == nil || snap.Seq != 1 {
		t.Fatalf("Snapshot() = %+v, want seq 1 kept", snap)
	}

	rec := get(s, "/api/report")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with stale data", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "status 503") {
		t.Errorf("body should carry last_error: %s", rec.Body.String())
	}
}

func TestServer_ReportErrorBeforeFirstLoad(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	s := newTestServer(t, loader)
	_ = s.Refresh(context.Background())

	rec := get(s, "/api/report")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServer_RefreshKeepsNewest(t *testing.T) {
	s := newTestServer(t, &fakeLoader{})

	newer := &report.Snapshot{Seq: 5, Report: &models.Report{Forecasts: models.NewShoreForecastSet()}}
	s.snapshot = newer

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if s.Snapshot() != newer {
		t.Error("an older cycle replaced a newer snapshot")
	}
}

func TestServer_Run(t *testing.T) {
	loader := &fakeLoader{}
	s := newTestServer(t, loader)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for s.Snapshot() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.Snapshot() == nil {
		t.Fatal("Run() did not load an initial snapshot")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}
}
