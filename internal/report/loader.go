// Package report runs one load cycle: the surf report page and the tide
// predictions are fetched concurrently and joined into a Snapshot.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/oahu-surf/internal/httpcache"
	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/models"
	"github.com/ngmaloney/oahu-surf/internal/noaa"
	"github.com/ngmaloney/oahu-surf/internal/observability"
)

// ErrNoReport means the report page could not be fetched, so there is
// nothing to display
var ErrNoReport = errors.New("could not load surf data")

// LoadError is returned when a load cycle produced no report
type LoadError struct {
	Seq uint64
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNoReport, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrNoReport, e.Err}
}

// ReportFetcher fetches and parses the surf report page
type ReportFetcher interface {
	GetReport(ctx context.Context) (*models.Report, httpcache.Source, error)
}

// Honolulu is Hawaii-Aleutian standard time, which has no daylight saving
var Honolulu = time.FixedZone("HST", -10*60*60)

// Options configures a Loader
type Options struct {
	Station       string
	StationName   string
	TideDays      int
	ReportTimeout time.Duration
	TideTimeout   time.Duration
	// Location decides which calendar day is "today" for the tide window
	Location *time.Location
}

// Snapshot is the result of one load cycle
type Snapshot struct {
	Seq      uint64                `json:"seq"`
	Report   *models.Report        `json:"report"`
	Tides    models.TideDayBuckets `json:"tides"`
	TideErr  error                 `json:"-"`
	LoadedAt time.Time             `json:"loaded_at"`
	Offline  bool                  `json:"offline"`
	CachedAt time.Time             `json:"cached_at,omitzero"`
	Station  string                `json:"station_name,omitempty"`
}

// Newer reports whether s supersedes other
func (s *Snapshot) Newer(other *Snapshot) bool {
	return other == nil || s.Seq > other.Seq
}

// Loader fetches both sources for a load cycle
type Loader struct {
	reports ReportFetcher
	tides   noaa.TideClient
	opts    Options
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *logger.Logger

	seq atomic.Uint64
}

// NewLoader creates a Loader. Zero options fall back to the Honolulu
// station, a 7 day tide window and 15 second timeouts.
func NewLoader(reports ReportFetcher, tides noaa.TideClient, opts Options, clock clockwork.Clock, metrics *observability.Metrics, log *logger.Logger) *Loader {
	if opts.Station == "" {
		opts.Station = "1612340"
	}
	if opts.TideDays <= 0 {
		opts.TideDays = 7
	}
	if opts.ReportTimeout <= 0 {
		opts.ReportTimeout = 15 * time.Second
	}
	if opts.TideTimeout <= 0 {
		opts.TideTimeout = 15 * time.Second
	}
	if opts.Location == nil {
		opts.Location = Honolulu
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Loader{
		reports: reports,
		tides:   tides,
		opts:    opts,
		clock:   clock,
		metrics: metrics,
		logger:  log,
	}
}

// TideWindow returns the first and last day of tide predictions to request
func (l *Loader) TideWindow() (time.Time, time.Time) {
	now := l.clock.Now().In(l.opts.Location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, l.opts.Location)
	return start, start.AddDate(0, 0, l.opts.TideDays-1)
}

// Load runs one cycle. Both fetches always run to completion; a tide failure
// leaves the snapshot without tides, a report failure fails the whole cycle
// with a *LoadError.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	seq := l.seq.Add(1)

	var (
		report    *models.Report
		reportSrc httpcache.Source
		reportErr error
		extrema   []models.TideExtremum
		tideSrc   httpcache.Source
		tideErr   error
	)

	var g errgroup.Group
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(ctx, l.opts.ReportTimeout)
		defer cancel()

		start := l.clock.Now()
		report, reportSrc, reportErr = l.reports.GetReport(ctx)
		l.observe(observability.SourceReport, start, reportSrc, reportErr)
		return nil
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(ctx, l.opts.TideTimeout)
		defer cancel()

		begin, end := l.TideWindow()
		start := l.clock.Now()
		extrema, tideSrc, tideErr = l.tides.GetTidePredictions(ctx, l.opts.Station, begin, end)
		l.observe(observability.SourceTides, start, tideSrc, tideErr)
		return nil
	})
	_ = g.Wait()

	if reportErr != nil {
		l.logger.Error("failed to load surf report", logger.Err(reportErr), slog.Uint64("seq", seq))
		return nil, &LoadError{Seq: seq, Err: reportErr}
	}

	snap := &Snapshot{
		Seq:      seq,
		Report:   report,
		Tides:    models.GroupTidesByDay(extrema),
		TideErr:  tideErr,
		LoadedAt: l.clock.Now(),
		Station:  l.opts.StationName,
	}
	if tideErr != nil {
		l.logger.Warn("tide predictions unavailable", logger.Err(tideErr), slog.Uint64("seq", seq))
	}

	for _, src := range []httpcache.Source{reportSrc, tideSrc} {
		if !src.Cached {
			continue
		}
		snap.Offline = true
		if snap.CachedAt.IsZero() || src.CachedAt.Before(snap.CachedAt) {
			snap.CachedAt = src.CachedAt
		}
	}

	for _, shore := range models.AllShores {
		l.metrics.ForecastDays.WithLabelValues(string(shore)).Set(float64(len(report.Forecasts[shore])))
	}
	l.metrics.LastLoad.Set(float64(snap.LoadedAt.Unix()))

	l.logger.Info("loaded surf report",
		slog.Uint64("seq", seq),
		slog.Int("days", report.Forecasts.NumDays()),
		slog.Int("wind_days", len(report.Wind)),
		slog.Int("tide_days", len(snap.Tides)),
		slog.Bool("offline", snap.Offline),
	)

	return snap, nil
}

func (l *Loader) observe(source string, start time.Time, src httpcache.Source, err error) {
	l.metrics.FetchDuration.WithLabelValues(source).Observe(l.clock.Since(start).Seconds())

	outcome := observability.OutcomeSuccess
	switch {
	case err != nil:
		outcome = observability.OutcomeError
	case src.Cached:
		outcome = observability.OutcomeCached
	}
	l.metrics.FetchTotal.WithLabelValues(source, outcome).Inc()
}
