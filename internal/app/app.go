// Package app builds a report loader from configuration.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/oahu-surf/internal/config"
	"github.com/ngmaloney/oahu-surf/internal/database"
	"github.com/ngmaloney/oahu-surf/internal/httpcache"
	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/noaa"
	"github.com/ngmaloney/oahu-surf/internal/observability"
	"github.com/ngmaloney/oahu-surf/internal/report"
	"github.com/ngmaloney/oahu-surf/internal/snn"
)

// App owns the loader and the resources behind it
type App struct {
	Loader *report.Loader
	store  *database.Store
}

// New opens the response cache unless it is disabled and wires both fetch
// clients through it
func New(conf *config.Config, metrics *observability.Metrics, log *logger.Logger, clock clockwork.Clock) (*App, error) {
	a := new(App)

	var transport http.RoundTripper = http.DefaultTransport
	if !conf.Cache.Disabled {
		path := conf.Cache.Path
		if path == "" {
			path = database.DBPath()
		}
		store, err := database.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open response cache: %w", err)
		}
		a.store = store
		transport = httpcache.New(store, metrics, log)
		log.Debug("response cache enabled", slog.String("path", path))
	}

	reports := snn.NewClient(conf.Report.URL, conf.Report.Proxy, &http.Client{
		Timeout:   conf.Report.Timeout,
		Transport: transport,
	})
	tides := noaa.NewTideClient(conf.Tides.URL, &http.Client{
		Timeout:   conf.Tides.Timeout,
		Transport: transport,
	})

	a.Loader = report.NewLoader(reports, tides, report.Options{
		Station:       conf.Tides.Station,
		StationName:   conf.Tides.StationName,
		TideDays:      conf.Tides.Days,
		ReportTimeout: conf.Report.Timeout,
		TideTimeout:   conf.Tides.Timeout,
	}, clock, metrics, log)

	return a, nil
}

// Close releases the response cache
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
