package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/oahu-surf/internal/models"
	"github.com/ngmaloney/oahu-surf/internal/report"
	"github.com/ngmaloney/oahu-surf/internal/ui"
)

// This demo shows the UI with sample data and no network access
func main() {
	clock := clockwork.NewRealClock()
	now := clock.Now().In(report.Honolulu)

	m := ui.NewModel(nil, clock)
	m.SetSnapshot(sampleSnapshot(now))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}

func sampleSnapshot(now time.Time) *report.Snapshot {
	day := func(d int) (string, string) {
		t := now.AddDate(0, 0, d)
		return t.Format("Mon"), t.Format("01/02")
	}

	forecasts := models.NewShoreForecastSet()
	for d, north := range []models.SwellReading{
		{Trend: models.TrendRising, TrendText: "Rising", PeriodSeconds: 16, Direction: "NW", Haw: "8-10", Face: "12-18"},
		{Trend: models.TrendHolding, TrendText: "Up & holding", PeriodSeconds: 14, Direction: "NW", Haw: "6-8", Face: "10-15"},
		{Trend: models.TrendDropping, TrendText: "Dropping", PeriodSeconds: 12, Direction: "NNW", Haw: "3-5", Face: "5-8"},
	} {
		label, date := day(d)
		forecasts[models.ShoreNorth] = append(forecasts[models.ShoreNorth], models.DayForecast{
			DayLabel:   label,
			Date:       date,
			Primary:    north,
			Secondary:  models.SwellReading{Trend: models.TrendSteady, PeriodSeconds: 9, Direction: "NE", Face: "2-3"},
			Conditions: "Light trades, smooth early",
		})
	}
	for d := 0; d < 3; d++ {
		label, date := day(d)
		forecasts[models.ShoreEast] = append(forecasts[models.ShoreEast], models.DayForecast{
			DayLabel:   label,
			Date:       date,
			Primary:    models.SwellReading{Trend: models.TrendSteady, PeriodSeconds: 8, Direction: "ENE", Haw: "1-2", Face: "2-4"},
			Conditions: "Choppy",
		})
	}
	for d := 0; d < 2; d++ {
		label, date := day(d)
		forecasts[models.ShoreSouth] = append(forecasts[models.ShoreSouth], models.DayForecast{
			DayLabel:   label,
			Date:       date,
			Primary:    models.SwellReading{Trend: models.TrendNone, TrendText: "None"},
			WaveHeight: "1-2",
		})
	}

	var wind []models.WindReading
	for d, value := range []string{"10-20 mph NE trades", "15-25 mph trades", "5-15 mph variable"} {
		label, _ := day(d)
		wind = append(wind, models.WindReading{DayLabel: label, Value: value, Matched: true})
	}

	var tides []models.TideExtremum
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, report.Honolulu)
	for i := 0; i < 12; i++ {
		t := start.Add(time.Duration(i)*6*time.Hour + 2*time.Hour + 17*time.Minute)
		kind, height := models.TideLow, "-0.1"
		if i%2 == 1 {
			kind, height = models.TideHigh, "1.9"
		}
		tides = append(tides, models.TideExtremum{Timestamp: t.Format(models.TideTimeLayout), Height: height, Kind: kind})
	}

	return &report.Snapshot{
		Seq:      1,
		Report:   &models.Report{Forecasts: forecasts, Wind: wind},
		Tides:    models.GroupTidesByDay(tides),
		LoadedAt: now,
		Station:  "Honolulu",
	}
}
