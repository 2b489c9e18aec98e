package report

import (
	"testing"

	"github.com/ngmaloney/oahu-surf/internal/models"
)

func TestCards(t *testing.T) {
	snap := &Snapshot{
		Report: sampleReport(),
		Tides:  models.GroupTidesByDay(sampleTides()),
	}

	cards := Cards(snap)
	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, want 2", len(cards))
	}

	first := cards[0]
	if first.Label != "Mon 01/15" {
		t.Errorf("cards[0].Label = %q, want Mon 01/15", first.Label)
	}
	if len(first.Shores) != 2 {
		t.Fatalf("cards[0] shores = %d, want north and south", len(first.Shores))
	}
	if first.Shores[0].Shore != models.ShoreNorth || first.Shores[1].Shore != models.ShoreSouth {
		t.Errorf("shore order = %s, %s", first.Shores[0].Shore, first.Shores[1].Shore)
	}
	if first.Shores[0].Condition != models.ConditionRough {
		t.Errorf("north condition = %s, want rough", first.Shores[0].Condition)
	}
	if first.Wind == nil || first.Wind.Value != "10-20 mph" {
		t.Errorf("cards[0].Wind = %+v", first.Wind)
	}
	if first.TideDate != "2025-01-15" || len(first.Tides) != 3 {
		t.Errorf("cards[0] tides = %s %+v", first.TideDate, first.Tides)
	}

	second := cards[1]
	if second.Label != "Tue 01/16" {
		t.Errorf("cards[1].Label = %q", second.Label)
	}
	if len(second.Shores) != 1 || second.Shores[0].Shore != models.ShoreNorth {
		t.Errorf("cards[1] shores = %+v, want north only", second.Shores)
	}
	if second.Wind != nil {
		t.Errorf("cards[1].Wind = %+v, want nil", second.Wind)
	}
	if second.TideDate != "2025-01-16" || len(second.Tides) != 1 {
		t.Errorf("cards[1] tides = %s %+v", second.TideDate, second.Tides)
	}
}

func TestCards_Empty(t *testing.T) {
	if cards := Cards(nil); cards != nil {
		t.Errorf("Cards(nil) = %+v", cards)
	}

	snap := &Snapshot{Report: &models.Report{Forecasts: models.NewShoreForecastSet()}}
	if cards := Cards(snap); len(cards) != 0 {
		t.Errorf("Cards() with no shores = %+v, want none", cards)
	}
}

func TestCards_FallbackLabel(t *testing.T) {
	set := models.NewShoreForecastSet()
	set[models.ShoreEast] = []models.DayForecast{{DayLabel: "Fri"}, {DayLabel: "Sat"}, {DayLabel: "Sun"}}
	set[models.ShoreNorth] = []models.DayForecast{{DayLabel: "Fri"}}

	cards := Cards(&Snapshot{Report: &models.Report{Forecasts: set}})
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
	// north is the reference shore and has only one day
	if cards[0].Label != "Fri" || cards[1].Label != "Day 2" || cards[2].Label != "Day 3" {
		t.Errorf("labels = %q %q %q", cards[0].Label, cards[1].Label, cards[2].Label)
	}
	if cards[2].TideDate != "" || cards[2].Tides != nil {
		t.Errorf("cards[2] tides = %s %+v, want none", cards[2].TideDate, cards[2].Tides)
	}
}
