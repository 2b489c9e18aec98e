package report

import (
	"github.com/ngmaloney/oahu-surf/internal/models"
)

// ShoreDay is one shore's forecast on a day card
type ShoreDay struct {
	Shore     models.Shore       `json:"shore"`
	Forecast  models.DayForecast `json:"forecast"`
	Condition models.Condition   `json:"condition"`
}

// DayCard combines every shore, the wind and the tides for one day index
type DayCard struct {
	Index    int                   `json:"index"`
	Label    string                `json:"label"`
	Shores   []ShoreDay            `json:"shores"`
	Wind     *models.WindReading   `json:"wind,omitempty"`
	TideDate string                `json:"tide_date,omitempty"`
	Tides    []models.TideExtremum `json:"tides,omitempty"`
}

// Cards aligns the snapshot by day index: card d holds every shore's d-th
// forecast, the d-th wind reading and the d-th tide date. Shores may be
// shorter than the card count; the reference shore's labels name the cards.
func Cards(snap *Snapshot) []DayCard {
	if snap == nil || snap.Report == nil {
		return nil
	}
	forecasts := snap.Report.Forecasts
	n := forecasts.NumDays()
	if n == 0 {
		return nil
	}

	tideDates := snap.Tides.Dates()
	cards := make([]DayCard, 0, n)

	for d := 0; d < n; d++ {
		card := DayCard{
			Index: d,
			Label: forecasts.DayLabel(d),
		}

		for _, shore := range models.AllShores {
			day, ok := forecasts.Day(shore, d)
			if !ok {
				continue
			}
			card.Shores = append(card.Shores, ShoreDay{
				Shore:     shore,
				Forecast:  day,
				Condition: models.ClassifyFace(day.Primary.Face),
			})
		}

		if d < len(snap.Report.Wind) {
			wind := snap.Report.Wind[d]
			card.Wind = &wind
		}

		if d < len(tideDates) {
			card.TideDate = tideDates[d]
			card.Tides = snap.Tides[tideDates[d]]
		}

		cards = append(cards, card)
	}

	return cards
}
