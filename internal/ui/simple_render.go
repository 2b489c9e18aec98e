package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ngmaloney/oahu-surf/internal/report"
)

const plainLabelWidth = 14

// RenderText renders every day card without borders or width constraints,
// for printing a report once and exiting
func RenderText(snap *report.Snapshot) string {
	cards := report.Cards(snap)
	if len(cards) == 0 {
		return mutedStyle.Render("No forecast data available")
	}

	var lines []string
	for i, card := range cards {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(card.Label))

		for _, sd := range card.Shores {
			height, cond := primaryHeight(sd.Forecast)
			row := "  " + runewidth.FillRight(shoreTitle(sd.Shore), plainLabelWidth) + conditionStyle(cond).Render(height)
			if detail := swellDetail(sd.Forecast.Primary); detail != "" {
				row += "  " + detail
			}
			if trend := trendText(sd.Forecast.Primary); trend != "" {
				row += "  " + mutedStyle.Render(trend)
			}
			lines = append(lines, row)
		}

		if card.Wind != nil && card.Wind.Value != "" {
			lines = append(lines, "  "+runewidth.FillRight("Wind", plainLabelWidth)+card.Wind.Value)
		}

		if len(card.Tides) > 0 && snap.TideErr == nil {
			var tides []string
			for _, e := range card.Tides {
				if e.Date() != card.TideDate {
					continue
				}
				kind := "L"
				if e.IsHigh() {
					kind = "H"
				}
				tides = append(tides, fmt.Sprintf("%s %s %.1fft", kind, e.Clock(), e.HeightFeet()))
			}
			lines = append(lines, "  "+runewidth.FillRight("Tides", plainLabelWidth)+strings.Join(tides, ", "))
		}
	}

	if snap.TideErr != nil {
		lines = append(lines, "", warningStyle.Render("Tides unavailable: "+snap.TideErr.Error()))
	}

	return strings.Join(lines, "\n")
}
