package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ngmaloney/oahu-surf/internal/models"
	"github.com/ngmaloney/oahu-surf/internal/report"
)

var titleCaser = cases.Title(language.English)

// renderSwellPane renders every shore's forecast for one day card
func (m Model) renderSwellPane(card report.DayCard, width int) string {
	// Border: 2 chars, Padding: 4 chars
	contentWidth := max(width-6, 20)

	var content strings.Builder

	if len(card.Shores) == 0 {
		content.WriteString(mutedStyle.Render("No swell forecast for this day"))
		return paneStyle.Width(width).Render(content.String())
	}

	for i, sd := range card.Shores {
		if i > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(renderShore(sd, contentWidth))
	}

	return paneStyle.Width(width).Render(content.String())
}

// renderShore renders one shore block: name and trend, the primary swell,
// a secondary swell when one is running, and the conditions comment
func renderShore(sd report.ShoreDay, width int) string {
	fc := sd.Forecast
	var lines []string

	header := shoreNameStyle.Render(shoreTitle(sd.Shore))
	if trend := trendText(fc.Primary); trend != "" {
		header += "  " + mutedStyle.Render(trend)
	}
	lines = append(lines, header)

	height, cond := primaryHeight(fc)
	row := conditionStyle(cond).Render(height)
	if fc.Primary.Face != "" && fc.Primary.Haw != "" {
		row += "  " + labelStyle.Render("Haw:") + " " + valueStyle.Render(fc.Primary.Haw+" ft")
	}
	if detail := swellDetail(fc.Primary); detail != "" {
		row += "  " + valueStyle.Render(detail)
	}
	lines = append(lines, row)

	if fc.Secondary.HasData() && fc.Secondary.Trend != models.TrendNone {
		second := "+ "
		if size := fc.Secondary.Face; size != "" {
			second += size + " ft "
		} else if fc.Secondary.Haw != "" {
			second += fc.Secondary.Haw + " ft haw "
		}
		second += swellDetail(fc.Secondary)
		if trend := trendText(fc.Secondary); trend != "" {
			second += " (" + trend + ")"
		}
		lines = append(lines, mutedStyle.Render(strings.TrimSpace(second)))
	}

	if fc.Conditions != "" {
		lines = append(lines, mutedStyle.Render(runewidth.Truncate(fc.Conditions, width, "…")))
	}

	return strings.Join(lines, "\n")
}

// primaryHeight picks the best size to headline a shore: face height, then
// Hawaiian scale, then the wave-height range found in the day text
func primaryHeight(fc models.DayForecast) (string, models.Condition) {
	switch {
	case fc.Primary.Face != "":
		return fc.Primary.Face + " ft", models.ClassifyFace(fc.Primary.Face)
	case fc.Primary.Haw != "":
		return fc.Primary.Haw + " ft haw", models.ClassifyFace(fc.Primary.Haw)
	case fc.WaveHeight != "":
		return fc.WaveHeight + " ft", models.ClassifyFace(fc.WaveHeight)
	}
	return "Flat", models.ConditionFlat
}

func shoreTitle(shore models.Shore) string {
	return titleCaser.String(string(shore)) + " Shore"
}

func trendText(s models.SwellReading) string {
	if s.TrendText != "" {
		return s.TrendText
	}
	return string(s.Trend)
}

// swellDetail formats period and direction, e.g. "13s NNW"
func swellDetail(s models.SwellReading) string {
	return strings.TrimSpace(s.Period() + " " + s.Direction)
}
