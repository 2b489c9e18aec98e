package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/oahu-surf/internal/models"
	"github.com/ngmaloney/oahu-surf/internal/report"
)

// renderWindTidesPane renders the wind summary and tide table for a day card
func (m Model) renderWindTidesPane(card report.DayCard, width int) string {
	var content strings.Builder

	content.WriteString(sectionHeaderStyle.MarginTop(0).Render("Wind"))
	content.WriteString("\n")
	content.WriteString(renderWind(card.Wind))
	content.WriteString("\n\n")

	title := "Tides"
	if m.snapshot != nil && m.snapshot.Station != "" {
		title += " · " + m.snapshot.Station
	}
	content.WriteString(sectionHeaderStyle.MarginTop(0).Render(title))
	if date := tideDateLabel(card.TideDate); date != "" {
		content.WriteString("  " + mutedStyle.Render(date))
	}
	content.WriteString("\n")

	switch {
	case m.snapshot != nil && m.snapshot.TideErr != nil:
		content.WriteString(warningStyle.Render("Tides unavailable"))
	case len(card.Tides) == 0:
		content.WriteString(mutedStyle.Render("No tide data available"))
	default:
		content.WriteString(renderTides(card.TideDate, card.Tides))
	}

	return paneStyle.Width(width).Render(content.String())
}

func renderWind(wind *models.WindReading) string {
	switch {
	case wind == nil || wind.Value == "":
		return mutedStyle.Render("No wind forecast")
	case !wind.Matched:
		return mutedStyle.Render(wind.Value)
	}
	return valueStyle.Render(wind.Value)
}

// renderTides renders one row per extremum. The last row may belong to the
// following day and is marked as such.
func renderTides(date string, tides []models.TideExtremum) string {
	rows := make([]string, 0, len(tides))
	for _, e := range tides {
		marker, kind, style := "▼", "Low", lowTideStyle
		if e.IsHigh() {
			marker, kind, style = "▲", "High", highTideStyle
		}

		row := fmt.Sprintf("%s %s  %s  %s",
			style.Render(marker),
			labelStyle.Width(4).Render(kind),
			valueStyle.Width(8).Align(lipgloss.Right).Render(e.Clock()),
			valueStyle.Render(fmt.Sprintf("%.1f ft", e.HeightFeet())),
		)
		if e.Date() != date {
			row += "  " + mutedStyle.Render("(next day)")
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// tideDateLabel formats a YYYY-MM-DD bucket key as "Wed Jan 15"
func tideDateLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Mon Jan 2")
}
