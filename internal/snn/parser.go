// Package snn reads the Surf News Network report page: per-shore swell
// forecasts and the multi-day wind outlook.
package snn

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ngmaloney/oahu-surf/internal/extract"
	"github.com/ngmaloney/oahu-surf/internal/htmldoc"
	"github.com/ngmaloney/oahu-surf/internal/models"
)

const (
	headingTag     = "h3"
	containerClass = "mainbox"
	daySelector    = ".reportday"
	titleSelector  = ".titleday"
	bodySelector   = ".tidescontent"

	primaryMarker   = "Primary"
	secondaryMarker = "Secondary"
)

// ParseHTML tokenizes a report page and extracts everything it can. An error
// is returned only when the input cannot be read as HTML.
func ParseHTML(r io.Reader) (*models.Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report HTML: %w", err)
	}
	return ParseReport(doc.Selection), nil
}

// ParseReport extracts shore forecasts and wind readings from a parsed page
func ParseReport(doc *goquery.Selection) *models.Report {
	return &models.Report{
		Forecasts: ParseShoreForecasts(doc),
		Wind:      ParseWindForecast(doc),
	}
}

// ParseShoreForecasts returns the day forecasts of every shore. Shores whose
// section cannot be located get an empty sequence.
func ParseShoreForecasts(doc *goquery.Selection) models.ShoreForecastSet {
	set := models.NewShoreForecastSet()

	for _, shore := range models.AllShores {
		container, ok := htmldoc.LocateSection(doc, headingTag,
			htmldoc.TextEquals(string(shore)),
			htmldoc.HasClass(containerClass),
			htmldoc.MaxHops)
		if !ok {
			continue
		}

		container.Find(daySelector).Each(func(_ int, day *goquery.Selection) {
			if forecast, ok := ParseForecastDay(day); ok {
				set[shore] = append(set[shore], forecast)
			}
		})
	}

	return set
}

// ParseForecastDay extracts one day's forecast from a .reportday element.
// A day without a title label is skipped.
func ParseForecastDay(day *goquery.Selection) (models.DayForecast, bool) {
	label := strings.TrimSpace(day.Find(titleSelector).First().Text())
	if label == "" {
		return models.DayForecast{}, false
	}

	text := contentText(day)
	forecast := models.DayForecast{DayLabel: label}

	if date, ok := extract.Date(text); ok {
		forecast.Date = date
	} else if date, ok := extract.Date(day.Text()); ok {
		forecast.Date = date
	}

	primary, secondary := splitBlocks(text)
	if primary != "" {
		forecast.Primary = extract.Swell(primary)
	}
	if secondary != "" {
		forecast.Secondary = extract.Swell(secondary)
	}

	if comment, ok := extract.ConditionsComment(text); ok {
		forecast.Conditions = comment
	}
	if wave, ok := extract.WaveHeightRange(text); ok {
		forecast.WaveHeight = wave.Range
	}

	return forecast, true
}

// splitBlocks returns the text after "Primary" up to the following
// "Secondary", and the text after the first "Secondary"
func splitBlocks(text string) (primary, secondary string) {
	if i := strings.Index(text, primaryMarker); i >= 0 {
		rest := text[i+len(primaryMarker):]
		if j := strings.Index(rest, secondaryMarker); j >= 0 {
			rest = rest[:j]
		}
		primary = rest
	}
	if i := strings.Index(text, secondaryMarker); i >= 0 {
		secondary = text[i+len(secondaryMarker):]
	}
	return primary, secondary
}

// contentText prefers the .tidescontent body over the whole day element
func contentText(day *goquery.Selection) string {
	if body := day.Find(bodySelector).First(); body.Length() > 0 {
		return body.Text()
	}
	return day.Text()
}

var windHeading = htmldoc.AnyText(htmldoc.TextEquals("winds"), htmldoc.TextHasPrefix("wind"))

// ParseWindForecast returns one wind reading per day of the wind section, in
// document order. A page without a wind section yields nil.
func ParseWindForecast(doc *goquery.Selection) []models.WindReading {
	container, ok := htmldoc.LocateSection(doc, headingTag, windHeading,
		htmldoc.HasClass(containerClass), htmldoc.MaxHops)
	if !ok {
		return nil
	}

	var readings []models.WindReading
	container.Find(daySelector).Each(func(_ int, day *goquery.Selection) {
		label := strings.TrimSpace(day.Find(titleSelector).First().Text())
		value, matched := extract.WindPhrase(contentText(day), label)
		readings = append(readings, models.WindReading{
			DayLabel: label,
			Value:    value,
			Matched:  matched,
		})
	})
	return readings
}
