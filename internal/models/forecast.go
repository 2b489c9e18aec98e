package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// Trend is the normalized direction of change for a swell
type Trend string

const (
	TrendUnknown  Trend = "" // no trend keyword found
	TrendDropping Trend = "Dropping"
	TrendHolding  Trend = "Holding" // includes "Up & holding"
	TrendRising   Trend = "Rising"  // Rising or Building
	TrendSteady   Trend = "Steady"
	TrendNone     Trend = "None"
)

// SwellReading is one swell system's forecast for a day. Empty strings and a
// zero period mean the value was not present in the source text.
type SwellReading struct {
	Trend         Trend  `json:"trend,omitempty"`
	TrendText     string `json:"trend_text,omitempty"` // keyword as written in the report, e.g. "Up & holding"
	PeriodSeconds int    `json:"period_seconds,omitempty"`
	Direction     string `json:"direction,omitempty"` // N/S/E/W letters only, 1-3 chars
	Haw           string `json:"haw,omitempty"`       // Hawaiian scale, display string e.g. "3-5+"
	Face          string `json:"face,omitempty"`      // face height, display string
}

// Period returns the period formatted as "<n>s", or "" when absent
func (s SwellReading) Period() string {
	if s.PeriodSeconds <= 0 {
		return ""
	}
	return strconv.Itoa(s.PeriodSeconds) + "s"
}

// HasData reports whether any trend, period or height was extracted.
// A reading without data must be treated as "no swell" by callers.
func (s SwellReading) HasData() bool {
	return s.Trend != TrendUnknown || s.PeriodSeconds > 0 || s.Haw != "" || s.Face != ""
}

// DayForecast is one calendar day of swell forecast for one shore
type DayForecast struct {
	DayLabel   string       `json:"day"`            // weekday name as given by the source
	Date       string       `json:"date,omitempty"` // "MM/DD", may be empty
	Primary    SwellReading `json:"primary"`
	Secondary  SwellReading `json:"secondary"`
	Conditions string       `json:"conditions,omitempty"`  // free-text comment, at most 60 runes
	WaveHeight string       `json:"wave_height,omitempty"` // fallback wave-height range from the day text
}

// Label returns the day label followed by the date when one was found
func (d DayForecast) Label() string {
	if d.Date == "" {
		return d.DayLabel
	}
	return d.DayLabel + " " + d.Date
}

// Shore is one of the four coastal regions with an independent forecast
type Shore string

const (
	ShoreNorth Shore = "north"
	ShoreEast  Shore = "east"
	ShoreSouth Shore = "south"
	ShoreWest  Shore = "west"
)

// AllShores lists the shores in display order
var AllShores = []Shore{ShoreNorth, ShoreEast, ShoreSouth, ShoreWest}

// ShoreForecastSet maps each shore to its days in source order. Sequences may
// differ in length; index d across shores is only approximately the same day.
type ShoreForecastSet map[Shore][]DayForecast

// NewShoreForecastSet returns a set with an empty sequence for every shore
func NewShoreForecastSet() ShoreForecastSet {
	set := make(ShoreForecastSet, len(AllShores))
	for _, shore := range AllShores {
		set[shore] = []DayForecast{}
	}
	return set
}

// NumDays returns the length of the longest shore sequence
func (s ShoreForecastSet) NumDays() int {
	n := 0
	for _, days := range s {
		if len(days) > n {
			n = len(days)
		}
	}
	return n
}

// Day returns the d-th forecast for a shore, if the shore has that many days
func (s ShoreForecastSet) Day(shore Shore, d int) (DayForecast, bool) {
	days := s[shore]
	if d < 0 || d >= len(days) {
		return DayForecast{}, false
	}
	return days[d], true
}

// ReferenceShore returns the first shore in display order that has any days.
// Its labels are canonical for the combined day cards.
func (s ShoreForecastSet) ReferenceShore() (Shore, bool) {
	for _, shore := range AllShores {
		if len(s[shore]) > 0 {
			return shore, true
		}
	}
	return "", false
}

// DayLabels returns the reference shore's labels by day index
func (s ShoreForecastSet) DayLabels() []string {
	shore, ok := s.ReferenceShore()
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(s[shore]))
	for _, day := range s[shore] {
		labels = append(labels, day.Label())
	}
	return labels
}

// DayLabel returns the canonical label for day index d, or "Day N"
func (s ShoreForecastSet) DayLabel(d int) string {
	labels := s.DayLabels()
	if d >= 0 && d < len(labels) && labels[d] != "" {
		return labels[d]
	}
	return fmt.Sprintf("Day %d", d+1)
}

// WindReading is the wind summary for one day. Value is either a matched
// "range mph" phrase or a raw slice of the day text when nothing matched.
type WindReading struct {
	DayLabel string `json:"day"`
	Value    string `json:"value"`
	Matched  bool   `json:"matched"`
}

// Report is everything extracted from one fetch of the surf report page
type Report struct {
	Forecasts ShoreForecastSet `json:"forecasts"`
	Wind      []WindReading    `json:"wind"`
}

// Condition classifies surf size for display colouring
type Condition string

const (
	ConditionFlat   Condition = "flat"
	ConditionFair   Condition = "fair"
	ConditionNormal Condition = "normal"
	ConditionRough  Condition = "rough"
)

var (
	firstNumberRegex = regexp.MustCompile(`(\d+)`)
	rangeUpperRegex  = regexp.MustCompile(`\d+[-–](\d+)`)
)

// ClassifyFace maps a face-height string to a Condition using the upper
// bound of a range when one is given
func ClassifyFace(face string) Condition {
	m := firstNumberRegex.FindStringSubmatch(face)
	if m == nil {
		return ConditionFlat
	}
	height, _ := strconv.Atoi(m[1])
	if r := rangeUpperRegex.FindStringSubmatch(face); r != nil {
		height, _ = strconv.Atoi(r[1])
	}

	switch {
	case height <= 2:
		return ConditionFlat
	case height <= 4:
		return ConditionFair
	case height >= 8:
		return ConditionRough
	}
	return ConditionNormal
}
