package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// TideKind represents whether a tide is high or low
type TideKind string

const (
	TideHigh TideKind = "H"
	TideLow  TideKind = "L"
)

// TideTimeLayout is the timestamp format used by NOAA CO-OPS predictions
const TideTimeLayout = "2006-01-02 15:04"

// TideExtremum is a single high or low tide prediction, kept in source format
type TideExtremum struct {
	Timestamp string   `json:"t"`    // "YYYY-MM-DD HH:MM", station local time
	Height    string   `json:"v"`    // feet relative to MLLW, decimal string
	Kind      TideKind `json:"type"` // "H" or "L"
}

// Date returns the calendar date portion of the timestamp
func (e TideExtremum) Date() string {
	date, _, _ := strings.Cut(e.Timestamp, " ")
	return date
}

// Time parses the timestamp
func (e TideExtremum) Time() (time.Time, error) {
	return time.Parse(TideTimeLayout, e.Timestamp)
}

// HeightFeet parses the height, returning 0 when it is not a number
func (e TideExtremum) HeightFeet() float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(e.Height), 64)
	if err != nil {
		return 0
	}
	return h
}

// Clock formats the time of day as "3:04 PM"
func (e TideExtremum) Clock() string {
	t, err := e.Time()
	if err != nil {
		return e.Timestamp
	}
	return t.Format("3:04 PM")
}

// IsHigh reports whether this is a high tide
func (e TideExtremum) IsHigh() bool {
	return e.Kind == TideHigh
}

// TideDayBuckets maps a date (YYYY-MM-DD) to that day's extrema followed by
// one lookahead extremum from the next day, when there is one
type TideDayBuckets map[string][]TideExtremum

// Dates returns the bucket keys in ascending order
func (b TideDayBuckets) Dates() []string {
	dates := make([]string, 0, len(b))
	for date := range b {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// GroupTidesByDay buckets chronologically ordered extrema by calendar date.
// Each bucket holds its own entries in input order plus the entry immediately
// following its last member in the input. The input is not re-sorted.
func GroupTidesByDay(extrema []TideExtremum) TideDayBuckets {
	buckets := make(TideDayBuckets)
	if len(extrema) == 0 {
		return buckets
	}

	lastIndex := make(map[string]int)
	for i, e := range extrema {
		date := e.Date()
		buckets[date] = append(buckets[date], e)
		lastIndex[date] = i
	}

	for date, idx := range lastIndex {
		if idx+1 < len(extrema) {
			buckets[date] = append(buckets[date], extrema[idx+1])
		}
	}

	return buckets
}
