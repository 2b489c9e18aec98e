package extract

import (
	"strings"
	"testing"

	"github.com/ngmaloney/oahu-surf/internal/models"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   models.Trend
		raw    string
		wantOK bool
	}{
		{"dropping", "Dropping 14s NNE", models.TrendDropping, "Dropping", true},
		{"lowercase holding", "holding 12s N", models.TrendHolding, "holding", true},
		{"up and holding", "Up & holding 13s NW", models.TrendHolding, "Up & holding", true},
		{"up holding no ampersand", "Up holding", models.TrendHolding, "Up holding", true},
		{"rising", "Rising 16s WNW", models.TrendRising, "Rising", true},
		{"building normalizes to rising", "Building 17s SSW", models.TrendRising, "Building", true},
		{"steady", "STEADY", models.TrendSteady, "STEADY", true},
		{"none", "None", models.TrendNone, "None", true},
		{"leftmost keyword wins", "Steady then Dropping", models.TrendSteady, "Steady", true},
		{"no keyword", "14s NNE Haw: 3-5", models.TrendUnknown, "", false},
		{"empty", "", models.TrendUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw, ok := Trend(tt.text)
			if got != tt.want || raw != tt.raw || ok != tt.wantOK {
				t.Errorf("Trend(%q) = (%q, %q, %v), want (%q, %q, %v)", tt.text, got, raw, ok, tt.want, tt.raw, tt.wantOK)
			}
		})
	}
}

func TestPeriodAndDirection(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		period int
		dir    string
		wantOK bool
	}{
		{"typical", "Dropping 14s NNE Haw: 3-5", 14, "NNE", true},
		{"lowercase direction", "12s ssw", 12, "SSW", true},
		{"non-breaking space", "13s NW", 13, "NW", true},
		{"no space", "9sE", 9, "E", true},
		{"stops at adjacent markup letters", "10s NHaw: 1-2", 10, "N", true},
		{"entity left in raw text", "11s&nbsp;SE", 11, "SE", true},
		{"zero period rejected", "0s N", 0, "", false},
		{"no compass", "14s Haw: 3", 0, "", false},
		{"no period", "NNE swell", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, dir, ok := PeriodAndDirection(tt.text)
			if period != tt.period || dir != tt.dir || ok != tt.wantOK {
				t.Errorf("PeriodAndDirection(%q) = (%d, %q, %v), want (%d, %q, %v)",
					tt.text, period, dir, ok, tt.period, tt.dir, tt.wantOK)
			}
		})
	}
}

func TestLabeledNumber(t *testing.T) {
	tests := []struct {
		text   string
		label  string
		want   string
		wantOK bool
	}{
		{"Haw: 3-5+ Face: 5-9", "Haw:", "3-5+", true},
		{"Haw: 3-5+ Face: 5-9", "Face:", "5-9", true},
		{"face:0-1.5 small", "Face:", "0-1.5", true},
		{"Haw:  2/3", "Haw:", "2/3", true},
		{"Haw: flat", "Haw:", "", false},
		{"Face: -", "Face:", "", false},
		{"no label here", "Face:", "", false},
		{"Height: 4-6", "Height:", "4-6", true},
	}

	for _, tt := range tests {
		t.Run(tt.label+" "+tt.text, func(t *testing.T) {
			got, ok := LabeledNumber(tt.text, tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LabeledNumber(%q, %q) = (%q, %v), want (%q, %v)", tt.text, tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConditionsComment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "last Face wins",
			text:   "Primary Holding 13s NW Haw: 2-3 Face: 3-5 Clean conditions Secondary Rising 9s E Haw: 1 Face: 1-2 Choppy",
			want:   "Choppy",
			wantOK: true,
		},
		{
			name:   "single block",
			text:   "Primary Dropping 14s NNE Haw: 3-5 Face: 5-9 Clean",
			want:   "Clean",
			wantOK: true,
		},
		{
			name:   "phrase stops at punctuation",
			text:   "Face: 2-4 Light winds, glassy early. More later",
			want:   "Light winds, glassy early",
			wantOK: true,
		},
		{
			name:   "too short",
			text:   "Face: 2-4 ok",
			wantOK: false,
		},
		{
			name:   "nothing after value",
			text:   "Face: 3-5",
			wantOK: false,
		},
		{
			name:   "no face label",
			text:   "Haw: 3-5 Clean",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConditionsComment(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ConditionsComment(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConditionsComment_Truncated(t *testing.T) {
	long := "Face: 4-6 " + strings.Repeat("clean ", 20)
	got, ok := ConditionsComment(long)
	if !ok {
		t.Fatal("expected a comment")
	}
	if len([]rune(got)) > MaxConditionsLen {
		t.Errorf("comment has %d runes, want at most %d", len([]rune(got)), MaxConditionsLen)
	}
	if !strings.HasPrefix(got, "clean clean") {
		t.Errorf("comment = %q, want prefix 'clean clean'", got)
	}
}

func TestDate(t *testing.T) {
	if got, ok := Date("Monday 01/15 Primary"); !ok || got != "01/15" {
		t.Errorf("Date() = (%q, %v), want 01/15", got, ok)
	}
	if _, ok := Date("Monday"); ok {
		t.Error("Date() without MM/DD should not match")
	}
}

func TestSwell(t *testing.T) {
	got := Swell(" Dropping 14s NNE Haw: 3-5 Face: 5-9 Clean")
	want := models.SwellReading{
		Trend:         models.TrendDropping,
		TrendText:     "Dropping",
		PeriodSeconds: 14,
		Direction:     "NNE",
		Haw:           "3-5",
		Face:          "5-9",
	}
	if got != want {
		t.Errorf("Swell() = %+v, want %+v", got, want)
	}
	if got.Period() != "14s" {
		t.Errorf("Period() = %q, want 14s", got.Period())
	}

	empty := Swell("nothing useful")
	if empty.HasData() {
		t.Errorf("Swell() on unmatched text = %+v, want no data", empty)
	}
}

// Every extractor must return a well-formed result for arbitrary input
func TestExtractors_Total(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"Face:",
		"Face: Face: Face:",
		"Haw: ",
		"999999999999999999999999s NNE",
		"Surf's '",
		"mph mph 10- mph",
		"\x00\xff\xfe",
		strings.Repeat("Primary Secondary ", 200),
		"日本語 テキスト 3-5'",
	}

	for _, in := range inputs {
		if trend, raw, ok := Trend(in); !ok && (trend != models.TrendUnknown || raw != "") {
			t.Errorf("Trend(%q) returned partial value %q %q", in, trend, raw)
		}
		if period, dir, ok := PeriodAndDirection(in); !ok && (period != 0 || dir != "") {
			t.Errorf("PeriodAndDirection(%q) returned partial value %d %q", in, period, dir)
		}
		if v, ok := LabeledNumber(in, "Face:"); !ok && v != "" {
			t.Errorf("LabeledNumber(%q) returned partial value %q", in, v)
		}
		if v, ok := ConditionsComment(in); !ok && v != "" {
			t.Errorf("ConditionsComment(%q) returned partial value %q", in, v)
		}
		if v, ok := WaveHeightRange(in); !ok && v != (WaveHeight{}) {
			t.Errorf("WaveHeightRange(%q) returned partial value %+v", in, v)
		}
		if v, ok := WindPhrase(in, "Monday"); ok && v == "" {
			t.Errorf("WindPhrase(%q) matched an empty phrase", in)
		}
		_ = Swell(in)
	}
}
