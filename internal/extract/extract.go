// Package extract pulls single values out of free-text surf report fragments.
//
// Every extractor is pure and total: unmatched input yields an explicit
// "not found" (false) result, never an error or a partially filled value.
// Where several phrasings are accepted they are declared as ordered rule
// tables, and table order is the precedence.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ngmaloney/oahu-surf/internal/models"
)

const (
	// MaxConditionsLen bounds the conditions comment, in runes
	MaxConditionsLen = 60
	// MaxWindFallbackLen bounds the raw wind text used when no phrase matches
	MaxWindFallbackLen = 80
)

// ws matches whitespace including the non-breaking spaces left by &nbsp;
const ws = `[\s\p{Zs}]`

type trendRule struct {
	pattern string
	trend   models.Trend
}

// trendRules are tried as one alternation so the leftmost keyword wins; at
// the same position the earlier rule wins
var trendRules = []trendRule{
	{`Dropping`, models.TrendDropping},
	{`Holding`, models.TrendHolding},
	{`Up` + ws + `*&?` + ws + `*holding`, models.TrendHolding},
	{`Rising`, models.TrendRising},
	{`Building`, models.TrendRising},
	{`Steady`, models.TrendSteady},
	{`None`, models.TrendNone},
}

var (
	trendRegex = compileAlternation(func() []string {
		patterns := make([]string, len(trendRules))
		for i, r := range trendRules {
			patterns[i] = r.pattern
		}
		return patterns
	}())

	periodDirRegex  = regexp.MustCompile(`(?i)(\d+)s` + ws + `*(?:&nbsp;)?` + ws + `*([NSEW]{1,3})`)
	nonCompassRegex = regexp.MustCompile(`[^NSEW]`)
	dateRegex       = regexp.MustCompile(`(\d{2}/\d{2})`)
	conditionsRegex = regexp.MustCompile(`^Face:` + ws + `*[\d\-+./]+` + ws + `*(\w[\w\s\p{Zs},'-]*)`)
	digitRegex      = regexp.MustCompile(`\d`)
)

// compileAlternation builds a case-insensitive regexp with one capture group
// per pattern, in order
func compileAlternation(patterns []string) *regexp.Regexp {
	groups := make([]string, len(patterns))
	for i, p := range patterns {
		groups[i] = "(" + p + ")"
	}
	return regexp.MustCompile(`(?i)` + strings.Join(groups, "|"))
}

// Trend finds the first trend keyword in text. It returns the normalized
// trend and the keyword as written.
func Trend(text string) (models.Trend, string, bool) {
	m := trendRegex.FindStringSubmatchIndex(text)
	if m == nil {
		return models.TrendUnknown, "", false
	}
	for i, rule := range trendRules {
		start, end := m[2*(i+1)], m[2*(i+1)+1]
		if start >= 0 {
			return rule.trend, strings.TrimSpace(text[start:end]), true
		}
	}
	return models.TrendUnknown, "", false
}

// PeriodAndDirection matches "<n>s <compass>" such as "14s NNE". The direction
// is upper-cased and reduced to N/S/E/W letters.
func PeriodAndDirection(text string) (int, string, bool) {
	m := periodDirRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	period, err := strconv.Atoi(m[1])
	if err != nil || period <= 0 {
		return 0, "", false
	}
	dir := nonCompassRegex.ReplaceAllString(strings.ToUpper(m[2]), "")
	if dir == "" {
		return 0, "", false
	}
	return period, dir, true
}

var labeledNumberCache = map[string]*regexp.Regexp{
	"Haw:":  labeledNumberRegex("Haw:"),
	"Face:": labeledNumberRegex("Face:"),
}

func labeledNumberRegex(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + ws + `*([\d\-+./]+)`)
}

// LabeledNumber returns the numeric expression following label, e.g. the
// "3-5+" in "Haw: 3-5+". The expression must contain at least one digit.
func LabeledNumber(text, label string) (string, bool) {
	re, ok := labeledNumberCache[label]
	if !ok {
		re = labeledNumberRegex(label)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if !digitRegex.MatchString(value) {
		return "", false
	}
	return value, true
}

// ConditionsComment returns the phrase after the numeric value of the last
// "Face:" in text. The last occurrence is used because the comment follows the
// final face height, which belongs to the secondary block when there is one.
func ConditionsComment(text string) (string, bool) {
	idx := strings.LastIndex(text, "Face:")
	if idx < 0 {
		return "", false
	}
	m := conditionsRegex.FindStringSubmatch(text[idx:])
	if m == nil {
		return "", false
	}
	comment := strings.TrimSpace(m[1])
	if utf8.RuneCountInString(comment) <= 2 {
		return "", false
	}
	return strings.TrimSpace(truncateRunes(comment, MaxConditionsLen)), true
}

// Date returns the first "MM/DD" in text
func Date(text string) (string, bool) {
	m := dateRegex.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Swell runs the swell extractor cluster over one primary or secondary block
func Swell(text string) models.SwellReading {
	var r models.SwellReading
	if trend, raw, ok := Trend(text); ok {
		r.Trend = trend
		r.TrendText = raw
	}
	if period, dir, ok := PeriodAndDirection(text); ok {
		r.PeriodSeconds = period
		r.Direction = dir
	}
	if haw, ok := LabeledNumber(text, "Haw:"); ok {
		r.Haw = haw
	}
	if face, ok := LabeledNumber(text, "Face:"); ok {
		r.Face = face
	}
	return r
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
