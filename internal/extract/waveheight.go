package extract

import (
	"regexp"
	"strings"
)

// WaveRule identifies which phrasing produced a wave-height range
type WaveRule int

const (
	RuleNone       WaveRule = iota
	RuleSurfPhrase          // "Surf's 3-5'"
	RuleMaybe               // "3-5' maybe 6'"
	RuleOccasional          // "3-5' occ. 6'"
	RuleBareRange           // "3-5'"
	RuleLocation            // "Sunset 6-8" or "Sunset 6 to 8"
)

func (r WaveRule) String() string {
	switch r {
	case RuleSurfPhrase:
		return "surf-phrase"
	case RuleMaybe:
		return "maybe"
	case RuleOccasional:
		return "occasional"
	case RuleBareRange:
		return "bare-range"
	case RuleLocation:
		return "location"
	}
	return "none"
}

// WaveHeight is a forecast wave-height range as written in the report
type WaveHeight struct {
	Range  string // normalized range, e.g. "3-5" or "3-5 occ. 6"
	Phrase string // the full matched phrase
	Rule   WaveRule
}

const (
	num      = `\d+(?:\.\d+)?`
	rangeSep = ws + `*[-–]` + ws + `*`
	feet     = `(?:'|’|ft\b|feet\b)`
)

type waveRule struct {
	rule    WaveRule
	pattern *regexp.Regexp
	// build turns submatches into the normalized range
	build func(m []string) string
}

// waveRules are tried in order, most specific first. The looser patterns at
// the end are only consulted when nothing more specific matched.
var waveRules = []waveRule{
	{
		rule:    RuleSurfPhrase,
		pattern: regexp.MustCompile(`(?i)\bSurf(?:'|’)?s` + ws + `+(` + num + `(?:` + rangeSep + num + `)?\+?)` + ws + `*` + feet),
		build:   func(m []string) string { return normalizeRange(m[1]) },
	},
	{
		rule:    RuleMaybe,
		pattern: regexp.MustCompile(`(?i)(` + num + rangeSep + num + `)` + ws + `*` + feet + `?` + ws + `*,?` + ws + `*maybe` + ws + `+(` + num + `)` + ws + `*` + feet),
		build:   func(m []string) string { return normalizeRange(m[1]) + " maybe " + m[2] },
	},
	{
		rule:    RuleOccasional,
		pattern: regexp.MustCompile(`(?i)(` + num + rangeSep + num + `)` + ws + `*` + feet + `?` + ws + `*(?:occ\.?|occasional(?:ly)?)` + ws + `*(` + num + `(?:` + rangeSep + num + `)?)` + ws + `*` + feet + `?`),
		build:   func(m []string) string { return normalizeRange(m[1]) + " occ. " + normalizeRange(m[2]) },
	},
	{
		rule:    RuleBareRange,
		pattern: regexp.MustCompile(`(` + num + rangeSep + num + `\+?)` + ws + `*` + feet),
		build:   func(m []string) string { return normalizeRange(m[1]) },
	},
	{
		rule:    RuleLocation,
		pattern: regexp.MustCompile(`\b[A-Z][A-Za-z']+` + ws + `+(` + num + `)` + ws + `*(?:[-–]|to)` + ws + `*(` + num + `)\b`),
		build:   func(m []string) string { return m[1] + "-" + m[2] },
	},
}

var rangeSpaceRegex = regexp.MustCompile(ws + `*[-–]` + ws + `*`)

func normalizeRange(s string) string {
	return rangeSpaceRegex.ReplaceAllString(strings.TrimSpace(s), "-")
}

// WaveHeightRange finds a forecast wave-height range, preferring explicit
// "Surf's" phrasing over qualified ranges, bare ranges, and finally a range
// following a place name
func WaveHeightRange(text string) (WaveHeight, bool) {
	for _, r := range waveRules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return WaveHeight{
			Range:  r.build(m),
			Phrase: strings.TrimSpace(m[0]),
			Rule:   r.rule,
		}, true
	}
	return WaveHeight{}, false
}
