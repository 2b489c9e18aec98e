package extract

import (
	"regexp"
	"strings"
)

// windRules are tried in order; the first match is the wind phrase
var windRules = []*regexp.Regexp{
	// "10-20 mph, gusty in the afternoon"
	regexp.MustCompile(`(?i)(\d+[-–]\d+` + ws + `*mph` + ws + `*[^.]{0,30})`),
	// "NE trades 15-25 mph"
	regexp.MustCompile(`(?i)([NSEW]{1,3}` + ws + `+(?:trades?|winds?)` + ws + `+\d+[-–]\d+` + ws + `*mph[^.]{0,20})`),
}

// WindPhrase extracts the wind summary for one day. The day label is removed
// first since headings are often repeated inside the content. When no phrase
// matches, the first MaxWindFallbackLen runes of the remaining text are
// returned with ok set to false.
func WindPhrase(text, dayLabel string) (string, bool) {
	text = strings.TrimSpace(text)
	if dayLabel != "" {
		text = strings.TrimSpace(strings.Replace(text, dayLabel, "", 1))
	}

	for _, re := range windRules {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	return strings.TrimSpace(truncateRunes(text, MaxWindFallbackLen)), false
}
