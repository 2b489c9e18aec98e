// Package htmldoc locates sections of loosely structured HTML pages: a heading
// identified by its text, followed within a few siblings by a container.
package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxHops is how many siblings past a heading are searched for its container
const MaxHops = 5

// WalkSiblings follows next from start for at most maxHops steps and returns
// the first node satisfying match. The start node itself is not tested.
func WalkSiblings[N any](start N, next func(N) (N, bool), match func(N) bool, maxHops int) (N, bool) {
	cur := start
	for i := 0; i < maxHops; i++ {
		n, ok := next(cur)
		if !ok {
			break
		}
		if match(n) {
			return n, true
		}
		cur = n
	}
	var zero N
	return zero, false
}

// nextElement steps to the following element sibling, skipping text nodes
func nextElement(s *goquery.Selection) (*goquery.Selection, bool) {
	n := s.Next()
	if n.Length() == 0 {
		return nil, false
	}
	return n, true
}

// LocateSection finds the first headingTag element whose normalized text
// satisfies headingMatch, then returns the first element sibling within
// maxHops that satisfies containerMatch. Only the first matching heading is
// considered.
func LocateSection(
	doc *goquery.Selection,
	headingTag string,
	headingMatch func(string) bool,
	containerMatch func(*goquery.Selection) bool,
	maxHops int,
) (*goquery.Selection, bool) {
	var heading *goquery.Selection
	doc.Find(headingTag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if headingMatch(normalize(s.Text())) {
			heading = s
			return false
		}
		return true
	})
	if heading == nil {
		return nil, false
	}
	return WalkSiblings(heading, nextElement, containerMatch, maxHops)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TextEquals matches normalized heading text exactly
func TextEquals(want string) func(string) bool {
	want = normalize(want)
	return func(s string) bool { return s == want }
}

// TextHasPrefix matches normalized heading text by prefix
func TextHasPrefix(prefix string) func(string) bool {
	prefix = normalize(prefix)
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// AnyText matches when any of preds does
func AnyText(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// HasClass matches elements carrying the class token c
func HasClass(c string) func(*goquery.Selection) bool {
	return func(s *goquery.Selection) bool { return s.HasClass(c) }
}
