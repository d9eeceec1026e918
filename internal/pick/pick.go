// Package pick decides which of the numbers in a flattened stats fragment is
// the actual view count.
package pick

import "hitcount/internal/scan"

// Year-shaped values excluded from the fallback pool. Stats blocks often sit
// next to copyright years and post dates; a four-digit number in this range is
// assumed to be calendar noise, not a count.
const (
	yearMin = 1900
	yearMax = 2099
)

// strategy tries to pull a value out of text. ok is false when the strategy
// has no answer, letting the next one run.
type strategy func(text string) (int64, bool)

var strategies = []strategy{firstToken, maxPlausible}

// Choose returns the number most likely to be the stats value. The first
// token in text order wins when it parses ("1,142 hits" renders number first);
// otherwise every candidate is considered and the largest non-year value is
// taken. ok is false when neither rule finds anything.
//
// The first-token rule deliberately does not apply the year filter: a leading
// year-shaped number is returned as-is. Some third-party render formats depend
// on that, so the asymmetry is kept.
func Choose(text string) (int64, bool) {
	for _, s := range strategies {
		if v, ok := s(text); ok {
			return v, true
		}
	}
	return 0, false
}

func firstToken(text string) (int64, bool) {
	tok, ok := scan.First(text)
	if !ok {
		return 0, false
	}
	return scan.Parse(tok)
}

func maxPlausible(text string) (int64, bool) {
	var best int64
	found := false
	for c := range scan.Tokens(text) {
		if c.Value >= yearMin && c.Value <= yearMax {
			continue
		}
		if !found || c.Value > best {
			best = c.Value
			found = true
		}
	}
	return best, found
}
