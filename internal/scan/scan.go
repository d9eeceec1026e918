package scan

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// Candidate is one parsed number found in text, with the byte offset of the
// token it came from.
type Candidate struct {
	Value int64
	Pos   int
}

// tokenPattern matches either a grouped number (1-3 digits followed by one or
// more 3-digit groups separated by comma, period, or space — "1,142", "1.142",
// "1 142") or a bare digit run. Grouped form is tried first at each position.
var tokenPattern = regexp.MustCompile(`\d{1,3}(?:[., ]\d{3})+|\d+`)

// Tokens yields candidates in the order their tokens occur in text, left to
// right and non-overlapping. Tokens whose cleaned digits do not parse (for
// example runs too long for int64) are skipped silently. The sequence is lazy
// and can be ranged over more than once.
func Tokens(text string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		off := 0
		for off < len(text) {
			loc := tokenPattern.FindStringIndex(text[off:])
			if loc == nil {
				return
			}
			start, end := off+loc[0], off+loc[1]
			if v, ok := Parse(text[start:end]); ok {
				if !yield(Candidate{Value: v, Pos: start}) {
					return
				}
			}
			off = end
		}
	}
}

// First returns the raw text of the first number token in text, parsed or not.
// Callers that need the spec'd "first number wins" rule use this so that an
// unparseable first token is distinguishable from no token at all.
func First(text string) (string, bool) {
	tok := tokenPattern.FindString(text)
	return tok, tok != ""
}

// Parse strips group separators from a token and parses the remaining digits
// as a non-negative integer. ok is false when anything but digits remains or
// the value does not fit.
func Parse(token string) (int64, bool) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', ' ':
			return -1
		}
		return r
	}, token)
	if clean == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(clean, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
