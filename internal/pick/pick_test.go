package pick

import (
	"strings"
	"testing"
)

func TestChoose_NoDigits(t *testing.T) {
	if _, ok := Choose("lots of words, zero numerals"); ok {
		t.Fatalf("expected no value")
	}
	if _, ok := Choose(""); ok {
		t.Fatalf("expected no value for empty text")
	}
}

func TestChoose_FirstNumberWins(t *testing.T) {
	v, ok := Choose("1,142 hits (since 2024)")
	if !ok || v != 1142 {
		t.Fatalf("expected 1142, got %d ok=%v", v, ok)
	}
}

// A leading year-shaped number is returned as-is: the year filter applies to
// the fallback pool only. Some render formats put the year first and count on
// this, so the behavior is pinned here.
func TestChoose_LeadingYearNotFiltered(t *testing.T) {
	v, ok := Choose("2024 visitors so far: 588")
	if !ok || v != 2024 {
		t.Fatalf("expected 2024, got %d ok=%v", v, ok)
	}
}

func TestChoose_FallbackSkipsYearsTakesMax(t *testing.T) {
	// The first token overflows int64, so the primary rule has no answer and
	// the year-filtered max takes over.
	text := strings.Repeat("9", 25) + " since 2024, best day 588, today 77"
	v, ok := Choose(text)
	if !ok || v != 588 {
		t.Fatalf("expected 588, got %d ok=%v", v, ok)
	}
}

func TestChoose_FallbackAllYearsMeansNone(t *testing.T) {
	text := strings.Repeat("9", 25) + " back in 2024"
	if _, ok := Choose(text); ok {
		t.Fatalf("expected no value when only year-shaped candidates remain")
	}
}

func TestChoose_YearBoundaries(t *testing.T) {
	// 1899 and 2100 sit just outside the excluded range and survive the
	// fallback.
	text := strings.Repeat("9", 25) + " 1899"
	v, ok := Choose(text)
	if !ok || v != 1899 {
		t.Fatalf("expected 1899, got %d ok=%v", v, ok)
	}
	text = strings.Repeat("9", 25) + " 2100"
	v, ok = Choose(text)
	if !ok || v != 2100 {
		t.Fatalf("expected 2100, got %d ok=%v", v, ok)
	}
}
