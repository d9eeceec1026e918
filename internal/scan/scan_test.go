package scan

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(text string) []Candidate {
	var out []Candidate
	for c := range Tokens(text) {
		out = append(out, c)
	}
	return out
}

func TestTokens_GroupedAndBareForms(t *testing.T) {
	cases := []struct {
		text string
		want []Candidate
	}{
		{"1,142 hits", []Candidate{{Value: 1142, Pos: 0}}},
		{"1.142 hits", []Candidate{{Value: 1142, Pos: 0}}},
		{"1 142 hits", []Candidate{{Value: 1142, Pos: 0}}},
		{"1,142,857 hits", []Candidate{{Value: 1142857, Pos: 0}}},
		{"1142 hits", []Candidate{{Value: 1142, Pos: 0}}},
		{"no numbers", nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, collect(tc.text)); diff != "" {
			t.Fatalf("Tokens(%q) mismatch (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestTokens_DocumentOrderAndPositions(t *testing.T) {
	got := collect("7 apples 1.142 pears 1 142 plums")
	want := []Candidate{
		{Value: 7, Pos: 0},
		{Value: 1142, Pos: 9},
		{Value: 1142, Pos: 21},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens_MalformedGroupSplits(t *testing.T) {
	// "12,34" is not a valid grouped number; it scans as two bare runs.
	got := collect("12,34")
	want := []Candidate{{Value: 12, Pos: 0}, {Value: 34, Pos: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens_OverflowDiscardedSilently(t *testing.T) {
	text := strings.Repeat("9", 25) + " and 42"
	got := collect(text)
	want := []Candidate{{Value: 42, Pos: 30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokens_Restartable(t *testing.T) {
	seq := Tokens("12 and 34")
	first := func() []Candidate {
		var out []Candidate
		for c := range seq {
			out = append(out, c)
		}
		return out
	}
	a, b := first(), first()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
	if len(a) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(a))
	}
}

func TestTokens_EarlyStop(t *testing.T) {
	var got []Candidate
	for c := range Tokens("1 2 3") {
		got = append(got, c)
		break
	}
	if len(got) != 1 || got[0].Value != 1 {
		t.Fatalf("expected only the first candidate, got %v", got)
	}
}

func TestFirst(t *testing.T) {
	tok, ok := First("around 1,142 hits")
	if !ok || tok != "1,142" {
		t.Fatalf("expected token %q, got %q ok=%v", "1,142", tok, ok)
	}
	if _, ok := First("nothing here"); ok {
		t.Fatalf("expected no token")
	}
}

func TestParse(t *testing.T) {
	if v, ok := Parse("1,142"); !ok || v != 1142 {
		t.Fatalf("expected 1142, got %d ok=%v", v, ok)
	}
	if _, ok := Parse(strings.Repeat("9", 25)); ok {
		t.Fatalf("expected overflow token to be rejected")
	}
	if _, ok := Parse(""); ok {
		t.Fatalf("expected empty token to be rejected")
	}
}
