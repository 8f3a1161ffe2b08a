package visual

import (
	"testing"

	"github.com/dlyongemallo/bidiscope/internal/tracing"
)

func TestToVisualReversesWords(t *testing.T) {
	tracing.SetTestingLog(t)
	if out := ToVisual("سلام دنیا", Options{}); out != "دنیا سلام" {
		t.Errorf("expected reversed word order, have %q", out)
	}
}

func TestToVisualSingleWordUnchanged(t *testing.T) {
	tracing.SetTestingLog(t)
	if out := ToVisual("שלום", Options{}); out != "שלום" {
		t.Errorf("single word should render unchanged, have %q", out)
	}
}

func TestToVisualDigitsMoveWithPosition(t *testing.T) {
	tracing.SetTestingLog(t)
	if out := ToVisual("مرحبا 123 بك", Options{}); out != "بك 123 مرحبا" {
		t.Errorf("expected embedded digits to move with their slot, have %q", out)
	}
}

func TestToVisualPreservesGaps(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct{ in, out string }{
		{"אב  גד", "גד  אב"},
		{"אב\tגד", "גד\tאב"},
		{"אב \tגד זה", "זה \tגד אב"},
		{"", ""},
	}
	for _, tc := range cases {
		if out := ToVisual(tc.in, Options{}); out != tc.out {
			t.Errorf("ToVisual(%q) = %q, expected %q", tc.in, out, tc.out)
		}
	}
}

func TestToVisualRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []string{
		"سلام دنیا",
		"שלום",
		"مرحبا 123 بك",
		"אב  גד\tהו",
		"و آن گاه که در",
	}
	for _, in := range inputs {
		twice := ToVisual(ToVisual(in, Options{}), Options{})
		if twice != in {
			t.Errorf("double reversal of %q yields %q", in, twice)
		}
	}
}

func TestToVisualJoinerRewrite(t *testing.T) {
	tracing.SetTestingLog(t)
	opts := Options{RewriteJoiner: true}
	if out := ToVisual("می\u200cروم", opts); out != "می-روم" {
		t.Errorf("expected ZWNJ rewritten to placeholder, have %q", out)
	}
	// all occurrences are rewritten, even in words left unsplit
	if out := ToVisual("a\u200cb\u200cc", opts); out != "a-b-c" {
		t.Errorf("expected every joiner rewritten, have %q", out)
	}
}

func TestToVisualJoinerSwap(t *testing.T) {
	tracing.SetTestingLog(t)
	opts := Options{SwapOnJoiner: true}
	if out := ToVisual("می\u200cروم", opts); out != "روم\u200cمی" {
		t.Errorf("expected halves swapped around joiner, have %q", out)
	}
	// zero or multiple occurrences leave the word as a single unit
	if out := ToVisual("سلام", opts); out != "سلام" {
		t.Errorf("word without joiner should be untouched, have %q", out)
	}
	if out := ToVisual("a\u200cb\u200cc", opts); out != "a\u200cb\u200cc" {
		t.Errorf("word with two joiners should be untouched, have %q", out)
	}
}

func TestToVisualSwapThenRewrite(t *testing.T) {
	tracing.SetTestingLog(t)
	// swap is applied before rewrite, so the placeholder lands between
	// the exchanged halves
	opts := Options{SwapOnJoiner: true, RewriteJoiner: true}
	if out := ToVisual("می\u200cروم", opts); out != "روم-می" {
		t.Errorf("expected swap before rewrite, have %q", out)
	}
}

func TestToVisualCustomJoiner(t *testing.T) {
	tracing.SetTestingLog(t)
	opts := Options{SwapOnJoiner: true, Joiner: '+'}
	if out := ToVisual("ab+cd", opts); out != "cd+ab" {
		t.Errorf("expected custom joiner to split the word, have %q", out)
	}
	opts = Options{RewriteJoiner: true, Joiner: '+', Placeholder: '*'}
	if out := ToVisual("ab+cd", opts); out != "ab*cd" {
		t.Errorf("expected custom placeholder, have %q", out)
	}
}
