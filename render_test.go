package bidiscope

import (
	"testing"

	"github.com/dlyongemallo/bidiscope/internal/tracing"
	"github.com/dlyongemallo/bidiscope/visual"
)

func TestRenderLine(t *testing.T) {
	tracing.SetTestingLog(t)
	line := []byte("Hello سلام دنیا World")
	rs := RenderLine(line, 0, visual.Options{})
	if len(rs) != 1 {
		t.Fatalf("expected 1 rendering, have %d", len(rs))
	}
	if rs[0].Column != 7 {
		t.Errorf("expected rendering at column 7, have %d", rs[0].Column)
	}
	if rs[0].Text != "دنیا سلام" {
		t.Errorf("expected reversed visual text, have %q", rs[0].Text)
	}
	if rs[0].Highlighted {
		t.Error("no cursor given, nothing should be highlighted")
	}
}

func TestRenderLineHighlight(t *testing.T) {
	tracing.SetTestingLog(t)
	line := []byte("Hello سلام دنیا World")
	// cursor on the first byte of the run: the first logical codepoint
	// sits in the last visual slot of the reversed first word
	rs := RenderLine(line, 7, visual.Options{})
	if len(rs) != 1 || !rs[0].Highlighted {
		t.Fatalf("expected a highlighted rendering, have %+v", rs)
	}
	if rs[0].Highlight != (Span{Start: 16, End: 17}) {
		t.Errorf("expected highlight [16,17], have [%d,%d]",
			rs[0].Highlight.Start, rs[0].Highlight.End)
	}
}

func TestRenderLineCursorOutsideRun(t *testing.T) {
	tracing.SetTestingLog(t)
	line := []byte("Hello سلام دنیا World")
	rs := RenderLine(line, 1, visual.Options{}) // on the H
	if len(rs) != 1 {
		t.Fatalf("expected 1 rendering, have %d", len(rs))
	}
	if rs[0].Highlighted {
		t.Error("cursor outside the run should not highlight")
	}
}

func TestRenderLineHideIfUnchanged(t *testing.T) {
	tracing.SetTestingLog(t)
	line := []byte("x שלום y")
	if rs := RenderLine(line, 0, visual.Options{HideIfUnchanged: true}); rs != nil {
		t.Errorf("single-word run renders unchanged, expected nothing, have %+v", rs)
	}
	if rs := RenderLine(line, 0, visual.Options{}); len(rs) != 1 {
		t.Errorf("without the hide policy the run should render, have %+v", rs)
	}
	// a changed run keeps the whole line visible
	multi := []byte("x سلام دنیا y")
	if rs := RenderLine(multi, 0, visual.Options{HideIfUnchanged: true}); len(rs) != 1 {
		t.Errorf("changed run should render despite the hide policy, have %+v", rs)
	}
}

func TestRenderLineNoRuns(t *testing.T) {
	tracing.SetTestingLog(t)
	if rs := RenderLine([]byte("plain text"), 3, visual.Options{}); rs != nil {
		t.Errorf("expected no renderings for an LTR-only line, have %+v", rs)
	}
	if rs := RenderLine(nil, 0, visual.Options{}); rs != nil {
		t.Errorf("expected no renderings for an empty line, have %+v", rs)
	}
}
