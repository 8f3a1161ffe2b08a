package bidiscope

import (
	"github.com/dlyongemallo/bidiscope/codec"
	"github.com/dlyongemallo/bidiscope/visual"
)

// Span is an inclusive 1-based byte range.
type Span struct {
	Start int
	End   int
}

// Rendering is the visual replacement for one run of a line: the text to
// overlay at a byte column, plus an optional highlight sub-range within
// that text marking the cursor's visual position.
type Rendering struct {
	Column      int    // 1-based byte column of the run's first byte
	Text        string // visual-order replacement text
	Highlighted bool   // whether Highlight is meaningful
	Highlight   Span   // visual byte range of the cursor's codepoint
}

// RenderLine runs the full pipeline on one line: it finds the RTL runs,
// transforms each into visual order, and, when the 1-based cursor byte
// offset falls inside a run, computes the visual sub-range to highlight
// for the codepoint under the cursor. With HideIfUnchanged set, nothing
// is rendered when every run's visual text equals its logical text.
// A cursor offset of 0 (or one outside the line) highlights nothing.
func RenderLine(line []byte, cursor int, opts visual.Options) []Rendering {
	runs := FindRuns(line)
	if len(runs) == 0 {
		return nil
	}
	renderings := make([]Rendering, 0, len(runs))
	changed := false
	for _, run := range runs {
		r := Rendering{
			Column: run.Start,
			Text:   visual.ToVisual(run.Text, opts),
		}
		if r.Text != run.Text {
			changed = true
		}
		if run.Contains(cursor) {
			r.Highlight, r.Highlighted = highlightSpan(run, cursor, opts)
		}
		renderings = append(renderings, r)
	}
	if opts.HideIfUnchanged && !changed {
		tracer().Debugf("all runs render unchanged, hiding")
		return nil
	}
	return renderings
}

// highlightSpan maps the cursor's codepoint onto its visual byte range.
// All bytes of the logical codepoint under the cursor map into one
// visual codepoint; the span covers that codepoint completely, so the
// highlight never splits a multi-byte character.
func highlightSpan(run Run, cursor int, opts visual.Options) (Span, bool) {
	logical := cursor - run.Start + 1
	text := []byte(run.Text)
	pm := visual.BuildPositionMap(run.Text, opts)
	for pos := 1; pos <= len(text); {
		u := codec.Next(text, pos)
		if logical >= u.Start && logical <= u.Stop {
			lo, hi := 0, 0
			for b := u.Start; b <= u.Stop; b++ {
				v, ok := pm.At(b)
				if !ok {
					return Span{}, false
				}
				if lo == 0 || v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			return Span{Start: lo, End: hi}, true
		}
		pos = u.Stop + 1
	}
	return Span{}, false
}
