package bidiscope

import (
	"github.com/dlyongemallo/bidiscope/classify"
	"github.com/dlyongemallo/bidiscope/codec"
)

// Run is a maximal contiguous RTL span of a source line. A run begins
// and ends on an RTL-classified codepoint; its interior may contain weak
// codepoints (digits, punctuation, spaces, directional controls) that
// were absorbed between two RTL codepoints. Byte positions are 1-based
// and inclusive.
type Run struct {
	Start int    // position of the run's first byte
	End   int    // position of the run's last byte
	Text  string // the literal substring occupying [Start, End]
}

// classOf buckets a decoded unit. Malformed units classify as other, so
// malformed bytes can never start, extend, or be absorbed into a run.
func classOf(u codec.Unit) classify.Class {
	cp, ok := u.Codepoint()
	if !ok {
		return classify.Other
	}
	return classify.ClassForRune(cp)
}

// FindRuns scans one line and returns its RTL runs in increasing Start
// order; runs never overlap. A run opens at an RTL codepoint, absorbs
// subsequent RTL and weak codepoints, and is then trimmed of trailing
// weak content: an embedded number or punctuation mark does not fracture
// an RTL phrase into two runs, but trailing neutral characters are left
// to render in their normal logical position. Lines are processed
// independently; no state crosses lines.
func FindRuns(line []byte) []Run {
	units := codec.Decode(line)
	var runs []Run
	for i := 0; i < len(units); {
		if classOf(units[i]) != classify.RTL {
			i++
			continue
		}
		start, end := i, i
		for j := i + 1; j < len(units); j++ {
			if classOf(units[j]) == classify.Other {
				break
			}
			end = j
		}
		for end > start && classOf(units[end]) == classify.Weak {
			end--
		}
		run := Run{Start: units[start].Start, End: units[end].Stop}
		run.Text = string(line[run.Start-1 : run.End])
		tracer().Debugf("RTL run [%d,%d] %q", run.Start, run.End, run.Text)
		runs = append(runs, run)
		i = end + 1
	}
	return runs
}

// Contains reports whether the 1-based byte position pos lies inside
// the run.
func (r Run) Contains(pos int) bool {
	return pos >= r.Start && pos <= r.End
}
