package visual

import (
	"unicode/utf8"

	"github.com/dlyongemallo/bidiscope/codec"
)

// PositionMap maps 1-based logical byte offsets of a run's text onto
// 1-based byte offsets of the run's visual rendering. It is built fresh
// per request and never persisted across edits.
type PositionMap struct {
	to []int // index 1…len(text); index 0 unused
}

// At looks up the visual byte offset for a logical byte offset. It
// returns false for offsets outside [1, Len()].
func (m PositionMap) At(offset int) (int, bool) {
	if offset < 1 || offset >= len(m.to) {
		return 0, false
	}
	return m.to[offset], true
}

// Len returns the number of logical bytes the map covers.
func (m PositionMap) Len() int {
	if len(m.to) == 0 {
		return 0
	}
	return len(m.to) - 1
}

// BuildPositionMap computes the logical-to-visual byte map for a run's
// text under the given options. Words are placed exactly as ToVisual
// places them; within each word (or each joiner-delimited half, when the
// swap mode splits it) codepoints map to mirrored slots, so that a cursor
// advancing through the logical text moves against the reading direction
// of the reversed rendering. Gap and joiner characters keep their own
// fixed positions. Whole codepoints always move atomically: every byte of
// a multi-byte codepoint maps with the same base offset plus its
// intra-codepoint index.
func BuildPositionMap(text string, opts Options) PositionMap {
	m := PositionMap{to: make([]int, len(text)+1)}
	toks := tokenize(text)
	if len(toks) == 0 {
		return m
	}
	var words, gaps []int
	for i, t := range toks {
		if t.gap {
			gaps = append(gaps, i)
		} else {
			words = append(words, i)
		}
	}
	// Assign visual start offsets following the reversed layout: the
	// first word slot receives the last word, and so on; gaps likewise.
	visStart := make([]int, len(toks))
	v := 1
	wi, gi := len(words), len(gaps)
	for i := range toks {
		var src int
		if toks[i].gap {
			gi--
			src = gaps[gi]
		} else {
			wi--
			src = words[wi]
		}
		visStart[src] = v
		v += visualLength(toks[src], opts)
	}
	for i, t := range toks {
		if t.gap {
			for b := 0; b < len(t.text); b++ {
				m.to[t.pos+b] = visStart[i] + b
			}
		} else {
			mapWord(&m, t, visStart[i], opts)
		}
	}
	return m
}

// MapCursor translates a cursor's logical byte offset within a run into
// the visual byte offset to highlight. It returns false for offsets
// outside [1, len(text)]. The full map is recomputed on each call;
// memoization across unchanged lines is the caller's responsibility.
func MapCursor(text string, offset int, opts Options) (int, bool) {
	if offset < 1 || offset > len(text) {
		return 0, false
	}
	return BuildPositionMap(text, opts).At(offset)
}

func mapWord(m *PositionMap, t token, visStart int, opts Options) {
	units := codec.Decode([]byte(t.text))
	if opts.SwapOnJoiner {
		if k, ok := singleJoinerIndex(units, opts.joiner()); ok {
			before, joiner, after := units[:k], units[k:k+1], units[k+1:]
			joinerStart := visStart + unitsVisualLength(after, opts)
			beforeStart := joinerStart + unitVisualLength(joiner[0], opts)
			mirror(m, after, t.pos, visStart, opts)
			mirror(m, joiner, t.pos, joinerStart, opts)
			mirror(m, before, t.pos, beforeStart, opts)
			return
		}
	}
	mirror(m, units, t.pos, visStart, opts)
}

// mirror maps the codepoints of one word unit onto mirrored visual
// slots: the codepoint at logical position j of a length-L unit lands in
// visual slot L-j+1. A single-codepoint unit maps onto itself, which is
// how the joiner of a split word keeps its fixed position.
func mirror(m *PositionMap, units []codec.Unit, tokPos, visStart int, opts Options) {
	base := visStart
	for j := len(units) - 1; j >= 0; j-- {
		u := units[j]
		vl := unitVisualLength(u, opts)
		for b := 0; b < u.Len(); b++ {
			off := b
			if off >= vl {
				off = vl - 1 // rewritten joiner may shrink
			}
			m.to[tokPos+u.Start-1+b] = base + off
		}
		base += vl
	}
}

// singleJoinerIndex returns the index of the only joiner codepoint of a
// word, or false if the word has zero or multiple occurrences.
func singleJoinerIndex(units []codec.Unit, joiner rune) (int, bool) {
	idx, n := -1, 0
	for i, u := range units {
		if r, ok := u.Codepoint(); ok && r == joiner {
			idx = i
			n++
		}
	}
	return idx, n == 1
}

// unitVisualLength returns the byte length a codepoint occupies in the
// visual rendering, accounting for the joiner-rewrite mode.
func unitVisualLength(u codec.Unit, opts Options) int {
	if opts.RewriteJoiner {
		if r, ok := u.Codepoint(); ok && r == opts.joiner() {
			return utf8.RuneLen(opts.placeholder())
		}
	}
	return u.Len()
}

func unitsVisualLength(units []codec.Unit, opts Options) int {
	n := 0
	for _, u := range units {
		n += unitVisualLength(u, opts)
	}
	return n
}

// visualLength returns the byte length of a token in the visual
// rendering. Gaps reappear verbatim, so only words can change length.
func visualLength(t token, opts Options) int {
	if t.gap || !opts.RewriteJoiner {
		return len(t.text)
	}
	return unitsVisualLength(codec.Decode([]byte(t.text)), opts)
}
