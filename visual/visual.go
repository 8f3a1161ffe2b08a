/*
Package visual turns the logical text of an RTL run into its visual-order
rendering and computes the byte-position mapping between the two.

The transformation is word reversal: the run text is split into maximal
word and whitespace-gap tokens, and the order of the words is reversed
while the order of the gaps is reversed independently, so that the exact
gap content survives. Letter order within a word is left alone — the
display terminal already shapes and joins RTL letters correctly.

Two optional workarounds compensate for terminals with limited support
for zero-width joiner characters: a rewrite mode replaces the joiner with
a visible placeholder glyph, and a swap mode exchanges the two halves of
a word around a single joiner occurrence. When both are enabled, the swap
is applied before the rewrite.

All functions are pure; an Options value threads the configuration
through the whole transform and mapping call chain.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package visual

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ZWNJ is the zero-width non-joiner, the default joiner character for
// the workaround modes.
const ZWNJ = '\u200c'

// Options configures the visual transform and the position mapping.
// The zero value applies word reversal only.
type Options struct {
	HideIfUnchanged bool // renderer policy: emit nothing when every run is unchanged
	RewriteJoiner   bool // replace the joiner with a visible placeholder glyph
	SwapOnJoiner    bool // swap the two halves of a word around a single joiner

	Joiner      rune // joiner character; ZWNJ when unset
	Placeholder rune // stand-in glyph for a rewritten joiner; '-' when unset
}

func (o Options) joiner() rune {
	if o.Joiner == 0 {
		return ZWNJ
	}
	return o.Joiner
}

func (o Options) placeholder() rune {
	if o.Placeholder == 0 {
		return '-'
	}
	return o.Placeholder
}

// ToVisual converts the logical text of a run into its visual-order
// rendering. Word order and gap order are reversed independently; the
// token pattern of the line (which slots are words, which are gaps) is
// preserved, so gap content reappears verbatim between the reordered
// words.
func ToVisual(text string, opts Options) string {
	toks := tokenize(text)
	if len(toks) == 0 {
		return text
	}
	s := borrowScratch()
	defer s.release()
	for _, t := range toks {
		if t.gap {
			s.gaps = append(s.gaps, t.text)
			continue
		}
		word := t.text
		if opts.SwapOnJoiner {
			word = swapJoinerHalves(word, opts.joiner())
		}
		if opts.RewriteJoiner {
			word = strings.ReplaceAll(word, string(opts.joiner()), string(opts.placeholder()))
		}
		s.words = append(s.words, word)
	}
	wi, gi := len(s.words), len(s.gaps)
	for _, t := range toks {
		if t.gap {
			gi--
			s.sb.WriteString(s.gaps[gi])
		} else {
			wi--
			s.sb.WriteString(s.words[wi])
		}
	}
	out := s.sb.String()
	tracer().Debugf("visual transform %q -> %q", text, out)
	return out
}

// swapJoinerHalves rearranges a word with exactly one joiner occurrence
// into (after, joiner, before). Words with zero or multiple occurrences
// are left as a single unit.
func swapJoinerHalves(word string, joiner rune) string {
	j := string(joiner)
	if strings.Count(word, j) != 1 {
		return word
	}
	k := strings.Index(word, j)
	return word[k+len(j):] + j + word[:k]
}
