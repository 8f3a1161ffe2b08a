/*
Package bidiscope locates right-to-left script runs embedded in
otherwise left-to-right text lines and prepares them for display in
correct reading order.

Text editors usually store RTL text in logical order and leave visual
reordering to the terminal, which handles letter shaping well but leaves
multi-word RTL phrases in the wrong reading order relative to their LTR
surroundings. This module finds the RTL runs of a line, renders each run
with its word order reversed, and maintains a byte-precise mapping from
logical cursor offsets to visual highlight offsets, so that a host editor
can overlay the reordered text and track the cursor inside it.

The pipeline is: tolerant UTF-8 decoding (package codec), three-bucket
bidi classification over static range tables (package classify), RTL run
segmentation with weak-character absorption (FindRuns, this package), and
the visual-order transform plus position mapping (package visual). The
RenderLine front-end ties the stages together and produces one rendering
per run; LineCache memoizes renderings per unchanged line, and HasRTLText
is the cheap prescan a host uses to decide whether a buffer needs RTL
handling at all.

Typical Usage

  opts, _ := bidiscope.EnvironmentDefaults()
  for _, r := range bidiscope.RenderLine(line, cursorCol, opts) {
      // overlay r.Text at byte column r.Column,
      // highlight r.Highlight if r.Highlighted
  }

The core is single-threaded, synchronous and side-effect-free: every
operation is a pure function of its input bytes and options. The only
stateful entity, LineCache, is a value owned by the caller; the module
assumes serialized invocation per buffer line and needs no locking.

This module does not implement general UAX#9 resolution — no embedding
levels, no isolate runs, no paragraph reordering — and it never alters
the underlying logical text. It only computes what to display and where
to highlight.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.
*/
package bidiscope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
