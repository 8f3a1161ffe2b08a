package bidiscope

import (
	"github.com/dlyongemallo/bidiscope/visual"
)

// LineKey identifies the rendering inputs for one line of one buffer.
// Two keys are equal exactly when recomputation can be skipped.
type LineKey struct {
	Buffer  int    // host buffer identity
	Line    int    // line number within the buffer
	Content string // the line's current content
	Cursor  int    // 1-based cursor byte offset on the line, 0 for none
}

// LineCache memoizes the renderings of the most recently processed line.
// The core pipeline itself is pure and recomputes on every call; the
// cache is the decorator a host wraps around RenderLine so that cursor
// and redraw events on an unchanged line cost nothing. It caches exactly
// one line and is invalidated whenever any key field differs from the
// incoming request.
//
// A LineCache is a plain value with no locking; the host's serialized
// event dispatch must guarantee that requests for the same buffer are
// not issued concurrently. Option changes are not part of the key, so
// hosts call Invalidate when the display configuration changes.
type LineCache struct {
	key        LineKey
	valid      bool
	renderings []Rendering

	// renderFn substitutes the pipeline in tests; nil means RenderLine.
	renderFn func([]byte, int, visual.Options) []Rendering
}

// Render returns the renderings for key, recomputing only when key
// differs from the cached one.
func (c *LineCache) Render(key LineKey, opts visual.Options) []Rendering {
	if c.valid && c.key == key {
		return c.renderings
	}
	render := c.renderFn
	if render == nil {
		render = RenderLine
	}
	c.renderings = render([]byte(key.Content), key.Cursor, opts)
	c.key = key
	c.valid = true
	return c.renderings
}

// Invalidate drops the cached line, forcing the next Render to
// recompute.
func (c *LineCache) Invalidate() {
	c.valid = false
}
