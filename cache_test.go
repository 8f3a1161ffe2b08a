package bidiscope

import (
	"testing"

	"github.com/dlyongemallo/bidiscope/internal/tracing"
	"github.com/dlyongemallo/bidiscope/visual"
)

func countingCache(calls *int) *LineCache {
	return &LineCache{
		renderFn: func(line []byte, cursor int, opts visual.Options) []Rendering {
			*calls++
			return []Rendering{{Column: 1, Text: string(line)}}
		},
	}
}

func TestLineCacheMemoizes(t *testing.T) {
	tracing.SetTestingLog(t)
	var calls int
	c := countingCache(&calls)
	key := LineKey{Buffer: 1, Line: 10, Content: "שלום", Cursor: 2}
	first := c.Render(key, visual.Options{})
	second := c.Render(key, visual.Options{})
	if calls != 1 {
		t.Errorf("expected 1 computation for a repeated key, have %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestLineCacheRecomputesOnKeyChange(t *testing.T) {
	tracing.SetTestingLog(t)
	var calls int
	c := countingCache(&calls)
	base := LineKey{Buffer: 1, Line: 10, Content: "שלום", Cursor: 2}
	c.Render(base, visual.Options{})
	variants := []LineKey{
		{Buffer: 2, Line: 10, Content: "שלום", Cursor: 2},
		{Buffer: 2, Line: 11, Content: "שלום", Cursor: 2},
		{Buffer: 2, Line: 11, Content: "سلام", Cursor: 2},
		{Buffer: 2, Line: 11, Content: "سلام", Cursor: 3},
	}
	for i, key := range variants {
		c.Render(key, visual.Options{})
		if calls != i+2 {
			t.Errorf("key change %d should recompute: have %d calls, expected %d",
				i, calls, i+2)
		}
	}
}

func TestLineCacheInvalidate(t *testing.T) {
	tracing.SetTestingLog(t)
	var calls int
	c := countingCache(&calls)
	key := LineKey{Buffer: 1, Line: 1, Content: "سلام دنیا"}
	c.Render(key, visual.Options{})
	c.Invalidate()
	c.Render(key, visual.Options{})
	if calls != 2 {
		t.Errorf("expected recomputation after Invalidate, have %d calls", calls)
	}
}

func TestLineCacheDefaultsToPipeline(t *testing.T) {
	tracing.SetTestingLog(t)
	var c LineCache
	key := LineKey{Buffer: 1, Line: 1, Content: "Hello سلام دنیا World"}
	rs := c.Render(key, visual.Options{})
	if len(rs) != 1 || rs[0].Text != "دنیا سلام" {
		t.Errorf("zero-value cache should run the real pipeline, have %+v", rs)
	}
}
