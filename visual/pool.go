package visual

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// Transform scratch buffers are short-lived objects. To avoid multiple
// allocation of small objects we will pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// scratch collects the word and gap tokens of one transform call plus
// the builder for the reassembled rendering.
type scratch struct {
	sb    strings.Builder
	words []string
	gaps  []string
}

// borrowScratch returns a cleared scratch from the pool.
func borrowScratch() *scratch {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	s := o.(*scratch)
	return s
}

// Clears the scratch and puts it back into the pool.
func (s *scratch) release() {
	s.sb.Reset()
	s.words = s.words[:0]
	s.gaps = s.gaps[:0]
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
