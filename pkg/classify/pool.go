package classify

import (
	"sync"

	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
)

// Buffers that grew past these bounds during a call are dropped instead of
// pooled, so one pathological request cannot pin a large allocation forever.
const (
	maxPooledWorklist = 1024
	maxPooledDedup    = 4096
	maxPooledSink     = 256
)

var (
	worklistPool = sync.Pool{
		New: func() any {
			buf := make([]syntax.Unit, 0, 64)
			return &buf
		},
	}
	dedupPool = sync.Pool{
		New: func() any {
			return make(map[span.Classified]struct{}, 64)
		},
	}
	sinkPool = sync.Pool{
		New: func() any {
			return &Sink{spans: make([]span.Classified, 0, 16)}
		},
	}
)

// borrowWorker assembles a call-scoped worker around pool-borrowed buffers.
// release must run on every exit path; Classify arranges that with a defer.
func borrowWorker(sem *SemanticContext, ranges *span.RangeSet,
	out *[]span.Classified, reg *Registry, opts *Options) *worker {

	return &worker{
		sem:     sem,
		ranges:  ranges,
		out:     out,
		reg:     reg,
		opts:    opts,
		pending: (*worklistPool.Get().(*[]syntax.Unit))[:0],
		seen:    dedupPool.Get().(map[span.Classified]struct{}),
		scratch: sinkPool.Get().(*Sink),
	}
}

// release clears the borrowed buffers and returns them to their pools,
// discarding any that grew past the retention bounds.
func (w *worker) release() {
	if cap(w.pending) <= maxPooledWorklist {
		buf := w.pending[:0]
		// Drop unit references so pooled backing arrays don't keep
		// trees alive between calls.
		clear(w.pending[:cap(w.pending)])
		worklistPool.Put(&buf)
	}
	w.pending = nil

	if len(w.seen) <= maxPooledDedup {
		clear(w.seen)
		dedupPool.Put(w.seen)
	}
	w.seen = nil

	if cap(w.scratch.spans) <= maxPooledSink {
		w.scratch.reset()
		sinkPool.Put(w.scratch)
	}
	w.scratch = nil
}
