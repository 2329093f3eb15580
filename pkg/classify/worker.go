package classify

import (
	"context"

	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
)

// worker holds the call-scoped mutable state of one classification request:
// the LIFO worklist, the dedup set, and the reusable buffers. One worker
// exists per Classify call; it is never shared and never reused across
// requests. Its buffers come from package pools and go back on release.
type worker struct {
	sem    *SemanticContext
	ranges *span.RangeSet
	out    *[]span.Classified
	reg    *Registry
	opts   *Options

	// pending is the LIFO worklist. Children are pushed in document order
	// and popped in reverse, so traversal is depth-first right-to-left.
	pending []syntax.Unit

	// seen suppresses duplicate (span, category) emissions. First
	// occurrence wins.
	seen map[span.Classified]struct{}

	// scratch receives one classifier invocation's raw output before it
	// is merged into seen/out.
	scratch *Sink

	// overlap is the reusable buffer for per-unit range queries. Trivia
	// recursion re-enters drain, which clobbers it, so it is refilled
	// right before each dispatch loop and never held across one.
	overlap []span.Span

	visited int
	pruned  int
	emitted int
}

// drain pops and processes worklist entries until the worklist shrinks back
// to floor entries. The outermost call uses floor 0; structured-trivia
// recursion uses the current depth as floor so a nested root is fully
// classified in place, keeping trivia spans ordered relative to their
// token's own spans.
func (w *worker) drain(ctx context.Context, floor int) error {
	for len(w.pending) > floor {
		if err := ctx.Err(); err != nil {
			return err
		}

		u := w.pending[len(w.pending)-1]
		w.pending[len(w.pending)-1] = nil
		w.pending = w.pending[:len(w.pending)-1]

		full := u.FullSpan()
		if !w.ranges.Intersects(full) {
			// Nothing in this subtree can matter: the full extent
			// already covers all attached trivia.
			w.pruned++
			continue
		}
		w.visited++

		if tok, ok := u.(syntax.TokenUnit); ok {
			if err := w.classifyToken(ctx, tok, full); err != nil {
				return err
			}
			continue
		}

		w.overlap = w.ranges.AppendOverlapping(w.overlap[:0], full.Start, full.Length)
		for _, target := range w.overlap {
			if err := w.dispatch(ctx, u, target, w.reg.NodeClassifiers(u.Kind())); err != nil {
				return err
			}
		}

		w.pending = append(w.pending, u.Children()...)
	}
	return nil
}

// classifyToken runs the token's classifiers once per intersecting requested
// range, with leading trivia handled before and trailing trivia after, so
// that leading-trivia spans, token spans, and trailing-trivia spans land in
// the output in that relative order.
func (w *worker) classifyToken(ctx context.Context, tok syntax.TokenUnit, full span.Span) error {
	if err := w.classifyTrivia(ctx, tok.LeadingTrivia()); err != nil {
		return err
	}

	w.overlap = w.ranges.AppendOverlapping(w.overlap[:0], full.Start, full.Length)
	for _, target := range w.overlap {
		if err := w.dispatch(ctx, tok, target, w.reg.TokenClassifiers(tok.Kind())); err != nil {
			return err
		}
	}

	return w.classifyTrivia(ctx, tok.TrailingTrivia())
}

// classifyTrivia pushes each structured-trivia root onto the shared worklist
// and drains it immediately, giving nested trees the same pruning and
// dispatch as the primary tree. Plain trivia has no sub-tree and is skipped;
// classifying it is the attached token's classifiers' business.
func (w *worker) classifyTrivia(ctx context.Context, list []syntax.Trivia) error {
	for _, trivia := range list {
		root := trivia.Structure()
		if root == nil {
			continue
		}
		floor := len(w.pending)
		w.pending = append(w.pending, root)
		if err := w.drain(ctx, floor); err != nil {
			return err
		}
	}
	return nil
}

// dispatch invokes every registered classifier for the unit against one
// target range, merging each invocation's scratch output. All classifiers
// run; an error aborts the call with whatever was already emitted retained.
func (w *worker) dispatch(ctx context.Context, unit syntax.Unit, target span.Span, classifiers []Classifier) error {
	for _, c := range classifiers {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.scratch.reset()
		if err := c.Classify(ctx, unit, target, w.sem, w.opts, w.scratch); err != nil {
			return err
		}
		// Re-check before merging: a classifier may have observed the
		// cancellation itself, and nothing may be appended after the
		// signal.
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, candidate := range w.scratch.spans {
			w.emit(candidate)
		}
	}
	return nil
}

// emit applies the emission filter: nonzero length, overlap with a requested
// range (re-checked here since a unit's full extent intersecting a range
// says nothing about an individual classified sub-span), and first
// occurrence of the (span, category) pair. Later duplicates drop silently.
func (w *worker) emit(candidate span.Classified) {
	if candidate.Span.Length <= 0 {
		return
	}
	if !w.ranges.Overlaps(candidate.Span) {
		return
	}
	if _, dup := w.seen[candidate]; dup {
		return
	}
	w.seen[candidate] = struct{}{}
	*w.out = append(*w.out, candidate)
	w.emitted++
}
