package classify

import (
	"context"

	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SemanticContext binds one semantic-analysis view to exactly one parsed
// tree. View is opaque to the engine and forwarded to classifiers that want
// symbol or type information; purely syntactic classifiers ignore it.
type SemanticContext struct {
	Root syntax.Unit
	View any
}

// Options is an opaque bag of feature toggles forwarded verbatim to every
// classifier. The engine never reads it.
type Options struct {
	Flags map[string]bool
}

// Enabled reports whether a toggle is set. A nil Options has every toggle
// off.
func (o *Options) Enabled(name string) bool {
	if o == nil {
		return false
	}
	return o.Flags[name]
}

// Classify walks the tree rooted at sem.Root, invoking the registered
// classifiers for every unit whose full extent intersects a requested range,
// and appends the deduplicated results to out.
//
// Every appended span has nonzero length and overlaps at least one requested
// range. Output order is traversal insertion order, which is depth-first but
// not guaranteed left-to-right; sort with span.SortClassified if document
// order matters. out is appended to, never cleared.
//
// Cancellation is cooperative: ctx is checked at every worklist pop and
// around every classifier invocation. On cancellation or on a classifier
// error the call aborts and the error propagates unmodified; spans already
// appended to out remain.
func Classify(ctx context.Context, sem *SemanticContext, ranges *span.RangeSet,
	out *[]span.Classified, reg *Registry, opts *Options) error {

	if sem == nil || sem.Root == nil {
		return errors.New("classify: semantic context has no tree root")
	}
	if out == nil {
		return errors.New("classify: nil output slice")
	}
	if reg == nil {
		return errors.New("classify: nil registry")
	}
	if ranges == nil || ranges.Len() == 0 {
		return nil
	}

	w := borrowWorker(sem, ranges, out, reg, opts)
	defer w.release()

	w.pending = append(w.pending, sem.Root)
	err := w.drain(ctx, 0)

	zerolog.Ctx(ctx).Debug().
		Int("visited", w.visited).
		Int("pruned", w.pruned).
		Int("emitted", w.emitted).
		Err(err).
		Msg("classification finished")

	return err
}
