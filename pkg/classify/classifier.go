package classify

import (
	"context"

	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
)

// Classifier is a pluggable strategy that inspects one syntax unit against a
// target sub-span and adds zero or more classified spans to the sink.
//
// A classifier must not retain the sink past the call: it is a pooled
// scratch buffer owned by the engine. Errors propagate to the Classify
// caller unmodified and abort the remaining traversal.
type Classifier interface {
	Classify(ctx context.Context, unit syntax.Unit, target span.Span,
		sem *SemanticContext, opts *Options, sink *Sink) error
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, unit syntax.Unit, target span.Span,
	sem *SemanticContext, opts *Options, sink *Sink) error

func (f ClassifierFunc) Classify(ctx context.Context, unit syntax.Unit, target span.Span,
	sem *SemanticContext, opts *Options, sink *Sink) error {
	return f(ctx, unit, target, sem, opts, sink)
}

// Sink collects one classifier invocation's raw output. The engine merges
// and clears it between invocations; classifiers only append.
type Sink struct {
	spans []span.Classified
}

// Add appends one raw candidate. Zero-length or out-of-range candidates are
// allowed here; the engine filters them at emission.
func (s *Sink) Add(sp span.Span, category span.Category) {
	s.spans = append(s.spans, span.Classified{Span: sp, Category: category})
}

func (s *Sink) Len() int {
	return len(s.spans)
}

func (s *Sink) reset() {
	s.spans = s.spans[:0]
}
