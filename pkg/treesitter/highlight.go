package treesitter

import (
	"context"

	"github.com/maryamariyan/classify/pkg/classify"
	"github.com/maryamariyan/classify/pkg/span"
)

// Highlight parses content and classifies it against the requested ranges
// with the language's default registry. Results come back in traversal
// order; sort with span.SortClassified for document order.
func Highlight(ctx context.Context, content []byte, lang Language, ranges *span.RangeSet) ([]span.Classified, error) {
	root, err := Parse(ctx, content, lang)
	if err != nil {
		return nil, err
	}

	var out []span.Classified
	sem := &classify.SemanticContext{Root: root}
	if err := classify.Classify(ctx, sem, ranges, &out, NewRegistry(lang), nil); err != nil {
		return nil, err
	}
	return out, nil
}
