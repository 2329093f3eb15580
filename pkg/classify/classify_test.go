package classify_test

import (
	"context"
	"testing"

	"github.com/maryamariyan/classify/pkg/classify"
	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfClassifier emits the unit's own span under a fixed category, the way a
// plain syntactic classifier labels a token.
func selfClassifier(category span.Category) classify.Classifier {
	return classify.ClassifierFunc(func(_ context.Context, unit syntax.Unit, _ span.Span,
		_ *classify.SemanticContext, _ *classify.Options, sink *classify.Sink) error {
		sink.Add(unit.Span(), category)
		return nil
	})
}

// statementTree builds the tree for `int x = 1;`:
//
//	int [0,3)  x [4,5)  = [6,7)  1 [8,9)  ; [9,10)
//
// with the separating spaces attached as trailing trivia.
func statementTree() syntax.Unit {
	ws := func(at int) syntax.Trivia {
		return syntax.NewTrivia("whitespace", span.New(at, 1))
	}
	return syntax.NewNode("statement",
		syntax.NewToken("keyword", span.FromBounds(0, 3)).WithTrailing(ws(3)),
		syntax.NewToken("identifier", span.FromBounds(4, 5)).WithTrailing(ws(5)),
		syntax.NewToken("operator", span.FromBounds(6, 7)).WithTrailing(ws(7)),
		syntax.NewToken("literal", span.FromBounds(8, 9)),
		syntax.NewToken("punctuation", span.FromBounds(9, 10)),
	)
}

func statementRegistry() *classify.Registry {
	return classify.NewRegistry().
		Token("keyword", selfClassifier(span.CategoryKeyword)).
		Token("identifier", selfClassifier(span.CategoryIdentifier)).
		Token("operator", selfClassifier(span.CategoryOperator)).
		Token("literal", selfClassifier(span.CategoryNumber)).
		Token("punctuation", selfClassifier(span.CategoryPunctuation))
}

func run(t *testing.T, root syntax.Unit, reg *classify.Registry, ranges ...span.Span) []span.Classified {
	t.Helper()
	var out []span.Classified
	err := classify.Classify(context.Background(),
		&classify.SemanticContext{Root: root},
		span.NewRangeSet(ranges...), &out, reg, nil)
	require.NoError(t, err)
	return out
}

// requireInvariants checks the output-wide guarantees: nonzero length, range
// overlap, and structural uniqueness.
func requireInvariants(t *testing.T, out []span.Classified, rs *span.RangeSet) {
	t.Helper()
	seen := make(map[span.Classified]struct{}, len(out))
	for _, c := range out {
		assert.Positive(t, c.Span.Length, "zero-length span %v in output", c)
		assert.True(t, rs.Overlaps(c.Span), "span %v outside requested ranges", c)
		_, dup := seen[c]
		assert.False(t, dup, "duplicate pair %v in output", c)
		seen[c] = struct{}{}
	}
}

func TestClassifyFullStatement(t *testing.T) {
	out := run(t, statementTree(), statementRegistry(), span.FromBounds(0, 10))

	span.SortClassified(out)
	require.Equal(t, []span.Classified{
		{Span: span.FromBounds(0, 3), Category: span.CategoryKeyword},
		{Span: span.FromBounds(4, 5), Category: span.CategoryIdentifier},
		{Span: span.FromBounds(6, 7), Category: span.CategoryOperator},
		{Span: span.FromBounds(8, 9), Category: span.CategoryNumber},
		{Span: span.FromBounds(9, 10), Category: span.CategoryPunctuation},
	}, out)
}

func TestClassifyOverlappingRangesNoDuplicates(t *testing.T) {
	// Two overlapping requested ranges cover the statement; each token is
	// dispatched per intersecting range but every pair appears once.
	rs := span.NewRangeSet(span.FromBounds(0, 6), span.FromBounds(4, 10))
	var out []span.Classified
	err := classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()},
		rs, &out, statementRegistry(), nil)
	require.NoError(t, err)

	require.Len(t, out, 5)
	requireInvariants(t, out, rs)
}

func TestClassifyRangeCoversOnlyIdentifier(t *testing.T) {
	out := run(t, statementTree(), statementRegistry(), span.FromBounds(4, 5))

	require.Equal(t, []span.Classified{
		{Span: span.FromBounds(4, 5), Category: span.CategoryIdentifier},
	}, out)
}

func TestClassifyEmptyRangeSetEmitsNothing(t *testing.T) {
	var out []span.Classified
	err := classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()},
		span.NewRangeSet(), &out, statementRegistry(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClassifyAppendsWithoutClearing(t *testing.T) {
	out := []span.Classified{
		{Span: span.New(999, 1), Category: span.CategoryText},
	}
	err := classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()},
		span.NewRangeSet(span.FromBounds(4, 5)), &out, statementRegistry(), nil)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, span.New(999, 1), out[0].Span)
}

func TestClassifyNilArguments(t *testing.T) {
	var out []span.Classified
	rs := span.NewRangeSet(span.New(0, 1))
	reg := classify.NewRegistry()

	assert.Error(t, classify.Classify(context.Background(), nil, rs, &out, reg, nil))
	assert.Error(t, classify.Classify(context.Background(),
		&classify.SemanticContext{}, rs, &out, reg, nil))
	assert.Error(t, classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()}, rs, nil, reg, nil))
	assert.Error(t, classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()}, rs, &out, nil, nil))
}

func TestAllRegisteredClassifiersRun(t *testing.T) {
	// Two classifiers on the same kind label disjoint aspects; both must
	// run even though the first already produced output.
	reg := classify.NewRegistry().
		Token("identifier",
			selfClassifier(span.CategoryIdentifier),
			selfClassifier(span.CategoryVariable),
		)

	out := run(t, statementTree(), reg, span.FromBounds(0, 10))
	span.SortClassified(out)
	require.Equal(t, []span.Classified{
		{Span: span.FromBounds(4, 5), Category: span.CategoryIdentifier},
		{Span: span.FromBounds(4, 5), Category: span.CategoryVariable},
	}, out)
}

func TestNodeClassifiersDispatch(t *testing.T) {
	reg := classify.NewRegistry().
		Node("statement", selfClassifier(span.CategoryText))

	out := run(t, statementTree(), reg, span.FromBounds(0, 10))
	require.Equal(t, []span.Classified{
		{Span: span.FromBounds(0, 10), Category: span.CategoryText},
	}, out)
}

func TestEmissionFiltersRawCandidates(t *testing.T) {
	// A classifier may hand back zero-length or out-of-range candidates;
	// the engine drops them at emission.
	junk := classify.ClassifierFunc(func(_ context.Context, unit syntax.Unit, _ span.Span,
		_ *classify.SemanticContext, _ *classify.Options, sink *classify.Sink) error {
		sink.Add(span.New(unit.Span().Start, 0), span.CategoryKeyword)
		sink.Add(span.New(5000, 3), span.CategoryKeyword)
		sink.Add(unit.Span(), span.CategoryKeyword)
		return nil
	})
	reg := classify.NewRegistry().Token("keyword", junk)

	out := run(t, statementTree(), reg, span.FromBounds(0, 10))
	require.Equal(t, []span.Classified{
		{Span: span.FromBounds(0, 3), Category: span.CategoryKeyword},
	}, out)
}

func TestUnitIntersectsButSubSpanDoesNot(t *testing.T) {
	// The token's full extent intersects the requested range through its
	// trailing trivia, but the classified sub-span itself does not.
	tok := syntax.NewToken("keyword", span.FromBounds(0, 3)).
		WithTrailing(syntax.NewTrivia("whitespace", span.FromBounds(3, 8)))
	root := syntax.NewNode("statement", tok)
	reg := classify.NewRegistry().Token("keyword", selfClassifier(span.CategoryKeyword))

	out := run(t, root, reg, span.FromBounds(5, 8))
	assert.Empty(t, out)
}

func TestOptionsForwardedVerbatim(t *testing.T) {
	opts := &classify.Options{Flags: map[string]bool{"strings.embedded_languages": true}}
	var got *classify.Options
	probe := classify.ClassifierFunc(func(_ context.Context, _ syntax.Unit, _ span.Span,
		_ *classify.SemanticContext, o *classify.Options, _ *classify.Sink) error {
		got = o
		return nil
	})
	reg := classify.NewRegistry().Token("keyword", probe)

	var out []span.Classified
	err := classify.Classify(context.Background(),
		&classify.SemanticContext{Root: statementTree()},
		span.NewRangeSet(span.FromBounds(0, 10)), &out, reg, opts)
	require.NoError(t, err)
	assert.Same(t, opts, got)
	assert.True(t, got.Enabled("strings.embedded_languages"))
}

func TestSemanticViewReachesClassifiers(t *testing.T) {
	type view struct{ name string }
	sem := &classify.SemanticContext{Root: statementTree(), View: &view{name: "unit"}}

	probe := classify.ClassifierFunc(func(_ context.Context, unit syntax.Unit, _ span.Span,
		s *classify.SemanticContext, _ *classify.Options, sink *classify.Sink) error {
		if v, ok := s.View.(*view); ok && v.name == "unit" {
			sink.Add(unit.Span(), span.CategoryVariable)
		}
		return nil
	})
	reg := classify.NewRegistry().Token("identifier", probe)

	var out []span.Classified
	err := classify.Classify(context.Background(), sem,
		span.NewRangeSet(span.FromBounds(0, 10)), &out, reg, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestRepeatedCallsAreIndependent(t *testing.T) {
	// Pool-borrowed state must come back clean: the second call sees no
	// dedup residue from the first.
	for i := 0; i < 3; i++ {
		out := run(t, statementTree(), statementRegistry(), span.FromBounds(0, 10))
		require.Len(t, out, 5, "call %d", i)
	}
}
