// Package syntax defines the tree shape the classification engine walks: a
// unit is either an interior node or a token, tokens carry leading and
// trailing trivia, and a trivia item may itself hold a nested parsed root
// (structured trivia, e.g. a doc comment with its own syntax).
//
// The engine only depends on the interfaces here; the concrete Node, Token
// and Trivia types are the in-memory implementation used by the bundled
// parsers and the tests.
package syntax

import (
	"github.com/maryamariyan/classify/pkg/span"
)

// Kind discriminates syntax units for classifier lookup. Kinds are plain
// strings so that parser adapters can pass their grammar's node type names
// through unchanged.
type Kind string

// Unit is a node or token in a syntax tree.
type Unit interface {
	// Kind returns the discriminating tag used for classifier lookup.
	Kind() Kind

	// Span is the extent of the unit's significant text.
	Span() span.Span

	// FullSpan is Span widened to include any attached leading and
	// trailing trivia. Pruning tests run against the full extent so that
	// a requested range landing inside a comment still reaches the token
	// the comment is attached to.
	FullSpan() span.Span

	// Children returns the structural children in document order.
	// Tokens have none.
	Children() []Unit
}

// TokenUnit is a Unit that is a token: a leaf carrying trivia lists.
type TokenUnit interface {
	Unit

	LeadingTrivia() []Trivia
	TrailingTrivia() []Trivia
}

// Trivia is a run of non-significant text attached to a token. If the trivia
// parsed into its own sub-tree (structured trivia), Structure returns the
// nested root; otherwise nil.
type Trivia struct {
	kind      Kind
	span      span.Span
	structure Unit
}

// NewTrivia builds a plain trivia item.
func NewTrivia(kind Kind, sp span.Span) Trivia {
	return Trivia{kind: kind, span: sp}
}

// NewStructuredTrivia builds a trivia item carrying a nested parsed root.
func NewStructuredTrivia(kind Kind, sp span.Span, structure Unit) Trivia {
	return Trivia{kind: kind, span: sp, structure: structure}
}

func (t Trivia) Kind() Kind {
	return t.kind
}

func (t Trivia) Span() span.Span {
	return t.span
}

// Structure returns the nested parsed root, or nil for plain trivia.
func (t Trivia) Structure() Unit {
	return t.structure
}
