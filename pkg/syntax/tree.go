package syntax

import (
	"github.com/maryamariyan/classify/pkg/span"
)

// Token is a leaf unit with optional attached trivia. Its full span covers
// the leading trivia, the token text, and the trailing trivia.
type Token struct {
	kind     Kind
	span     span.Span
	leading  []Trivia
	trailing []Trivia
}

// NewToken builds a token covering sp with no trivia.
func NewToken(kind Kind, sp span.Span) *Token {
	return &Token{kind: kind, span: sp}
}

// WithLeading attaches leading trivia, returning the token for chaining.
func (t *Token) WithLeading(trivia ...Trivia) *Token {
	t.leading = append(t.leading, trivia...)
	return t
}

// WithTrailing attaches trailing trivia, returning the token for chaining.
func (t *Token) WithTrailing(trivia ...Trivia) *Token {
	t.trailing = append(t.trailing, trivia...)
	return t
}

func (t *Token) Kind() Kind {
	return t.kind
}

func (t *Token) Span() span.Span {
	return t.span
}

func (t *Token) FullSpan() span.Span {
	start := t.span.Start
	end := t.span.End()
	if len(t.leading) > 0 {
		start = t.leading[0].Span().Start
	}
	if len(t.trailing) > 0 {
		end = t.trailing[len(t.trailing)-1].Span().End()
	}
	return span.FromBounds(start, end)
}

func (t *Token) Children() []Unit {
	return nil
}

func (t *Token) LeadingTrivia() []Trivia {
	return t.leading
}

func (t *Token) TrailingTrivia() []Trivia {
	return t.trailing
}

// Node is an interior unit. Its spans are derived from its children, so a
// node is built after its children exist.
type Node struct {
	kind     Kind
	children []Unit
	span     span.Span
	fullSpan span.Span
}

// NewNode builds an interior node over children in document order.
func NewNode(kind Kind, children ...Unit) *Node {
	n := &Node{kind: kind, children: children}
	if len(children) == 0 {
		return n
	}
	n.span = span.FromBounds(
		children[0].Span().Start,
		children[len(children)-1].Span().End(),
	)
	n.fullSpan = span.FromBounds(
		children[0].FullSpan().Start,
		children[len(children)-1].FullSpan().End(),
	)
	return n
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Span() span.Span {
	return n.span
}

func (n *Node) FullSpan() span.Span {
	return n.fullSpan
}

func (n *Node) Children() []Unit {
	return n.children
}

// Tokens returns the tokens under u in document order. Mostly a test and
// debugging helper.
func Tokens(u Unit) []*Token {
	var out []*Token
	var walk func(Unit)
	walk = func(cur Unit) {
		if tok, ok := cur.(*Token); ok {
			out = append(out, tok)
			return
		}
		for _, child := range cur.Children() {
			walk(child)
		}
	}
	walk(u)
	return out
}
