package treesitter

import (
	"github.com/maryamariyan/classify/pkg/span"
	"github.com/maryamariyan/classify/pkg/syntax"
	sitter "github.com/smacker/go-tree-sitter"
)

// KindEOF is the synthetic zero-length token appended to every file so that
// trailing comments always have a token to attach to.
const KindEOF syntax.Kind = "end_of_file"

// KindComment is the kind of the single token inside a comment's structured
// trivia tree.
const KindComment syntax.Kind = "comment"

var commentKinds = map[string]bool{
	"comment":       true,
	"line_comment":  true,
	"block_comment": true,
}

// converter walks a tree-sitter tree in document order, turning leaves into
// tokens and interior nodes into nodes. Comments are lifted out of the
// structural tree into trivia: each one is held pending and attached as
// leading trivia of the next token produced.
type converter struct {
	pending []syntax.Trivia
}

func convertFile(root *sitter.Node, size int) syntax.Unit {
	c := &converter{}

	var children []syntax.Unit
	for i := 0; i < int(root.ChildCount()); i++ {
		if u := c.convert(root.Child(i)); u != nil {
			children = append(children, u)
		}
	}

	eof := syntax.NewToken(KindEOF, span.New(size, 0))
	if len(c.pending) > 0 {
		eof.WithLeading(c.pending...)
		c.pending = nil
	}
	children = append(children, eof)

	return syntax.NewNode(syntax.Kind(root.Type()), children...)
}

func (c *converter) convert(n *sitter.Node) syntax.Unit {
	sp := span.FromBounds(int(n.StartByte()), int(n.EndByte()))

	if commentKinds[n.Type()] {
		// The comment's content gets the same classification treatment
		// as primary syntax through a single-token nested tree.
		structure := syntax.NewToken(KindComment, sp)
		c.pending = append(c.pending, syntax.NewStructuredTrivia(KindComment, sp, structure))
		return nil
	}

	if n.ChildCount() == 0 {
		tok := syntax.NewToken(syntax.Kind(n.Type()), sp)
		if len(c.pending) > 0 {
			tok.WithLeading(c.pending...)
			c.pending = nil
		}
		return tok
	}

	var children []syntax.Unit
	for i := 0; i < int(n.ChildCount()); i++ {
		if u := c.convert(n.Child(i)); u != nil {
			children = append(children, u)
		}
	}
	if len(children) == 0 {
		// Interior node holding only comments; the trivia already moved
		// to pending.
		return nil
	}
	return syntax.NewNode(syntax.Kind(n.Type()), children...)
}
