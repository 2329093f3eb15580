// Package span provides byte-offset intervals over source text and the
// classified-span value emitted by the classification engine.
package span

import (
	"fmt"
	"sort"
)

// Span is a half-open byte interval [Start, Start+Length) into source text.
type Span struct {
	// Start is the byte offset of the first byte in the span
	Start int
	// Length is the number of bytes covered
	Length int
}

func New(start, length int) Span {
	return Span{Start: start, Length: length}
}

// FromBounds builds a span from inclusive start and exclusive end offsets.
func FromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// IntersectsWith reports whether the two spans share at least one offset,
// counting a shared boundary point as an intersection. This is the test used
// when deciding whether a syntax unit is worth visiting at all.
func (s Span) IntersectsWith(other Span) bool {
	return other.Start <= s.End() && other.End() >= s.Start
}

// OverlapsWith reports whether the two spans share at least one byte. Unlike
// IntersectsWith, spans that merely touch at a boundary do not overlap.
func (s Span) OverlapsWith(other Span) bool {
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End()
	if other.End() < end {
		end = other.End()
	}
	return start < end
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End())
}

// Category is the semantic label attached to a classified span, e.g.
// "keyword" or "comment". The engine treats categories as opaque; the set of
// constants below covers what the bundled classifiers emit.
type Category string

const (
	CategoryKeyword     Category = "keyword"
	CategoryIdentifier  Category = "identifier"
	CategoryComment     Category = "comment"
	CategoryString      Category = "string"
	CategoryNumber      Category = "number"
	CategoryOperator    Category = "operator"
	CategoryPunctuation Category = "punctuation"
	CategoryType        Category = "type"
	CategoryFunction    Category = "function"
	CategoryVariable    Category = "variable"
	CategoryText        Category = "text"
)

// Classified is one classification result: a span of source text and the
// category it should be rendered as. Equality is structural on both fields.
type Classified struct {
	Span     Span
	Category Category
}

func (c Classified) String() string {
	return fmt.Sprintf("%s%s", c.Category, c.Span)
}

// SortClassified orders spans by start offset, then length, then category.
// The engine itself makes no ordering guarantee; callers that need document
// order sort explicitly.
func SortClassified(spans []Classified) {
	sort.Slice(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.Length != b.Span.Length {
			return a.Span.Length < b.Span.Length
		}
		return a.Category < b.Category
	})
}
