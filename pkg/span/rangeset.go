package span

import "sort"

// RangeSet is an immutable collection of requested ranges. It answers the two
// queries the classification engine needs while pruning: does a span
// intersect any requested range, and which requested ranges intersect it.
// Ranges may overlap; they are kept sorted by start offset.
type RangeSet struct {
	spans  []Span
	maxEnd int
}

// NewRangeSet copies the given ranges into a sorted set. Zero-length ranges
// are kept; a caret position is a legitimate request.
func NewRangeSet(spans ...Span) *RangeSet {
	rs := &RangeSet{spans: make([]Span, len(spans))}
	copy(rs.spans, spans)
	sort.Slice(rs.spans, func(i, j int) bool {
		if rs.spans[i].Start != rs.spans[j].Start {
			return rs.spans[i].Start < rs.spans[j].Start
		}
		return rs.spans[i].Length < rs.spans[j].Length
	})
	for _, s := range rs.spans {
		if s.End() > rs.maxEnd {
			rs.maxEnd = s.End()
		}
	}
	return rs
}

func (rs *RangeSet) Len() int {
	return len(rs.spans)
}

// Spans returns the sorted ranges. Callers must not mutate the result.
func (rs *RangeSet) Spans() []Span {
	return rs.spans
}

// Intersects reports whether s intersects (boundary touch included) at least
// one requested range.
func (rs *RangeSet) Intersects(s Span) bool {
	if len(rs.spans) == 0 || s.Start > rs.maxEnd {
		return false
	}
	// First candidate whose start is past the end of s bounds the scan.
	hi := sort.Search(len(rs.spans), func(i int) bool {
		return rs.spans[i].Start > s.End()
	})
	for i := 0; i < hi; i++ {
		if rs.spans[i].End() >= s.Start {
			return true
		}
	}
	return false
}

// Overlaps reports whether s shares at least one byte with a requested
// range. Used at emission time, where boundary touches do not count.
func (rs *RangeSet) Overlaps(s Span) bool {
	if len(rs.spans) == 0 || s.Start >= rs.maxEnd {
		return false
	}
	hi := sort.Search(len(rs.spans), func(i int) bool {
		return rs.spans[i].Start >= s.End()
	})
	for i := 0; i < hi; i++ {
		if rs.spans[i].OverlapsWith(s) {
			return true
		}
	}
	return false
}

// AppendOverlapping appends to dst every requested range that intersects the
// span (start, length), in sorted order, and returns the extended slice. The
// dst-reuse form keeps the per-visit query allocation free.
func (rs *RangeSet) AppendOverlapping(dst []Span, start, length int) []Span {
	s := Span{Start: start, Length: length}
	if len(rs.spans) == 0 || s.Start > rs.maxEnd {
		return dst
	}
	hi := sort.Search(len(rs.spans), func(i int) bool {
		return rs.spans[i].Start > s.End()
	})
	for i := 0; i < hi; i++ {
		if rs.spans[i].End() >= s.Start {
			dst = append(dst, rs.spans[i])
		}
	}
	return dst
}

// Overlapping returns the requested ranges intersecting (start, length).
func (rs *RangeSet) Overlapping(start, length int) []Span {
	return rs.AppendOverlapping(nil, start, length)
}
