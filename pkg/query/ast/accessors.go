package ast

import (
	"time"

	"quillbooks/sift/pkg/dates"
)

// NoDepthLimit is returned by DepthLimit when the tree carries no Depth
// leaf. It is large enough to pass any real account path.
const NoDepthLimit = 99999

// IsNull reports whether the tree is one of the empty-query shapes a parse
// of a blank expression can produce.
func IsNull(q Query) bool {
	switch node := q.(type) {
	case Any:
		return true
	case And:
		return len(node) == 0
	case Not:
		if inner, ok := node.Q.(Or); ok {
			return len(inner) == 0
		}
	}
	return false
}

// IsDepth reports whether the node is a bare Depth leaf.
func IsDepth(q Query) bool {
	_, ok := q.(Depth)
	return ok
}

// IsDate reports whether the node is a bare Date leaf (not EDate).
func IsDate(q Query) bool {
	_, ok := q.(Date)
	return ok
}

// IsDesc reports whether the node is a bare Desc leaf.
func IsDesc(q Query) bool {
	_, ok := q.(Desc)
	return ok
}

// IsAcct reports whether the node is a bare Acct leaf.
func IsAcct(q Query) bool {
	_, ok := q.(Acct)
	return ok
}

// IsStartDateOnly reports whether the tree constrains nothing but a lower
// date bound: every branch must bottom out in a Date (or EDate, when
// effective is true) leaf with a defined begin. Or and And both require all
// children to qualify.
func IsStartDateOnly(effective bool, q Query) bool {
	switch node := q.(type) {
	case Or:
		return allAre(node, func(c Query) bool { return IsStartDateOnly(effective, c) })
	case And:
		return allAre(node, func(c Query) bool { return IsStartDateOnly(effective, c) })
	case Date:
		return !effective && node.Span.Begin != nil
	case EDate:
		return effective && node.Span.Begin != nil
	}
	return false
}

// StartDate returns the lower date bound the tree implies, or nil when it
// implies none. Alternatives (Or) take the earliest bound, with an unbounded
// branch making the whole result unbounded; conjunctions (And) take the
// latest defined bound. Not is opaque.
func StartDate(effective bool, q Query) *time.Time {
	switch node := q.(type) {
	case Or:
		var result *time.Time
		for i, c := range node {
			d := StartDate(effective, c)
			if i == 0 {
				result = d
				continue
			}
			result = earlierMaybe(result, d)
		}
		return result
	case And:
		var result *time.Time
		for _, c := range node {
			result = laterMaybe(result, StartDate(effective, c))
		}
		return result
	case Date:
		if !effective {
			return node.Span.Begin
		}
	case EDate:
		if effective {
			return node.Span.Begin
		}
	}
	return nil
}

// DateSpan returns the union of every matching date leaf's span found
// under Or/And, or the full span when there is none. Not subtrees do not
// contribute.
func DateSpan(effective bool, q Query) dates.Span {
	return dates.SpansUnion(collectSpans(effective, q))
}

func collectSpans(effective bool, q Query) []dates.Span {
	var spans []dates.Span
	walkLeaves(q, func(leaf Query) {
		switch node := leaf.(type) {
		case Date:
			if !effective {
				spans = append(spans, node.Span)
			}
		case EDate:
			if effective {
				spans = append(spans, node.Span)
			}
		}
	})
	return spans
}

// DepthLimit returns the smallest Depth leaf value found under Or/And, or
// NoDepthLimit when there is none.
func DepthLimit(q Query) int {
	limit := NoDepthLimit
	walkLeaves(q, func(leaf Query) {
		if d, ok := leaf.(Depth); ok && d.Limit < limit {
			limit = d.Limit
		}
	})
	return limit
}

// EmptyFlag returns the value of the first Empty leaf found under Or/And in
// traversal order, defaulting to false.
func EmptyFlag(q Query) bool {
	found := false
	value := false
	walkLeaves(q, func(leaf Query) {
		if e, ok := leaf.(Empty); ok && !found {
			found = true
			value = e.Value
		}
	})
	return value
}

// walkLeaves visits q and, for Or/And nodes, every descendant in pre-order.
// Not is treated as a leaf: accessors never look inside a negation.
func walkLeaves(q Query, visit func(Query)) {
	switch node := q.(type) {
	case Or:
		for _, c := range node {
			walkLeaves(c, visit)
		}
	case And:
		for _, c := range node {
			walkLeaves(c, visit)
		}
	default:
		visit(q)
	}
}

// earlierMaybe picks the earlier of two optional dates, with absence
// winning: a nil on either side makes the result nil.
func earlierMaybe(a, b *time.Time) *time.Time {
	if a == nil || b == nil {
		return nil
	}
	if a.Before(*b) {
		return a
	}
	return b
}

// laterMaybe picks the later of two optional dates, with presence winning
// over absence.
func laterMaybe(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.After(*b) {
		return a
	}
	return b
}
