package ast

import "quillbooks/sift/pkg/dates"

// Simplify rewrites a tree to a fixed point: one simplification pass is
// applied repeatedly until it no longer changes anything. Every rule either
// shrinks the tree or leaves it alone, so the loop terminates.
//
// Not is opaque here: its subtree is returned as given and only re-examined
// by virtue of the outer fixed-point loop never descending into it. Negated
// redundancy therefore survives simplification, which matching handles fine.
func Simplify(q Query) Query {
	for {
		next := simplifyPass(q)
		if Equal(next, q) {
			return q
		}
		q = next
	}
}

// simplifyPass is one rewrite pass. Only And and Or recurse; every other
// node is returned unchanged (except an unbounded Date, which degrades
// to Any).
func simplifyPass(q Query) Query {
	switch node := q.(type) {
	case And:
		return simplifyAnd(node)
	case Or:
		return simplifyOr(node)
	case Date:
		if node.Span.IsUnbounded() {
			return Any{}
		}
		return node
	default:
		return q
	}
}

func simplifyAnd(qs And) Query {
	switch {
	case len(qs) == 0:
		return Any{}
	case len(qs) == 1:
		return simplifyPass(qs[0])
	case allEqual(qs):
		return simplifyPass(qs[0])
	case anyIs(qs, func(q Query) bool { _, ok := q.(None); return ok }):
		return None{}
	case allAre(qs, IsDate):
		return Date{Span: dates.SpansIntersect(termSpans(qs))}
	}

	// Drop Any terms, then keep date terms ahead of the rest.
	var dateTerms, otherTerms And
	for _, q := range qs {
		if _, ok := q.(Any); ok {
			continue
		}
		if IsDate(q) {
			dateTerms = append(dateTerms, simplifyPass(q))
		} else {
			otherTerms = append(otherTerms, simplifyPass(q))
		}
	}
	return append(dateTerms, otherTerms...)
}

func simplifyOr(qs Or) Query {
	switch {
	case len(qs) == 0:
		return Any{}
	case len(qs) == 1:
		// A singleton alternative is simplified all the way down.
		return Simplify(qs[0])
	case allEqual(qs):
		return simplifyPass(qs[0])
	case anyIs(qs, func(q Query) bool { _, ok := q.(Any); return ok }):
		return Any{}
	}

	out := make(Or, 0, len(qs))
	for _, q := range qs {
		if _, ok := q.(None); ok {
			continue
		}
		out = append(out, simplifyPass(q))
	}
	return out
}

func allEqual(qs []Query) bool {
	for _, q := range qs[1:] {
		if !Equal(qs[0], q) {
			return false
		}
	}
	return true
}

func anyIs(qs []Query, pred func(Query) bool) bool {
	for _, q := range qs {
		if pred(q) {
			return true
		}
	}
	return false
}

func allAre(qs []Query, pred func(Query) bool) bool {
	for _, q := range qs {
		if !pred(q) {
			return false
		}
	}
	return true
}

// termSpans extracts the spans of a list of Date leaves.
func termSpans(qs []Query) []dates.Span {
	spans := make([]dates.Span, 0, len(qs))
	for _, q := range qs {
		if d, ok := q.(Date); ok {
			spans = append(spans, d.Span)
		}
	}
	return spans
}
