// Package query is the facade over the query language: it ties together the
// expression parser (pkg/query/parser), the predicate tree and its algebra
// (pkg/query/ast), and the evaluators (pkg/query/match).
//
// Most callers only need Parse and the match package:
//
//	q, opts := query.Parse(today, `expenses not:desc:refund date:"this year"`)
//	for _, t := range txns {
//	    if match.Transaction(q, t) {
//	        // include t in the report
//	    }
//	}
//	if account, withSubs, ok := ast.FocusAccount(opts); ok {
//	    // narrow the report display
//	    _ = account
//	    _ = withSubs
//	}
package query

import (
	"time"

	"quillbooks/sift/pkg/query/ast"
	"quillbooks/sift/pkg/query/parser"
)

// Parse converts a query expression into a simplified predicate tree and
// the display options it contained, resolving relative period expressions
// against ref. It never fails; malformed input degrades as described in the
// parser package.
func Parse(ref time.Time, input string) (ast.Query, []ast.Opt) {
	return parser.NewParser().Parse(ref, input)
}

// Simplify rewrites a hand-built tree to the same canonical fixed point
// Parse produces.
func Simplify(q ast.Query) ast.Query {
	return ast.Simplify(q)
}
