// Package ast defines the predicate tree produced by parsing a query
// expression, along with its algebraic simplifier and the read-only
// accessors report code uses to extract scalar parameters from a tree.
//
// # Core Types
//
// Query: closed union of predicate nodes. Leaves test one field of a record
// (Desc, Acct, Date, EDate, Status, Real, Empty, Depth) or match
// unconditionally (Any, None); Not, Or and And combine subtrees.
//
// Opt: display option parsed from a query (InAcct, InAcctOnly). Options never
// affect matching; only the first option of a parse result is consulted, via
// FocusAccount.
//
// All values are immutable: Simplify builds a new tree, and nothing in this
// package mutates a Query after construction, so trees may be shared freely
// across goroutines.
//
// # Basic Usage
//
//	q := ast.Simplify(ast.And{
//	    ast.Or{ast.Acct{Pattern: "expenses"}, ast.Acct{Pattern: "income"}},
//	    ast.Status{Value: true},
//	})
//	fmt.Println(q)                   // and(or(acct:"expenses", acct:"income"), status:true)
//	fmt.Println(ast.DepthLimit(q))   // 99999 (no depth leaf present)
package ast
