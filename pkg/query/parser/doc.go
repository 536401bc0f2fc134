// Package parser turns a query expression string into a predicate tree and
// a list of display options.
//
// The expression language is a sequence of space-separated terms. Each term
// is either a field-prefixed pattern (desc:, acct:, date:, edate:, status:,
// real:, empty:, depth:), a display option (inacct:, inacctonly:), or a bare
// pattern, which is shorthand for acct:. A term may be negated with a
// leading not:, and a phrase containing spaces may be wrapped in matching
// single or double quotes, with the prefix glued to the opening quote:
//
//	expenses 'food:dining out' not:desc:"monthly rent" date:2024 status:*
//
// Terms of the same field are alternatives and are OR'd together; terms of
// different fields are AND'd. Parsing never fails: malformed input degrades
// to conservative predicates (an unparseable period becomes a
// never-matching leaf, a malformed depth becomes depth 0, a negated display
// option is dropped).
package parser
