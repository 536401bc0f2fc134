package ast

import (
	"fmt"
	"strconv"
	"strings"

	"quillbooks/sift/pkg/dates"
)

// Query is a node in the predicate tree. It is a closed union: the concrete
// types in this file are the only implementations, and evaluation code
// switches exhaustively over them. Adding a variant means revisiting every
// such switch.
type Query interface {
	fmt.Stringer

	// query marks the closed set of node types.
	query()
}

// Any matches every record.
type Any struct{}

// None matches no record.
type None struct{}

// Not negates its subtree.
type Not struct {
	Q Query
}

// Or matches when at least one child matches.
type Or []Query

// And matches when every child matches.
type And []Query

// Desc matches a transaction description against a case-insensitive
// regular expression.
type Desc struct {
	Pattern string
}

// Acct matches an account name against a case-insensitive regular expression.
type Acct struct {
	Pattern string
}

// Date matches a record whose primary date falls inside the span.
type Date struct {
	Span dates.Span
}

// EDate matches a record whose effective (secondary) date falls inside
// the span.
type EDate struct {
	Span dates.Span
}

// Status matches a record whose cleared flag equals Value.
type Status struct {
	Value bool
}

// Real matches a record whose non-virtual-ness equals Value.
type Real struct {
	Value bool
}

// Empty carries the "show empty" flag. It is parsed, carried in the tree and
// read back by EmptyFlag, but the matchers treat it as always true; the
// zero-amount filtering it suggests has never been hooked up.
type Empty struct {
	Value bool
}

// Depth matches an account whose path has at most Limit segments.
type Depth struct {
	Limit int
}

func (Any) query()    {}
func (None) query()   {}
func (Not) query()    {}
func (Or) query()     {}
func (And) query()    {}
func (Desc) query()   {}
func (Acct) query()   {}
func (Date) query()   {}
func (EDate) query()  {}
func (Status) query() {}
func (Real) query()   {}
func (Empty) query()  {}
func (Depth) query()  {}

func (Any) String() string  { return "any" }
func (None) String() string { return "none" }

func (n Not) String() string { return "not(" + n.Q.String() + ")" }

func (o Or) String() string  { return renderGroup("or", o) }
func (a And) String() string { return renderGroup("and", a) }

func (d Desc) String() string { return "desc:" + strconv.Quote(d.Pattern) }
func (a Acct) String() string { return "acct:" + strconv.Quote(a.Pattern) }

func (d Date) String() string  { return "date:" + d.Span.String() }
func (e EDate) String() string { return "edate:" + e.Span.String() }

func (s Status) String() string { return "status:" + strconv.FormatBool(s.Value) }
func (r Real) String() string   { return "real:" + strconv.FormatBool(r.Value) }
func (e Empty) String() string  { return "empty:" + strconv.FormatBool(e.Value) }

func (d Depth) String() string { return "depth:" + strconv.Itoa(d.Limit) }

func renderGroup(name string, qs []Query) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = q.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// Equal reports structural equality of two trees: same shape, same leaf
// values, same child order.
func Equal(a, b Query) bool {
	switch x := a.(type) {
	case Any:
		_, ok := b.(Any)
		return ok
	case None:
		_, ok := b.(None)
		return ok
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.Q, y.Q)
	case Or:
		y, ok := b.(Or)
		return ok && equalSlices(x, y)
	case And:
		y, ok := b.(And)
		return ok && equalSlices(x, y)
	case Desc:
		y, ok := b.(Desc)
		return ok && x == y
	case Acct:
		y, ok := b.(Acct)
		return ok && x == y
	case Date:
		y, ok := b.(Date)
		return ok && x.Span.Equal(y.Span)
	case EDate:
		y, ok := b.(EDate)
		return ok && x.Span.Equal(y.Span)
	case Status:
		y, ok := b.(Status)
		return ok && x == y
	case Real:
		y, ok := b.(Real)
		return ok && x == y
	case Empty:
		y, ok := b.(Empty)
		return ok && x == y
	case Depth:
		y, ok := b.(Depth)
		return ok && x == y
	}
	return false
}

func equalSlices(a, b []Query) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
