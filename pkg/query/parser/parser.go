package parser

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"quillbooks/sift/pkg/dates"
	"quillbooks/sift/pkg/query/ast"
)

// defaultPrefix is applied to terms carrying no recognized prefix.
const defaultPrefix = "acct:"

// PeriodFunc resolves a period expression against a reference date into a
// date span. Any recurrence component of the expression is not part of the
// result; the query language only keeps the window.
type PeriodFunc func(ref time.Time, expr string) (dates.Span, error)

// defaultPeriod adapts dates.ParsePeriod, discarding the interval.
func defaultPeriod(ref time.Time, expr string) (dates.Span, error) {
	_, span, err := dates.ParsePeriod(ref, expr)
	return span, err
}

// Parser parses query expressions. The zero value is ready to use; fields
// override the defaults.
type Parser struct {
	// Logger receives debug-level parse traces. Nil disables them.
	Logger *slog.Logger

	// ParsePeriod resolves date:/edate: values. Nil uses dates.ParsePeriod.
	// Injected so tests can substitute fixed spans for calendar arithmetic.
	ParsePeriod PeriodFunc
}

// NewParser returns a Parser with default behavior.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a query expression into a simplified predicate tree plus
// the display options found along the way. The reference date anchors
// relative period expressions ("this month"); it is ignored by everything
// else.
//
// Terms are combined by field: all acct: terms are OR'd, all desc: terms are
// OR'd, and everything else is AND'd with those two groups. Negated
// acct:/desc: terms count as "everything else" — only bare leaves join
// their field group.
//
// Parse never fails; see the package documentation for how malformed terms
// degrade.
func (p *Parser) Parse(ref time.Time, input string) (ast.Query, []ast.Opt) {
	var descTerms, acctTerms, otherTerms []ast.Query
	var opts []ast.Opt

	for _, term := range Lex(input) {
		q, opt := p.parseTerm(ref, term)
		switch {
		case opt != nil:
			opts = append(opts, opt)
		case ast.IsDesc(q):
			descTerms = append(descTerms, q)
		case ast.IsAcct(q):
			acctTerms = append(acctTerms, q)
		default:
			otherTerms = append(otherTerms, q)
		}
	}

	raw := append(ast.And{ast.Or(acctTerms), ast.Or(descTerms)}, otherTerms...)
	q := ast.Simplify(raw)

	if p.Logger != nil {
		p.Logger.Debug("query parsed",
			"input", input,
			"query", q.String(),
			"options", len(opts),
		)
	}
	return q, opts
}

// parseTerm classifies one term into a predicate or an option. Exactly one
// of the results is non-nil. It never fails: every malformed value has a
// defined degradation.
func (p *Parser) parseTerm(ref time.Time, term string) (ast.Query, ast.Opt) {
	switch {
	case term == "":
		return ast.Any{}, nil

	case strings.HasPrefix(term, "inacctonly:"):
		return nil, ast.InAcctOnly{Account: term[len("inacctonly:"):]}

	case strings.HasPrefix(term, "inacct:"):
		return nil, ast.InAcct{Account: term[len("inacct:"):]}

	case strings.HasPrefix(term, notPrefix):
		q, opt := p.parseTerm(ref, term[len(notPrefix):])
		if opt != nil {
			// Display options cannot be negated; the whole term
			// is dropped.
			return ast.Any{}, nil
		}
		return ast.Not{Q: q}, nil

	case strings.HasPrefix(term, "desc:"):
		return ast.Desc{Pattern: term[len("desc:"):]}, nil

	case strings.HasPrefix(term, "acct:"):
		return ast.Acct{Pattern: term[len("acct:"):]}, nil

	case strings.HasPrefix(term, "date:"):
		span, err := p.periodSpan(ref, term[len("date:"):])
		if err != nil {
			return ast.None{}, nil
		}
		return ast.Date{Span: span}, nil

	case strings.HasPrefix(term, "edate:"):
		span, err := p.periodSpan(ref, term[len("edate:"):])
		if err != nil {
			return ast.None{}, nil
		}
		return ast.EDate{Span: span}, nil

	case strings.HasPrefix(term, "status:"):
		return ast.Status{Value: parseStatusValue(term[len("status:"):])}, nil

	case strings.HasPrefix(term, "real:"):
		return ast.Real{Value: parseBoolValue(term[len("real:"):])}, nil

	case strings.HasPrefix(term, "empty:"):
		return ast.Empty{Value: parseBoolValue(term[len("empty:"):])}, nil

	case strings.HasPrefix(term, "depth:"):
		limit, err := strconv.Atoi(term[len("depth:"):])
		if err != nil {
			limit = 0
		}
		return ast.Depth{Limit: limit}, nil
	}

	return p.parseTerm(ref, defaultPrefix+term)
}

func (p *Parser) periodSpan(ref time.Time, expr string) (dates.Span, error) {
	fn := p.ParsePeriod
	if fn == nil {
		fn = defaultPeriod
	}
	span, err := fn(ref, expr)
	if err != nil && p.Logger != nil {
		p.Logger.Debug("period expression rejected", "expr", expr, "error", err)
	}
	return span, err
}

// parseStatusValue accepts the status: spellings of true; * marks a cleared
// transaction in journal files, so it counts.
func parseStatusValue(s string) bool {
	switch s {
	case "1", "t", "true", "*":
		return true
	}
	return false
}

// parseBoolValue accepts the real:/empty: spellings of true.
func parseBoolValue(s string) bool {
	switch s {
	case "1", "t", "true":
		return true
	}
	return false
}
