package match

import (
	"regexp"
	"time"

	"quillbooks/sift/pkg/journal"
	"quillbooks/sift/pkg/query/ast"
)

// RegexFunc reports whether a pattern matches a text. Implementations must
// be pure; the default is MatchCI.
type RegexFunc func(pattern, text string) bool

// MatchCI is the default RegexFunc: case-insensitive, unanchored. An
// invalid pattern matches nothing — matching is total, never an error.
func MatchCI(pattern, text string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// Matcher evaluates predicate trees. The zero value uses MatchCI; tests can
// inject a simpler Regex (substring containment, say) to keep fixtures
// readable.
type Matcher struct {
	Regex RegexFunc
}

func (m Matcher) regex(pattern, text string) bool {
	if m.Regex != nil {
		return m.Regex(pattern, text)
	}
	return MatchCI(pattern, text)
}

// Account reports whether the tree accepts a bare account name. Only Acct
// and Depth leaves can reject one; every other leaf is not defined on an
// account name and matches vacuously.
func (m Matcher) Account(q ast.Query, account string) bool {
	switch node := q.(type) {
	case ast.None:
		return false
	case ast.Not:
		return !m.Account(node.Q, account)
	case ast.Or:
		for _, c := range node {
			if m.Account(c, account) {
				return true
			}
		}
		return false
	case ast.And:
		for _, c := range node {
			if !m.Account(c, account) {
				return false
			}
		}
		return true
	case ast.Acct:
		return m.regex(node.Pattern, account)
	case ast.Depth:
		return journal.AccountDepth(account) <= node.Limit
	}
	return true
}

// Posting reports whether the tree accepts a posting. Description and date
// leaves consult the parent transaction; a posting without one fails them
// (except Desc, which matches against the empty description).
func (m Matcher) Posting(q ast.Query, p *journal.Posting) bool {
	switch node := q.(type) {
	case ast.None:
		return false
	case ast.Not:
		return !m.Posting(node.Q, p)
	case ast.Or:
		for _, c := range node {
			if m.Posting(c, p) {
				return true
			}
		}
		return false
	case ast.And:
		for _, c := range node {
			if !m.Posting(c, p) {
				return false
			}
		}
		return true
	case ast.Desc:
		desc := ""
		if p.Transaction != nil {
			desc = p.Transaction.Description
		}
		return m.regex(node.Pattern, desc)
	case ast.Acct:
		return m.regex(node.Pattern, p.Account)
	case ast.Date:
		if p.Transaction == nil {
			return false
		}
		return node.Span.Contains(p.Transaction.Date)
	case ast.EDate:
		d := p.PostingEffectiveDate()
		if d == nil {
			return false
		}
		return node.Span.Contains(*d)
	case ast.Status:
		return p.Cleared == node.Value
	case ast.Real:
		return p.IsReal() == node.Value
	case ast.Depth:
		return m.Account(node, p.Account)
	case ast.Empty:
		// Zero-amount filtering has never been wired into matching;
		// the flag only reaches reports via ast.EmptyFlag.
		return true
	}
	return true
}

// Transaction reports whether the tree accepts a transaction. Account and
// depth leaves accept the transaction when any of its postings qualifies.
func (m Matcher) Transaction(q ast.Query, t *journal.Transaction) bool {
	switch node := q.(type) {
	case ast.None:
		return false
	case ast.Not:
		return !m.Transaction(node.Q, t)
	case ast.Or:
		for _, c := range node {
			if m.Transaction(c, t) {
				return true
			}
		}
		return false
	case ast.And:
		for _, c := range node {
			if !m.Transaction(c, t) {
				return false
			}
		}
		return true
	case ast.Desc:
		return m.regex(node.Pattern, t.Description)
	case ast.Acct:
		return m.anyPosting(node, t)
	case ast.Date:
		return node.Span.Contains(t.Date)
	case ast.EDate:
		return node.Span.Contains(transactionEffectiveDate(t))
	case ast.Status:
		return t.Cleared == node.Value
	case ast.Real:
		return t.HasRealPostings() == node.Value
	case ast.Depth:
		return m.anyPosting(node, t)
	case ast.Empty:
		return true
	}
	return true
}

func (m Matcher) anyPosting(q ast.Query, t *journal.Transaction) bool {
	for _, p := range t.Postings {
		if m.Posting(q, p) {
			return true
		}
	}
	return false
}

// transactionEffectiveDate falls back to the primary date, keeping EDate
// matching total.
func transactionEffectiveDate(t *journal.Transaction) time.Time {
	if t.EffectiveDate != nil {
		return *t.EffectiveDate
	}
	return t.Date
}

// Account evaluates the tree against an account name with the default
// matcher.
func Account(q ast.Query, account string) bool {
	return Matcher{}.Account(q, account)
}

// Posting evaluates the tree against a posting with the default matcher.
func Posting(q ast.Query, p *journal.Posting) bool {
	return Matcher{}.Posting(q, p)
}

// Transaction evaluates the tree against a transaction with the default
// matcher.
func Transaction(q ast.Query, t *journal.Transaction) bool {
	return Matcher{}.Transaction(q, t)
}
