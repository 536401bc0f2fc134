package ast

import "fmt"

// Opt is a display option parsed out of a query expression. Options narrow
// what a report shows without affecting which records match.
type Opt interface {
	fmt.Stringer

	// opt marks the closed set of option types.
	opt()
}

// InAcct focuses a report on one account and its subaccounts.
type InAcct struct {
	Account string
}

// InAcctOnly focuses a report on exactly one account, excluding subaccounts.
type InAcctOnly struct {
	Account string
}

func (InAcct) opt()     {}
func (InAcctOnly) opt() {}

func (o InAcct) String() string     { return "inacct:" + o.Account }
func (o InAcctOnly) String() string { return "inacctonly:" + o.Account }

// FocusAccount returns the account a report should focus on, per the rule
// that only the first option of a parse result is consulted. includeSubs
// reports whether subaccounts are included; ok is false when there are no
// options.
func FocusAccount(opts []Opt) (account string, includeSubs bool, ok bool) {
	if len(opts) == 0 {
		return "", false, false
	}
	switch o := opts[0].(type) {
	case InAcct:
		return o.Account, true, true
	case InAcctOnly:
		return o.Account, false, true
	}
	return "", false, false
}
