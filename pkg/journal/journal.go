package journal

import "time"

// PostingType classifies how a posting participates in balancing.
type PostingType int

const (
	// RegularPosting is an ordinary posting.
	RegularPosting PostingType = iota

	// VirtualPosting is an unbalanced virtual posting, written (account).
	VirtualPosting

	// BalancedVirtualPosting is a balanced virtual posting, written [account].
	BalancedVirtualPosting
)

// Transaction is one journal entry: a description, dates, a cleared flag and
// an ordered list of postings.
type Transaction struct {
	// Date is the transaction's primary date.
	Date time.Time

	// EffectiveDate is the secondary (effective) date, or nil if none was
	// recorded.
	EffectiveDate *time.Time

	// Cleared reports whether the transaction is marked cleared.
	Cleared bool

	Description string

	Postings []*Posting
}

// Posting is one leg of a transaction.
type Posting struct {
	// Account is the full account path, e.g. "expenses:travel:rail".
	Account string

	Type PostingType

	Cleared bool

	// EffectiveDate is the posting's own effective date, or nil to fall
	// back to the parent transaction's.
	EffectiveDate *time.Time

	// Transaction points back at the containing transaction. Standalone
	// postings (no parent) are permitted; date- and description-based
	// queries then have nothing to consult.
	Transaction *Transaction
}

// IsReal reports whether the posting is a regular, non-virtual posting.
func (p *Posting) IsReal() bool {
	return p.Type == RegularPosting
}

// PostingEffectiveDate resolves the effective date for a posting: its own if
// set, otherwise the parent transaction's. Returns nil when neither exists.
func (p *Posting) PostingEffectiveDate() *time.Time {
	if p.EffectiveDate != nil {
		return p.EffectiveDate
	}
	if p.Transaction != nil {
		return p.Transaction.EffectiveDate
	}
	return nil
}

// HasRealPostings reports whether any posting of the transaction is real.
func (t *Transaction) HasRealPostings() bool {
	for _, p := range t.Postings {
		if p.IsReal() {
			return true
		}
	}
	return false
}

// AddPosting appends a posting and sets its parent pointer.
func (t *Transaction) AddPosting(p *Posting) {
	p.Transaction = t
	t.Postings = append(t.Postings, p)
}
