// Package journal defines the read-only record types the query language
// evaluates against: account names, postings, and transactions.
//
// The types carry only the fields the matchers consult (descriptions, dates,
// cleared flags, posting kinds, account paths). Amounts, commodities and
// journal parsing live elsewhere; this package is deliberately a data model,
// not a loader.
package journal
