// Package match evaluates predicate trees against journal records.
//
// The same tree is interpreted three ways: against a bare account name,
// against a posting, and against a whole transaction. Leaves that have no
// meaning for an entity match vacuously (a Status leaf cannot reject a bare
// account name), so a query written for transactions still narrows an
// account report sensibly.
//
// Matching is total: no input, however odd, produces an error. It is also
// pure — a Matcher holds no state beyond its injected regex function — so
// one Matcher may be used from any number of goroutines.
package match
