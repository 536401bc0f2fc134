// Package dates provides calendar-day spans and period-expression parsing
// for the query language.
//
// A Span is a half-open interval of calendar days with independently optional
// bounds; a nil bound means unbounded on that side. Spans support the algebra
// the query layer needs (intersection, union, containment) and nothing more.
//
// ParsePeriod resolves a textual period expression ("2008", "from 2012/5/17",
// "last month", "monthly from 2020") against a reference date into an
// Interval plus a Span. The query layer only keeps the Span; the Interval is
// reported so callers that do care about recurrence can use it.
//
// All days are represented as time.Time values at midnight UTC. The package
// never inspects the clock; the reference date is always supplied by the
// caller.
package dates
