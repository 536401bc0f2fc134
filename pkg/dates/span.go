package dates

import (
	"strings"
	"time"
)

// Span is a half-open interval of calendar days [Begin, End).
// A nil bound means the span is unbounded on that side; the zero Span is
// unbounded on both sides and contains every day.
type Span struct {
	// Begin is the inclusive lower bound, or nil for unbounded.
	Begin *time.Time

	// End is the exclusive upper bound, or nil for unbounded.
	End *time.Time
}

// Day returns the given calendar day as midnight UTC.
// All days handled by this package are normalized through it.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FullSpan returns the span that is unbounded on both sides.
func FullSpan() Span {
	return Span{}
}

// SpanFrom returns the span [begin, unbounded).
func SpanFrom(begin time.Time) Span {
	return Span{Begin: &begin}
}

// SpanTo returns the span (unbounded, end).
func SpanTo(end time.Time) Span {
	return Span{End: &end}
}

// SpanBetween returns the span [begin, end).
func SpanBetween(begin, end time.Time) Span {
	return Span{Begin: &begin, End: &end}
}

// IsUnbounded reports whether the span has no bound on either side.
func (s Span) IsUnbounded() bool {
	return s.Begin == nil && s.End == nil
}

// Contains reports whether the given day falls inside the span.
func (s Span) Contains(day time.Time) bool {
	if s.Begin != nil && day.Before(*s.Begin) {
		return false
	}
	if s.End != nil && !day.Before(*s.End) {
		return false
	}
	return true
}

// Intersect returns the overlap of two spans: the later begin and the
// earlier end. The result may be empty (End before Begin); Contains is
// simply false everywhere for such a span.
func (s Span) Intersect(other Span) Span {
	return Span{
		Begin: laterBound(s.Begin, other.Begin),
		End:   earlierBound(s.End, other.End),
	}
}

// Union returns the smallest span covering both spans: the earlier begin
// and the later end.
func (s Span) Union(other Span) Span {
	return Span{
		Begin: earlierOrNil(s.Begin, other.Begin),
		End:   laterOrNil(s.End, other.End),
	}
}

// Equal reports whether two spans have the same bounds.
func (s Span) Equal(other Span) bool {
	return boundsEqual(s.Begin, other.Begin) && boundsEqual(s.End, other.End)
}

// String renders the span as "[2012-01-01..2013-01-01)", with ".." standing
// in for an absent bound.
func (s Span) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if s.Begin != nil {
		sb.WriteString(s.Begin.Format("2006-01-02"))
	}
	sb.WriteString("..")
	if s.End != nil {
		sb.WriteString(s.End.Format("2006-01-02"))
	}
	sb.WriteByte(')')
	return sb.String()
}

// SpansIntersect folds a list of spans with Intersect.
// An empty list yields the full span.
func SpansIntersect(spans []Span) Span {
	out := FullSpan()
	for _, s := range spans {
		out = out.Intersect(s)
	}
	return out
}

// SpansUnion folds a list of spans with Union.
// An empty list yields the full span.
func SpansUnion(spans []Span) Span {
	if len(spans) == 0 {
		return FullSpan()
	}
	out := spans[0]
	for _, s := range spans[1:] {
		out = out.Union(s)
	}
	return out
}

func boundsEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// laterBound treats nil as unbounded (loses to any defined bound).
func laterBound(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.After(*b) {
		return a
	}
	return b
}

// earlierBound treats nil as unbounded (loses to any defined bound).
func earlierBound(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Before(*b) {
		return a
	}
	return b
}

// earlierOrNil treats nil as unbounded (wins over any defined bound).
func earlierOrNil(a, b *time.Time) *time.Time {
	if a == nil || b == nil {
		return nil
	}
	if a.Before(*b) {
		return a
	}
	return b
}

// laterOrNil treats nil as unbounded (wins over any defined bound).
func laterOrNil(a, b *time.Time) *time.Time {
	if a == nil || b == nil {
		return nil
	}
	if a.After(*b) {
		return a
	}
	return b
}
