package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpanContains(t *testing.T) {
	span := SpanBetween(Day(2012, time.January, 1), Day(2013, time.January, 1))

	assert.True(t, span.Contains(Day(2012, time.January, 1)), "begin is inclusive")
	assert.True(t, span.Contains(Day(2012, time.June, 15)))
	assert.False(t, span.Contains(Day(2013, time.January, 1)), "end is exclusive")
	assert.False(t, span.Contains(Day(2011, time.December, 31)))

	assert.True(t, FullSpan().Contains(Day(1900, time.January, 1)))
	assert.True(t, SpanFrom(Day(2012, time.January, 1)).Contains(Day(2999, time.January, 1)))
	assert.False(t, SpanTo(Day(2012, time.January, 1)).Contains(Day(2012, time.January, 1)))
}

func TestSpanIntersect(t *testing.T) {
	a := SpanTo(Day(2013, time.January, 1))
	b := SpanFrom(Day(2012, time.January, 1))

	got := a.Intersect(b)
	assert.True(t, got.Equal(SpanBetween(Day(2012, time.January, 1), Day(2013, time.January, 1))))

	// Unbounded is the identity.
	assert.True(t, FullSpan().Intersect(b).Equal(b))
	assert.True(t, b.Intersect(FullSpan()).Equal(b))

	// Disjoint spans intersect to an empty window.
	c := SpanBetween(Day(2010, time.January, 1), Day(2011, time.January, 1))
	d := SpanBetween(Day(2012, time.January, 1), Day(2013, time.January, 1))
	empty := c.Intersect(d)
	assert.False(t, empty.Contains(Day(2012, time.June, 1)))
	assert.False(t, empty.Contains(Day(2010, time.June, 1)))
}

func TestSpanUnion(t *testing.T) {
	a := SpanBetween(Day(2012, time.January, 1), Day(2013, time.January, 1))
	b := SpanBetween(Day(2014, time.January, 1), Day(2015, time.January, 1))

	got := a.Union(b)
	assert.True(t, got.Equal(SpanBetween(Day(2012, time.January, 1), Day(2015, time.January, 1))))

	// An unbounded side wins.
	assert.True(t, a.Union(SpanFrom(Day(2014, time.January, 1))).Equal(SpanFrom(Day(2012, time.January, 1))))
	assert.True(t, a.Union(FullSpan()).Equal(FullSpan()))
}

func TestSpansFolds(t *testing.T) {
	assert.True(t, SpansIntersect(nil).IsUnbounded())
	assert.True(t, SpansUnion(nil).IsUnbounded())

	spans := []Span{
		SpanBetween(Day(2012, time.March, 1), Day(2012, time.September, 1)),
		SpanBetween(Day(2012, time.June, 1), Day(2013, time.January, 1)),
	}
	assert.True(t, SpansIntersect(spans).Equal(SpanBetween(Day(2012, time.June, 1), Day(2012, time.September, 1))))
	assert.True(t, SpansUnion(spans).Equal(SpanBetween(Day(2012, time.March, 1), Day(2013, time.January, 1))))
}

func TestSpanString(t *testing.T) {
	assert.Equal(t, "[..)", FullSpan().String())
	assert.Equal(t, "[2012-01-01..)", SpanFrom(Day(2012, time.January, 1)).String())
	assert.Equal(t, "[..2013-01-01)", SpanTo(Day(2013, time.January, 1)).String())
	assert.Equal(t,
		"[2012-01-01..2013-01-01)",
		SpanBetween(Day(2012, time.January, 1), Day(2013, time.January, 1)).String())
}
