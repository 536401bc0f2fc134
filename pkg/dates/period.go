package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval is the recurrence component of a period expression
// ("monthly from 2020" has interval Monthly). Callers that only care about
// the date window ignore it.
type Interval int

const (
	NoInterval Interval = iota
	Daily
	Weekly
	Monthly
	Quarterly
	Yearly
)

// ErrBadPeriod is wrapped by all ParsePeriod failures.
var ErrBadPeriod = errors.New("invalid period expression")

var intervalWords = map[string]Interval{
	"daily":     Daily,
	"weekly":    Weekly,
	"monthly":   Monthly,
	"quarterly": Quarterly,
	"yearly":    Yearly,
}

// ParsePeriod resolves a period expression against a reference date.
//
// Supported forms, after an optional leading interval word
// (daily/weekly/monthly/quarterly/yearly):
//
//	(nothing)            unbounded span
//	2008                 the whole year
//	2008/5               the whole month (separators -, / and . are equivalent)
//	2008/5/17            a single day
//	5/17                 month/day in the reference date's year
//	today, yesterday, tomorrow
//	this|last|next day|week|month|quarter|year
//	from DATE            lower bound only
//	to DATE, until DATE  upper bound only
//	from DATE to DATE    both bounds
//
// "to DATE" excludes DATE's own span: "to 2013" means strictly before
// 2013-01-01. Weeks start on Monday.
func ParsePeriod(ref time.Time, text string) (Interval, Span, error) {
	words := strings.Fields(strings.ToLower(text))

	interval := NoInterval
	if len(words) > 0 {
		if iv, ok := intervalWords[words[0]]; ok {
			interval = iv
			words = words[1:]
		}
	}

	if len(words) == 0 {
		if interval == NoInterval {
			return NoInterval, Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, text)
		}
		return interval, FullSpan(), nil
	}

	span, err := parseBounds(ref, words)
	if err != nil {
		return NoInterval, Span{}, err
	}
	return interval, span, nil
}

// parseBounds handles the from/to structure around smart dates.
func parseBounds(ref time.Time, words []string) (Span, error) {
	switch words[0] {
	case "from":
		rest := words[1:]
		if i := indexOf(rest, "to"); i >= 0 {
			begin, err := smartDate(ref, rest[:i])
			if err != nil {
				return Span{}, err
			}
			end, err := smartDate(ref, rest[i+1:])
			if err != nil {
				return Span{}, err
			}
			return Span{Begin: begin.Begin, End: end.Begin}, nil
		}
		begin, err := smartDate(ref, rest)
		if err != nil {
			return Span{}, err
		}
		return Span{Begin: begin.Begin}, nil

	case "to", "until":
		end, err := smartDate(ref, words[1:])
		if err != nil {
			return Span{}, err
		}
		return Span{End: end.Begin}, nil
	}

	return smartDate(ref, words)
}

// smartDate resolves a smart-date phrase into the span it covers:
// "2008" covers the year, "2008/5/17" a single day, "this week" the week.
func smartDate(ref time.Time, words []string) (Span, error) {
	switch len(words) {
	case 0:
		return Span{}, fmt.Errorf("%w: missing date", ErrBadPeriod)

	case 1:
		switch words[0] {
		case "today":
			return daySpan(startOfDay(ref)), nil
		case "yesterday":
			return daySpan(startOfDay(ref).AddDate(0, 0, -1)), nil
		case "tomorrow":
			return daySpan(startOfDay(ref).AddDate(0, 0, 1)), nil
		}
		return numericDate(ref, words[0])

	case 2:
		unit := words[1]
		shift := 0
		switch words[0] {
		case "this":
		case "last":
			shift = -1
		case "next":
			shift = 1
		default:
			return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, strings.Join(words, " "))
		}
		return relativeSpan(ref, unit, shift)
	}

	return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, strings.Join(words, " "))
}

// numericDate parses Y, Y-M, Y-M-D and M-D forms with -, / or . separators.
func numericDate(ref time.Time, word string) (Span, error) {
	parts := strings.FieldsFunc(word, func(r rune) bool {
		return r == '-' || r == '/' || r == '.'
	})
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 1:
		if len(parts[0]) != 4 {
			return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
		}
		start := Day(nums[0], time.January, 1)
		return SpanBetween(start, start.AddDate(1, 0, 0)), nil

	case 2:
		if len(parts[0]) == 4 {
			// Y-M: the whole month.
			if nums[1] < 1 || nums[1] > 12 {
				return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
			}
			start := Day(nums[0], time.Month(nums[1]), 1)
			return SpanBetween(start, start.AddDate(0, 1, 0)), nil
		}
		// M-D in the reference year.
		if nums[0] < 1 || nums[0] > 12 {
			return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
		}
		return daySpan(Day(ref.Year(), time.Month(nums[0]), nums[1])), nil

	case 3:
		if len(parts[0]) != 4 || nums[1] < 1 || nums[1] > 12 {
			return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
		}
		return daySpan(Day(nums[0], time.Month(nums[1]), nums[2])), nil
	}

	return Span{}, fmt.Errorf("%w: %q", ErrBadPeriod, word)
}

// relativeSpan computes this/last/next day/week/month/quarter/year windows,
// each shifted by whole units from the one containing the reference date.
func relativeSpan(ref time.Time, unit string, shift int) (Span, error) {
	switch unit {
	case "day":
		return daySpan(startOfDay(ref).AddDate(0, 0, shift)), nil
	case "week":
		start := startOfWeek(ref).AddDate(0, 0, 7*shift)
		return SpanBetween(start, start.AddDate(0, 0, 7)), nil
	case "month":
		start := Day(ref.Year(), ref.Month(), 1).AddDate(0, shift, 0)
		return SpanBetween(start, start.AddDate(0, 1, 0)), nil
	case "quarter":
		start := startOfQuarter(ref).AddDate(0, 3*shift, 0)
		return SpanBetween(start, start.AddDate(0, 3, 0)), nil
	case "year":
		start := Day(ref.Year()+shift, time.January, 1)
		return SpanBetween(start, start.AddDate(1, 0, 0)), nil
	}
	return Span{}, fmt.Errorf("%w: unknown unit %q", ErrBadPeriod, unit)
}

func daySpan(day time.Time) Span {
	return SpanBetween(day, day.AddDate(0, 0, 1))
}

func startOfDay(t time.Time) time.Time {
	return Day(t.Year(), t.Month(), t.Day())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

func startOfQuarter(t time.Time) time.Time {
	month := time.Month((int(t.Month())-1)/3*3 + 1)
	return Day(t.Year(), month, 1)
}

func indexOf(words []string, word string) int {
	for i, w := range words {
		if w == word {
			return i
		}
	}
	return -1
}
