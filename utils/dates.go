package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// MaxRangeDays bounds a requested range; reports emit a row per day.
const MaxRangeDays = 5 * 366

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Contains reports whether t falls within the range, both days inclusive.
func (r DateRange) Contains(t time.Time) bool {
	t = t.In(r.From.Location())
	return !t.Before(StartOfDay(r.From)) && !t.After(EndOfDay(r.To))
}

// LastDays returns the range covering the n days ending today.
func LastDays(now time.Time, n int) DateRange {
	return DateRange{From: StartOfDay(now.AddDate(0, 0, -(n - 1))), To: EndOfDay(now)}
}

// ParseDateRange parses YYYY-MM-DD bounds. Missing bounds fall back to the
// given default range.
func ParseDateRange(from, to string, def DateRange) (DateRange, error) {
	r := def
	if from != "" {
		t, err := time.ParseInLocation(DateLayout, from, def.From.Location())
		if err != nil {
			return r, fmt.Errorf("invalid from date %q", from)
		}
		r.From = t
	}
	if to != "" {
		t, err := time.ParseInLocation(DateLayout, to, def.From.Location())
		if err != nil {
			return r, fmt.Errorf("invalid to date %q", to)
		}
		r.To = t
	}
	if StartOfDay(r.To).Before(StartOfDay(r.From)) {
		return r, fmt.Errorf("to date is before from date")
	}
	if StartOfDay(r.To).After(StartOfDay(r.From).AddDate(0, 0, MaxRangeDays-1)) {
		return r, fmt.Errorf("date range is longer than %d days", MaxRangeDays)
	}
	return r, nil
}

// SameDay compares calendar days in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
