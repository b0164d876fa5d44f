package entities

import "time"

// DateFilter narrows time-scoped listings (expenses, salaries, warranties,
// work orders) to a calendar day, month or year.
//
// Precedence: Date wins over Month/Year; Month only applies together with
// Year; Year alone covers the whole calendar year. A zero filter matches
// everything.

type DateFilter struct {
	Date  *time.Time
	Month int
	Year  int
}

func (f DateFilter) IsZero() bool {
	return f.Date == nil && f.Month == 0 && f.Year == 0
}

// Range resolves the filter to a half-open UTC interval [start, end).
// ok is false when the filter is zero (no narrowing).
func (f DateFilter) Range() (start, end time.Time, ok bool) {
	if f.Date != nil {
		d := f.Date.UTC()
		start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 1), true
	}
	if f.Year > 0 && f.Month >= 1 && f.Month <= 12 {
		start = time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	}
	if f.Year > 0 {
		start = time.Date(f.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// Contains reports whether t falls inside the filter range. A zero filter
// contains everything.
func (f DateFilter) Contains(t time.Time) bool {
	start, end, ok := f.Range()
	if !ok {
		return true
	}
	t = t.UTC()
	return !t.Before(start) && t.Before(end)
}
