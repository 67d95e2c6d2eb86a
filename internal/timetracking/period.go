package timetracking

import (
	"fmt"
	"time"
)

// Period is a half-open-by-date slice of the time-tracking table:
// a whole month ("2024-03") or a single day ("2024-03-01").
type Period struct {
	Label string
	Start time.Time
	End   time.Time // inclusive, date granularity
}

// ParsePeriod accepts the two forms the interface produces: YYYY-MM
// and YYYY-MM-DD.
func ParsePeriod(s string) (Period, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return Period{
			Label: s,
			Start: t,
			End:   t.AddDate(0, 1, -1),
		}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return Period{Label: s, Start: t, End: t}, nil
	}
	return Period{}, fmt.Errorf("period %q: want YYYY-MM or YYYY-MM-DD", s)
}

// Contains reports whether t's calendar date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
