// Package timetracking aggregates raw calendar intervals into billable
// timesheets and progress figures.
package timetracking

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fdelacroix/billable/internal/calendar"
	"github.com/fdelacroix/billable/internal/models"
)

// ErrVolumeUnset guards the progress division: a project whose
// contract has no volume has no defined progress. Reported instead of
// propagating an arithmetic fault or a silently wrong zero.
var ErrVolumeUnset = errors.New("contract volume is not set")

// wholeHours converts a duration to an hour count as days×24 plus the
// whole-hours component. Sub-hour remainders are dropped; that loss is
// legacy behavior kept on purpose and pinned by tests.
func wholeHours(d time.Duration) int {
	return int(d / time.Hour)
}

// GenerateTimesheet turns the calendar's interval table into a
// timesheet for one client/tag and period.
//
// Rows are filtered by period and by exact, case-sensitive title
// match, grouped by calendar date, and summed. The comment is attached
// uniformly to every resulting row. An empty filtered result yields an
// empty timesheet, not an error.
func GenerateTimesheet(src calendar.Source, period Period, client, comment string) (*models.Timesheet, error) {
	rows, err := src.IntervalTable()
	if err != nil {
		return nil, fmt.Errorf("generate timesheet: %w", err)
	}

	byDate := make(map[string]time.Duration)
	for _, row := range rows {
		if !period.Contains(row.Begin) || row.Title != client {
			continue
		}
		key := row.Begin.Format("2006-01-02")
		byDate[key] += row.Duration()
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	ts, err := models.NewTimesheet(
		fmt.Sprintf("%s %s", client, period.Label),
		0, // project linkage happens at save time
		period.Start, period.End,
	)
	if err != nil {
		return nil, err
	}
	for _, d := range dates {
		day, _ := time.Parse("2006-01-02", d)
		hours := wholeHours(byDate[d])
		ts.Items = append(ts.Items, models.TimeTrackingItem{
			Begin:       day,
			End:         day.Add(time.Duration(hours) * time.Hour),
			Title:       client,
			Tag:         client,
			Description: comment,
		})
	}
	return ts, nil
}

// Row is one date line of a timesheet as exported or rendered.
type Row struct {
	Date    time.Time
	Hours   int
	Comment string
}

// Rows flattens a timesheet's items into date-ascending rows.
func Rows(ts *models.Timesheet) []Row {
	rows := make([]Row, 0, len(ts.Items))
	for _, item := range ts.Items {
		rows = append(rows, Row{
			Date:    item.Begin,
			Hours:   wholeHours(item.Duration()),
			Comment: item.Description,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// TotalHours sums the hours column. Every total shown next to that
// column comes from here, so per-row truncation and the total can
// never disagree.
func TotalHours(rows []Row) int {
	total := 0
	for _, row := range rows {
		total += row.Hours
	}
	return total
}

// TotalByTag sums tracked time per tag over the whole interval table.
func TotalByTag(rows []calendar.Interval) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, row := range rows {
		totals[row.Tag] += row.Duration()
	}
	return totals
}

// Progress reports how much of the contracted volume a project has
// consumed, as a fraction. A tag with zero matching rows is zero
// progress, not an error; an unset volume is ErrVolumeUnset.
func Progress(project models.Project, rows []calendar.Interval) (float64, error) {
	if project.Contract.Volume == nil || *project.Contract.Volume == 0 {
		return 0, fmt.Errorf("progress for %s: %w", project.Tag, ErrVolumeUnset)
	}
	var tracked time.Duration
	for _, row := range rows {
		if row.Tag == project.Tag {
			tracked += row.Duration()
		}
	}
	budget := time.Duration(*project.Contract.Volume) * time.Hour
	return float64(tracked) / float64(budget), nil
}
