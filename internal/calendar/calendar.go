// Package calendar normalizes heterogeneous time-tracking sources into
// a uniform table of time intervals.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotImplemented marks a declared-but-unsupported source variant,
// distinguishable from a runtime failure so callers can present
// "coming soon" instead of "something broke".
var ErrNotImplemented = errors.New("not implemented")

// SourceError names the adapter stage that failed. Adapter failures
// never surface as unstructured faults.
type SourceError struct {
	Stage string // e.g. "file-calendar", "cloud-normalize"
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("calendar source %s: %v", e.Stage, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Interval is one row of the normalized time-tracking table.
type Interval struct {
	Begin time.Time
	End   time.Time
	Title string
	Tag   string
}

func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Begin) }

// Source is any concrete calendar variant that can produce the
// normalized interval table.
type Source interface {
	Name() string
	IntervalTable() ([]Interval, error)
}

// Event is a raw calendar event as delivered by the cloud collaborator.
// Fetching and authentication happen outside this package; the adapter
// only owns the normalization contract.
type Event struct {
	Title string
	Begin time.Time
	End   time.Time
}

// CloudCalendar wraps events already fetched from a cloud account.
type CloudCalendar struct {
	CalendarName string
	Events       []Event
}

func (c *CloudCalendar) Name() string { return c.CalendarName }

// IntervalTable normalizes events to interval rows. The tag defaults
// to the title verbatim; no extraction beyond that.
func (c *CloudCalendar) IntervalTable() ([]Interval, error) {
	rows := make([]Interval, 0, len(c.Events))
	for _, ev := range c.Events {
		if ev.End.Before(ev.Begin) {
			return nil, &SourceError{
				Stage: "cloud-normalize",
				Err:   fmt.Errorf("event %q ends before it begins", ev.Title),
			}
		}
		rows = append(rows, Interval{
			Begin: ev.Begin,
			End:   ev.End,
			Title: ev.Title,
			Tag:   ev.Title,
		})
	}
	return rows, nil
}

// FileCalendar is a declared future capability: ingesting ics or
// spreadsheet files. It fails with a typed not-implemented result,
// never a silent no-op.
type FileCalendar struct {
	FileName string
	Path     string
}

func (f *FileCalendar) Name() string { return f.FileName }

func (f *FileCalendar) IntervalTable() ([]Interval, error) {
	return nil, &SourceError{Stage: "file-calendar", Err: ErrNotImplemented}
}
