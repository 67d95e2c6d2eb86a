package models

import "time"

// Status is the derived lifecycle state of a contract or project.
// The zero-argument default bucket is supplied by the caller, which
// lets list views use it as an "All" filter label.
type Status string

const (
	StatusActive    Status = "Active"
	StatusUpcoming  Status = "Upcoming"
	StatusCompleted Status = "Completed"
	StatusAll       Status = "All"
)

// Status derivation is a pure function of (today, start, end,
// completed); no other fields participate. Callers pass today
// explicitly so the functions stay testable at boundary dates.

// IsUpcoming reports whether work has not started yet. A start date
// equal to today is not upcoming.
func IsUpcoming(start, today time.Time) bool {
	return start.After(today)
}

// ContractActive treats the end date as exclusive: a contract ending
// today is no longer active.
func ContractActive(c Contract, today time.Time) bool {
	if c.IsCompleted || IsUpcoming(c.StartDate, today) {
		return false
	}
	return c.EndDate == nil || c.EndDate.After(today)
}

// ProjectActive treats the end date as inclusive: a project ending
// today is still active. The asymmetry with ContractActive is
// intentional and load-bearing for list filters.
func ProjectActive(p Project, today time.Time) bool {
	if p.IsCompleted || IsUpcoming(p.StartDate, today) {
		return false
	}
	return !p.EndDate.Before(today)
}

// ContractStatus evaluates Active, then Upcoming, then the completed
// flag, and falls back to def.
func ContractStatus(c Contract, today time.Time, def Status) Status {
	switch {
	case ContractActive(c, today):
		return StatusActive
	case IsUpcoming(c.StartDate, today):
		return StatusUpcoming
	case c.IsCompleted:
		return StatusCompleted
	default:
		return def
	}
}

// ProjectStatus mirrors ContractStatus with the project activity rule.
func ProjectStatus(p Project, today time.Time, def Status) Status {
	switch {
	case ProjectActive(p, today):
		return StatusActive
	case IsUpcoming(p.StartDate, today):
		return StatusUpcoming
	case p.IsCompleted:
		return StatusCompleted
	default:
		return def
	}
}
