package models

import "time"

// TimeUnit is the abstract unit a contract bills in.
type TimeUnit string

const (
	UnitMinute TimeUnit = "minute"
	UnitHour   TimeUnit = "hour"
	UnitDay    TimeUnit = "day"
)

// Duration converts the unit to a concrete span. The mapping is total
// over the declared units; an unknown unit converts to zero.
func (u TimeUnit) Duration() time.Duration {
	switch u {
	case UnitMinute:
		return time.Minute
	case UnitHour:
		return time.Hour
	case UnitDay:
		return 24 * time.Hour
	default:
		return 0
	}
}

// Cycle is the configured invoicing frequency of a contract. Cycles
// are opaque labels; no recurrence duration is defined for them here —
// scheduling is the concern of an outer collaborator.
type Cycle string

const (
	CycleWeekly    Cycle = "weekly"
	CycleMonthly   Cycle = "monthly"
	CycleQuarterly Cycle = "quarterly"
	CycleYearly    Cycle = "yearly"
)

func (c Cycle) String() string { return string(c) }
