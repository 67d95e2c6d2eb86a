package models

import "time"

// TimeTrackingItem is one recorded interval of work. An item belongs
// to at most one timesheet.
type TimeTrackingItem struct {
	ID          uint `gorm:"primaryKey"`
	TimesheetID *uint
	Begin       time.Time `gorm:"not null"`
	End         time.Time `gorm:"not null"`
	Title       string
	Tag         string `gorm:"index"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTimeTrackingItem rejects intervals that run backwards.
func NewTimeTrackingItem(begin, end time.Time, title, tag, description string) (*TimeTrackingItem, error) {
	if end.Before(begin) {
		return nil, &ValidationError{Field: "end", Reason: "must not precede begin"}
	}
	return &TimeTrackingItem{
		Begin:       begin,
		End:         end,
		Title:       title,
		Tag:         tag,
		Description: description,
	}, nil
}

// Duration is always end minus begin, never stored separately.
func (i TimeTrackingItem) Duration() time.Duration { return i.End.Sub(i.Begin) }

// Timesheet is a period-bounded collection of billable time entries
// for one project.
type Timesheet struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	ProjectID   uint               `gorm:"not null;index"`
	Project     Project            `gorm:"foreignKey:ProjectID"`
	Items       []TimeTrackingItem `gorm:"foreignKey:TimesheetID"`
	Rendered    bool               `gorm:"not null;default:false"`
	InvoiceID   *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTimesheet checks the period ordering.
func NewTimesheet(title string, projectID uint, periodStart, periodEnd time.Time) (*Timesheet, error) {
	if periodEnd.Before(periodStart) {
		return nil, &ValidationError{Field: "period_end", Reason: "must not precede period_start"}
	}
	return &Timesheet{
		Title:       title,
		Date:        time.Now(),
		ProjectID:   projectID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}, nil
}

// Total is the sum of the item durations.
func (t Timesheet) Total() time.Duration {
	var sum time.Duration
	for _, item := range t.Items {
		sum += item.Duration()
	}
	return sum
}

func (t Timesheet) IsEmpty() bool { return len(t.Items) == 0 }
