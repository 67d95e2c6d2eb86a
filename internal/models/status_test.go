package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var today = date(2024, time.March, 15)

func TestIsUpcoming(t *testing.T) {
	if IsUpcoming(today, today) {
		t.Error("start == today must not be upcoming")
	}
	if !IsUpcoming(today.AddDate(0, 0, 1), today) {
		t.Error("start after today must be upcoming")
	}
	if IsUpcoming(today.AddDate(0, 0, -1), today) {
		t.Error("start before today must not be upcoming")
	}
}

// A contract ending today is inactive, a project ending today is
// active. Exercised explicitly because the asymmetry is easy to
// flatten by accident.
func TestEndDateBoundaryAsymmetry(t *testing.T) {
	end := today
	c := Contract{StartDate: date(2024, time.January, 1), EndDate: &end}
	if ContractActive(c, today) {
		t.Error("contract end_date == today: want inactive (exclusive end)")
	}
	p := Project{StartDate: date(2024, time.January, 1), EndDate: end}
	if !ProjectActive(p, today) {
		t.Error("project end_date == today: want active (inclusive end)")
	}
}

func TestContractStatus(t *testing.T) {
	past := date(2024, time.January, 1)
	future := date(2024, time.December, 31)
	tests := []struct {
		name      string
		start     time.Time
		end       *time.Time
		completed bool
		want      Status
	}{
		{"open-ended running", past, nil, false, StatusActive},
		{"ends in the future", past, &future, false, StatusActive},
		{"starts today", today, nil, false, StatusActive},
		{"starts tomorrow", today.AddDate(0, 0, 1), nil, false, StatusUpcoming},
		{"completed flag set", past, &past, true, StatusCompleted},
		{"ended, not flagged", past, &past, false, StatusAll},
		{"upcoming wins over completed", future, nil, true, StatusUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Contract{StartDate: tt.start, EndDate: tt.end, IsCompleted: tt.completed}
			if got := ContractStatus(c, today, StatusAll); got != tt.want {
				t.Errorf("ContractStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Exactly one branch precondition holds for any input tuple.
func TestContractStatusExhaustive(t *testing.T) {
	days := []time.Time{today.AddDate(0, 0, -2), today, today.AddDate(0, 0, 2)}
	for _, start := range days {
		for _, end := range days {
			for _, completed := range []bool{false, true} {
				e := end
				c := Contract{StartDate: start, EndDate: &e, IsCompleted: completed}
				got := ContractStatus(c, today, StatusAll)
				switch got {
				case StatusActive, StatusUpcoming, StatusCompleted, StatusAll:
				default:
					t.Fatalf("unexpected status %q for start=%v end=%v completed=%v",
						got, start, end, completed)
				}
			}
		}
	}
}

func TestProjectStatus(t *testing.T) {
	p := Project{StartDate: date(2024, time.January, 1), EndDate: date(2024, time.February, 1), IsCompleted: true}
	if got := ProjectStatus(p, today, StatusAll); got != StatusCompleted {
		t.Errorf("ProjectStatus() = %s, want Completed", got)
	}
	p.IsCompleted = false
	if got := ProjectStatus(p, today, StatusAll); got != StatusAll {
		t.Errorf("ProjectStatus() = %s, want default bucket", got)
	}
}
