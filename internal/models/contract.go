package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract defines the business conditions of a project.
type Contract struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	ClientID        uint   `gorm:"not null;index"`
	Client          Client `gorm:"foreignKey:ClientID"`
	SignatureDate   time.Time
	StartDate       time.Time
	EndDate         *time.Time
	Rate            decimal.Decimal `gorm:"type:decimal(12,2)"`
	Currency        string          `gorm:"not null;default:'EUR'"`
	VATRate         decimal.Decimal `gorm:"type:decimal(5,4)"`
	Unit            TimeUnit        `gorm:"not null;default:'hour'"`
	UnitsPerWorkday int             `gorm:"not null;default:8"`
	Volume          *int            // total units contracted, unset = open volume
	TermOfPayment   *int            // days until an invoice is due
	BillingCycle    Cycle           `gorm:"not null;default:'monthly'"`
	IsCompleted     bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Defaults applied by NewContract.
var (
	DefaultVATRate       = decimal.NewFromFloat(0.19)
	DefaultTermOfPayment = 31
	DefaultUnitsPerDay   = 8
)

// NewContract builds a contract with defaults filled in and the date
// ordering checked. The entity itself never re-validates; ordering is
// the caller's contract before persistence.
func NewContract(title string, clientID uint, start time.Time, end *time.Time, rate decimal.Decimal) (*Contract, error) {
	if end != nil && end.Before(start) {
		return nil, &ValidationError{Field: "end_date", Reason: "must not precede start_date"}
	}
	term := DefaultTermOfPayment
	return &Contract{
		Title:           title,
		ClientID:        clientID,
		StartDate:       start,
		EndDate:         end,
		Rate:            rate,
		Currency:        "EUR",
		VATRate:         DefaultVATRate,
		Unit:            UnitHour,
		UnitsPerWorkday: DefaultUnitsPerDay,
		TermOfPayment:   &term,
		BillingCycle:    CycleMonthly,
	}, nil
}

// VolumeAsTime converts the contracted volume to a span of time.
// The second return is false when no volume is set.
func (c Contract) VolumeAsTime() (time.Duration, bool) {
	if c.Volume == nil {
		return 0, false
	}
	return time.Duration(*c.Volume) * c.Unit.Duration(), true
}
