package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills one or more timesheets of a project.
type Invoice struct {
	ID         uint   `gorm:"primaryKey"`
	Number     string `gorm:"size:50;not null;uniqueIndex"`
	Date       time.Time
	ContractID uint          `gorm:"not null;index"`
	Contract   Contract      `gorm:"foreignKey:ContractID"`
	ProjectID  uint          `gorm:"not null;index"`
	Timesheets []Timesheet   `gorm:"foreignKey:InvoiceID"`
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID"`
	Sent       bool          `gorm:"not null;default:false"`
	Paid       bool          `gorm:"not null;default:false"`
	Cancelled  bool          `gorm:"not null;default:false"`
	Rendered   bool          `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Sum is the net amount over all items, before tax.
func (inv Invoice) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// VATTotal is the tax amount over all items.
func (inv Invoice) VATTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.VAT())
	}
	return sum
}

// Total is the gross amount, Sum plus VATTotal, exactly.
func (inv Invoice) Total() decimal.Decimal {
	return inv.Sum().Add(inv.VATTotal())
}

// InvoiceItem is one billable line contributing to an invoice's total.
// The VAT rate is carried per item: callers populate it from the
// contract at creation time, the computation never reaches back.
type InvoiceItem struct {
	ID          uint `gorm:"primaryKey"`
	InvoiceID   uint `gorm:"not null;index"`
	StartDate   time.Time
	EndDate     time.Time
	Quantity    int             `gorm:"not null"`
	Unit        string          `gorm:"size:50;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2)"`
	Description string          `gorm:"size:500"`
	VATRate     decimal.Decimal `gorm:"type:decimal(5,4)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subtotal = quantity × unit price.
func (it InvoiceItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(it.Quantity)).Mul(it.UnitPrice)
}

// VAT = subtotal × rate.
func (it InvoiceItem) VAT() decimal.Decimal {
	return it.Subtotal().Mul(it.VATRate)
}
