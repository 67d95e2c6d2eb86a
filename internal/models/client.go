package models

import "time"

// Client is a party the freelancer has contracted with.
//
// A client may be created without an invoicing contact, but must
// resolve one before it can be billed (enforced by the invoicing
// engine, not here).
type Client struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null;index"`
	InvoicingContactID *uint
	InvoicingContact   *Contact `gorm:"foreignKey:InvoicingContactID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
