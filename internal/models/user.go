package models

import "time"

// User is the freelancer the application belongs to. The rendering
// collaborator reads it for letterheads and payment details.
type User struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	Subtitle      string `gorm:"size:255"`
	Email         string `gorm:"size:255;not null"`
	Phone         string `gorm:"size:50"`
	VATNumber     string `gorm:"size:20"`
	Website       string `gorm:"size:255"`
	AddressID     *uint
	Address       *Address `gorm:"foreignKey:AddressID"`
	BankAccountID *uint
	BankAccount   *BankAccount `gorm:"foreignKey:BankAccountID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BankAccount holds the payment details printed on invoices.
type BankAccount struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	IBAN      string `gorm:"size:34"`
	BIC       string `gorm:"size:11"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
