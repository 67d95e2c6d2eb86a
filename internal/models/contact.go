package models

import "time"

// Contact is an entry in the address book.
type Contact struct {
	ID        uint `gorm:"primaryKey"`
	FirstName string
	LastName  string
	Company   string
	Email     string
	AddressID *uint    // optional postal address
	Address   *Address `gorm:"foreignKey:AddressID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContact validates the email before the contact exists at all.
func NewContact(firstName, lastName, company, email string) (*Contact, error) {
	if email != "" && !ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Reason: "must match local@domain.tld"}
	}
	return &Contact{
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Email:     email,
	}, nil
}

// Name derives a display name: first+last, else first, else last,
// else company, else empty.
func (c Contact) Name() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	case c.LastName != "":
		return c.LastName
	default:
		return c.Company
	}
}
