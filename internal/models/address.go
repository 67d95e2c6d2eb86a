package models

import "time"

// Address is a postal address. Every field may be empty.
type Address struct {
	ID         uint `gorm:"primaryKey"`
	Street     string
	Number     string
	City       string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsEmpty reports whether no part of the address is filled in.
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.Number == "" && a.City == "" &&
		a.PostalCode == "" && a.Country == ""
}
