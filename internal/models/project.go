package models

import "time"

// Project is a group of contract work for a client. The tag correlates
// raw time-tracking rows to the project.
type Project struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null;uniqueIndex"`
	Tag         string `gorm:"not null;uniqueIndex"`
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsCompleted bool     `gorm:"not null;default:false"`
	ContractID  uint     `gorm:"not null;index"`
	Contract    Contract `gorm:"foreignKey:ContractID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject checks the tag shape up front; uniqueness of title and
// tag is enforced at save time by the store.
func NewProject(title, tag, description string, contractID uint, start, end time.Time) (*Project, error) {
	if !ValidTag(tag) {
		return nil, &ValidationError{Field: "tag", Reason: "must be #-prefixed with no whitespace"}
	}
	if end.Before(start) {
		return nil, &ValidationError{Field: "end_date", Reason: "must not precede start_date"}
	}
	return &Project{
		Title:       title,
		Tag:         tag,
		Description: description,
		ContractID:  contractID,
		StartDate:   start,
		EndDate:     end,
	}, nil
}
