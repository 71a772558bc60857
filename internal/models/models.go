package models

import (
	"time"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
)

// Company is the nested record describing the employer on a posting.
// It is stored inline on the jobs row, not as its own table.
type Company struct {
	Name         string `gorm:"not null"`
	Description  string `gorm:"type:text;not null"`
	ContactEmail string `gorm:"not null"`
	ContactPhone string `gorm:"not null"`
}

// Validate checks the four company fields that must be filled at creation.
func (c Company) Validate() error {
	if c.Name == "" || c.Description == "" || c.ContactEmail == "" || c.ContactPhone == "" {
		return apperrors.NewValidation("All company fields must be filled")
	}
	return nil
}

// JobPosting is the persisted job listing. The ID is assigned by the store
// and never changes. CreatedAt/UpdatedAt are storage metadata and are not
// part of the API shape (see dtos.NewJobResponse).
type JobPosting struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string `gorm:"not null"`
	Type        string `gorm:"not null"`
	Location    string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	Salary      string `gorm:"not null"`

	Company Company `gorm:"embedded;embeddedPrefix:company_"`
}

// Validate enforces the required-field invariant: the five top-level text
// fields and all company fields must be non-empty. The service checks this
// before persisting; the store re-checks as a last line of defense.
func (j *JobPosting) Validate() error {
	if j.Title == "" || j.Type == "" || j.Location == "" || j.Description == "" || j.Salary == "" {
		return apperrors.NewValidation("All fields must be filled")
	}
	return j.Company.Validate()
}
