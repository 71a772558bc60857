package store

import (
	"context"

	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/models"
)

// JobStore is the durable keyed collection of postings. It is the only
// legitimate mutator of persisted JobPosting state; each operation is
// atomic with respect to a single record.
type JobStore interface {
	// Insert assigns an id, persists the record and returns it.
	Insert(ctx context.Context, job *models.JobPosting) (*models.JobPosting, error)
	// FindByID returns the record or apperrors.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.JobPosting, error)
	// FindAll returns records in insertion order. A positive limit
	// truncates the result; limit <= 0 returns everything.
	FindAll(ctx context.Context, limit int) ([]models.JobPosting, error)
	// UpdateByID merges only the supplied fields into the record and
	// returns the result, or apperrors.ErrNotFound.
	UpdateByID(ctx context.Context, id string, updates *dtos.JobUpdateRequest) (*models.JobPosting, error)
	// DeleteByID removes the record and returns how many rows went away,
	// or apperrors.ErrNotFound when nothing matched.
	DeleteByID(ctx context.Context, id string) (int64, error)
}

func applyUpdates(job *models.JobPosting, updates *dtos.JobUpdateRequest) {
	if updates.Title != nil {
		job.Title = *updates.Title
	}
	if updates.Type != nil {
		job.Type = *updates.Type
	}
	if updates.Location != nil {
		job.Location = *updates.Location
	}
	if updates.Description != nil {
		job.Description = *updates.Description
	}
	if updates.Salary != nil {
		job.Salary = *updates.Salary
	}
	if updates.Company != nil {
		if updates.Company.Name != nil {
			job.Company.Name = *updates.Company.Name
		}
		if updates.Company.Description != nil {
			job.Company.Description = *updates.Company.Description
		}
		if updates.Company.ContactEmail != nil {
			job.Company.ContactEmail = *updates.Company.ContactEmail
		}
		if updates.Company.ContactPhone != nil {
			job.Company.ContactPhone = *updates.Company.ContactPhone
		}
	}
}
