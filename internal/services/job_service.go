package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/models"
	"github.com/justsurfingit/jobboard-api/internal/store"
)

// DefaultListLimit caps GET /api/jobs when the caller sends no _limit.
const DefaultListLimit = 10

// JobService implements the business rules on top of the store. It holds
// no posting state of its own; every operation goes back to the store.
type JobService struct {
	store store.JobStore
	log   *zap.Logger
}

func NewJobService(jobStore store.JobStore, log *zap.Logger) *JobService {
	return &JobService{
		store: jobStore,
		log:   log,
	}
}

// CreateJob validates the full required-field set and persists the posting.
// Nothing reaches the store when validation fails.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.JobPosting, error) {
	if req.Title == "" || req.Type == "" || req.Location == "" ||
		req.Description == "" || req.Salary == "" || req.Company == nil {
		return nil, apperrors.NewValidation("All fields must be filled")
	}

	job := &models.JobPosting{
		Title:       req.Title,
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
		Company: models.Company{
			Name:         req.Company.Name,
			Description:  req.Company.Description,
			ContactEmail: req.Company.ContactEmail,
			ContactPhone: req.Company.ContactPhone,
		},
	}
	if err := job.Company.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, job)
	if err != nil {
		return nil, err
	}
	s.log.Info("job created", zap.String("id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// ListJobs returns postings in insertion order, truncated to limit when
// positive. An empty store is not an error.
func (s *JobService) ListJobs(ctx context.Context, limit int) ([]models.JobPosting, error) {
	return s.store.FindAll(ctx, limit)
}

func (s *JobService) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	return s.store.FindByID(ctx, id)
}

// EditJob applies a partial update. It does not re-run the creation check;
// it only requires an id, a non-empty payload and an existing record.
func (s *JobService) EditJob(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*models.JobPosting, error) {
	if id == "" || req == nil || req.IsEmpty() {
		return nil, apperrors.NewValidation("Job ID and update data are required")
	}
	return s.store.UpdateByID(ctx, id, req)
}

// DeleteJob removes the posting and reports how many records went away.
func (s *JobService) DeleteJob(ctx context.Context, id string) (int64, error) {
	if id == "" {
		return 0, apperrors.NewValidation("Job ID is required")
	}
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("job deleted", zap.String("id", id))
	return deleted, nil
}
