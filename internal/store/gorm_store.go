package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/models"
)

// GormStore is the Postgres-backed JobStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, job *models.JobPosting) (*models.JobPosting, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	job.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormStore) FindAll(ctx context.Context, limit int) ([]models.JobPosting, error) {
	q := s.db.WithContext(ctx).Order("created_at, id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var jobs []models.JobPosting
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) UpdateByID(ctx context.Context, id string, updates *dtos.JobUpdateRequest) (*models.JobPosting, error) {
	// Single-record merge: read, apply the supplied fields, save.
	job, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUpdates(job, updates)
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *GormStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.JobPosting{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrNotFound
	}
	return res.RowsAffected, nil
}
