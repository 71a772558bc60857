package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/models"
)

// MemoryStore is an in-process JobStore keeping records in a map plus an
// insertion-order index. Used by tests in place of Postgres.
type MemoryStore struct {
	mu    sync.RWMutex
	jobs  map[string]models.JobPosting
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]models.JobPosting),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, job *models.JobPosting) (*models.JobPosting, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = uuid.NewString()
	s.jobs[job.ID] = *job
	s.order = append(s.order, job.ID)

	return job, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &job, nil
}

func (s *MemoryStore) FindAll(ctx context.Context, limit int) ([]models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobPosting, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.jobs[id])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, id string, updates *dtos.JobUpdateRequest) (*models.JobPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	applyUpdates(&job, updates)
	s.jobs[id] = job

	return &job, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return 0, apperrors.ErrNotFound
	}
	delete(s.jobs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}
