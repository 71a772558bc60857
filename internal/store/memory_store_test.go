package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobboard-api/internal/apperrors"
	"github.com/justsurfingit/jobboard-api/internal/dtos"
	"github.com/justsurfingit/jobboard-api/internal/models"
)

func validJob(title string) *models.JobPosting {
	return &models.JobPosting{
		Title:       title,
		Type:        "Full-Time",
		Location:    "Remote",
		Description: "Build things",
		Salary:      "100k",
		Company: models.Company{
			Name:         "Acme",
			Description:  "Widgets",
			ContactEmail: "a@acme.com",
			ContactPhone: "555-0100",
		},
	}
}

func strPtr(s string) *string { return &s }

func TestMemoryStore_Insert(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	first, err := st.Insert(ctx, validJob("Engineer"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Engineer", first.Title)

	second, err := st.Insert(ctx, validJob("Designer"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryStore_Insert_RejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	job := validJob("Engineer")
	job.Salary = ""
	_, err := st.Insert(ctx, job)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	jobs, err := st.FindAll(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMemoryStore_FindAll_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	for i := 0; i < 5; i++ {
		_, err := st.Insert(ctx, validJob(fmt.Sprintf("Job %d", i)))
		require.NoError(t, err)
	}

	all, err := st.FindAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, job := range all {
		assert.Equal(t, fmt.Sprintf("Job %d", i), job.Title)
	}

	limited, err := st.FindAll(ctx, 3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
	assert.Equal(t, "Job 0", limited[0].Title)
	assert.Equal(t, "Job 2", limited[2].Title)
}

func TestMemoryStore_UpdateByID_MergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	created, err := st.Insert(ctx, validJob("Engineer"))
	require.NoError(t, err)

	updated, err := st.UpdateByID(ctx, created.ID, &dtos.JobUpdateRequest{
		Salary:  strPtr("120k"),
		Company: &dtos.CompanyUpdate{ContactPhone: strPtr("555-0199")},
	})
	require.NoError(t, err)

	assert.Equal(t, "120k", updated.Salary)
	assert.Equal(t, "555-0199", updated.Company.ContactPhone)
	// everything else untouched
	assert.Equal(t, "Engineer", updated.Title)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Acme", updated.Company.Name)
	assert.Equal(t, "a@acme.com", updated.Company.ContactEmail)
}

func TestMemoryStore_UpdateByID_NotFound(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.UpdateByID(context.Background(), "missing", &dtos.JobUpdateRequest{Title: strPtr("X")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	created, err := st.Insert(ctx, validJob("Engineer"))
	require.NoError(t, err)

	deleted, err := st.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = st.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = st.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
