package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

func TestQueries_Preconditions(t *testing.T) {
	uc := NewQueries(new(RepoMock))
	ctx := context.Background()

	_, err := uc.GetByID(ctx, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_id"))

	_, err = uc.GetByCode(ctx, "   ")
	assert.True(t, httperr.IsBusiness(err, "code_required"))

	_, err = uc.ListByClient(ctx, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_id"))

	_, err = uc.ExistsByID(ctx, 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_id"))

	_, err = uc.ExistsByCode(ctx, "")
	assert.True(t, httperr.IsBusiness(err, "code_required"))
}

func TestQueries_ListByDate(t *testing.T) {
	repo := new(RepoMock)
	repo.On("FindByDate", mock.Anything, mock.Anything).Return([]models.Appointment{{ID: 1}}, nil).Once()

	got, err := NewQueries(repo).ListByDate(context.Background(), "2030-06-15")
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = NewQueries(new(RepoMock)).ListByDate(context.Background(), "junho")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestQueries_ListByDateRange(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		_, err := NewQueries(new(RepoMock)).
			ListByDateRange(context.Background(), "2030-06-20", "2030-06-15")
		assert.True(t, httperr.IsBusiness(err, "invalid_range"))
	})

	t.Run("single day range", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything).
			Return([]models.Appointment{}, nil).Once()

		_, err := NewQueries(repo).
			ListByDateRange(context.Background(), "2030-06-15", "2030-06-15")
		assert.NoError(t, err)
	})

	t.Run("malformed end", func(t *testing.T) {
		_, err := NewQueries(new(RepoMock)).
			ListByDateRange(context.Background(), "2030-06-15", "15/06/2030")
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})
}

func TestQueries_HasConflict(t *testing.T) {
	t.Run("delegates with normalized time", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("HasTimeConflict", mock.Anything, mock.Anything, "09:05", uint(7)).Return(true, nil).Once()

		got, err := NewQueries(repo).HasConflict(context.Background(), "2030-06-15", "9:05", 7)
		assert.NoError(t, err)
		assert.True(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("malformed input is an error, never a silent no-conflict", func(t *testing.T) {
		repo := new(RepoMock)
		uc := NewQueries(repo)

		_, err := uc.HasConflict(context.Background(), "junho", "10:00", 0)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))

		_, err = uc.HasConflict(context.Background(), "2030-06-15", "10h", 0)
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))

		repo.AssertNotCalled(t, "HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQueries_GetByCode(t *testing.T) {
	repo := new(RepoMock)
	repo.On("FindByCode", mock.Anything, "ap-code").Return(&models.Appointment{ID: 4, Code: "ap-code"}, nil).Once()

	got, err := NewQueries(repo).GetByCode(context.Background(), "ap-code")
	assert.NoError(t, err)
	assert.Equal(t, uint(4), got.ID)
}
