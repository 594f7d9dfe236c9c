package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
	"github.com/carepetz/petshop-scheduler/internal/timezone"
)

func existingAppointment(id uint) *models.Appointment {
	return &models.Appointment{
		ID:        id,
		Code:      "ap-code",
		Date:      timezone.Today().AddDate(0, 0, 1),
		Time:      "10:00",
		Price:     50.00,
		ClientID:  1,
		ServiceID: 2,
	}
}

func TestUpdate_SameSlotPasses(t *testing.T) {
	// re-salvar o próprio horário não conflita consigo mesmo
	repo := new(RepoMock)
	clients := new(ClientsMock)
	services := new(ServicesMock)

	clients.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil).Once()
	services.On("FindByID", mock.Anything, uint(2)).Return(banhoETosa(), nil).Once()
	repo.On("FindByID", mock.Anything, uint(11)).Return(existingAppointment(11), nil).Once()
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, "10:00", uint(11)).Return(false, nil).Once()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	got, err := NewUpdate(repo, clients, services, noopAuditor{}).
		Execute(context.Background(), 11, validInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(11), got.ID)
	assert.Equal(t, "ap-code", got.Code)
	repo.AssertExpectations(t)
}

func TestUpdate_ResnapshotsPrice(t *testing.T) {
	repo := new(RepoMock)
	clients := new(ClientsMock)
	services := new(ServicesMock)

	cheaper := &models.Service{ID: 2, Description: "Banho simples", Price: 30.00}

	clients.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil).Once()
	services.On("FindByID", mock.Anything, uint(2)).Return(cheaper, nil).Once()
	repo.On("FindByID", mock.Anything, uint(11)).Return(existingAppointment(11), nil).Once()
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, "10:00", uint(11)).Return(false, nil).Once()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	got, err := NewUpdate(repo, clients, services, noopAuditor{}).
		Execute(context.Background(), 11, validInput())

	assert.NoError(t, err)
	assert.Equal(t, 30.00, got.Price)
}

func TestUpdate_Failures(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		_, err := NewUpdate(new(RepoMock), new(ClientsMock), new(ServicesMock), noopAuditor{}).
			Execute(context.Background(), 0, validInput())
		assert.True(t, httperr.IsBusiness(err, "invalid_id"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(RepoMock)
		clients := new(ClientsMock)
		services := new(ServicesMock)

		clients.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil).Once()
		services.On("FindByID", mock.Anything, uint(2)).Return(banhoETosa(), nil).Once()
		repo.On("FindByID", mock.Anything, uint(11)).Return(nil, nil).Once()

		_, err := NewUpdate(repo, clients, services, noopAuditor{}).
			Execute(context.Background(), 11, validInput())

		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("slot taken by another appointment", func(t *testing.T) {
		repo := new(RepoMock)
		clients := new(ClientsMock)
		services := new(ServicesMock)

		clients.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil).Once()
		services.On("FindByID", mock.Anything, uint(2)).Return(banhoETosa(), nil).Once()
		repo.On("FindByID", mock.Anything, uint(11)).Return(existingAppointment(11), nil).Once()
		repo.On("HasTimeConflict", mock.Anything, mock.Anything, "10:00", uint(11)).Return(true, nil).Once()

		_, err := NewUpdate(repo, clients, services, noopAuditor{}).
			Execute(context.Background(), 11, validInput())

		assert.True(t, httperr.IsBusiness(err, "time_conflict"))
		assert.True(t, httperr.IsKind(err, httperr.KindConflict))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("past date", func(t *testing.T) {
		in := validInput()
		in.Date = yesterdayStr()

		_, err := NewUpdate(new(RepoMock), new(ClientsMock), new(ServicesMock), noopAuditor{}).
			Execute(context.Background(), 11, in)

		assert.True(t, httperr.IsBusiness(err, "past_date"))
	})

	t.Run("malformed time", func(t *testing.T) {
		in := validInput()
		in.Time = "25:61"

		_, err := NewUpdate(new(RepoMock), new(ClientsMock), new(ServicesMock), noopAuditor{}).
			Execute(context.Background(), 11, in)

		assert.True(t, httperr.IsBusiness(err, "invalid_time"))
	})
}
