package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) Save(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *RepoMock) CreateScheduled(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *RepoMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RepoMock) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	var ap *models.Appointment
	if v := args.Get(0); v != nil {
		ap = v.(*models.Appointment)
	}
	return ap, args.Error(1)
}

func (m *RepoMock) FindByCode(ctx context.Context, code string) (*models.Appointment, error) {
	args := m.Called(ctx, code)
	var ap *models.Appointment
	if v := args.Get(0); v != nil {
		ap = v.(*models.Appointment)
	}
	return ap, args.Error(1)
}

func (m *RepoMock) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *RepoMock) FindByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *RepoMock) FindByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *RepoMock) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *RepoMock) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) HasTimeConflict(ctx context.Context, date time.Time, hourMinute string, excludeID uint) (bool, error) {
	args := m.Called(ctx, date, hourMinute, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) CountByClientID(ctx context.Context, clientID uint) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) CountByServiceID(ctx context.Context, serviceID uint) (int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

type ClientsMock struct{ mock.Mock }

func (m *ClientsMock) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type ServicesMock struct{ mock.Mock }

func (m *ServicesMock) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	var s *models.Service
	if v := args.Get(0); v != nil {
		s = v.(*models.Service)
	}
	return s, args.Error(1)
}

type noopAuditor struct{}

func (noopAuditor) Dispatch(ev audit.Event) {}
