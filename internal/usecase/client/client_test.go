package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) Save(ctx context.Context, client *models.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *RepoMock) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	var c *models.Client
	if v := args.Get(0); v != nil {
		c = v.(*models.Client)
	}
	return c, args.Error(1)
}

func (m *RepoMock) FindByCode(ctx context.Context, code string) (*models.Client, error) {
	args := m.Called(ctx, code)
	var c *models.Client
	if v := args.Get(0); v != nil {
		c = v.(*models.Client)
	}
	return c, args.Error(1)
}

func (m *RepoMock) FindAll(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *RepoMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RepoMock) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type AppointmentsMock struct{ mock.Mock }

func (m *AppointmentsMock) CountByClientID(ctx context.Context, clientID uint) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

type noopAuditor struct{}

func (noopAuditor) Dispatch(ev audit.Event) {}

func newUseCase(repo *RepoMock, appts *AppointmentsMock) *UseCase {
	return New(repo, appts, noopAuditor{})
}

func TestClient_Create(t *testing.T) {
	tests := []struct {
		name       string
		in         Input
		setupMocks func(repo *RepoMock)
		wantCode   string
		wantKind   httperr.Kind
	}{
		{
			name: "success",
			in:   Input{Name: "João Silva", Phone: "(11) 99999-9999", Email: "joao@email.com"},
			setupMocks: func(repo *RepoMock) {
				repo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.On("Save", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*models.Client).ID = 7
					}).
					Return(nil).Once()
			},
		},
		{
			name:     "blank name",
			in:       Input{Name: "   ", Phone: "(11) 99999-9999", Email: "joao@email.com"},
			wantCode: "name_required",
			wantKind: httperr.KindValidation,
		},
		{
			name:     "blank phone",
			in:       Input{Name: "João Silva", Phone: "", Email: "joao@email.com"},
			wantCode: "phone_required",
			wantKind: httperr.KindValidation,
		},
		{
			name:     "phone with less than ten digits",
			in:       Input{Name: "João Silva", Phone: "9999-9999", Email: "joao@email.com"},
			wantCode: "invalid_phone",
			wantKind: httperr.KindValidation,
		},
		{
			name:     "email without at",
			in:       Input{Name: "João Silva", Phone: "(11) 99999-9999", Email: "joao.email.com"},
			wantCode: "invalid_email",
			wantKind: httperr.KindValidation,
		},
		{
			name:     "email without dot",
			in:       Input{Name: "João Silva", Phone: "(11) 99999-9999", Email: "joao@emailcom"},
			wantCode: "invalid_email",
			wantKind: httperr.KindValidation,
		},
		{
			name: "code collision",
			in:   Input{Name: "João Silva", Phone: "(11) 99999-9999", Email: "joao@email.com"},
			setupMocks: func(repo *RepoMock) {
				repo.On("ExistsByCode", mock.Anything, mock.Anything).Return(true, nil).Once()
			},
			wantCode: "code_already_exists",
			wantKind: httperr.KindConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			appts := new(AppointmentsMock)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			got, err := newUseCase(repo, appts).Create(context.Background(), tt.in)

			if tt.wantCode != "" {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
				assert.True(t, httperr.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(7), got.ID)
				assert.NotEmpty(t, got.Code)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestClient_Update(t *testing.T) {
	in := Input{Name: "João Silva", Phone: "(11) 99999-9999", Email: "joao@email.com"}

	t.Run("not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("FindByID", mock.Anything, uint(9)).Return(nil, nil).Once()

		_, err := newUseCase(repo, new(AppointmentsMock)).Update(context.Background(), 9, in)

		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
		repo.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		repo := new(RepoMock)

		_, err := newUseCase(repo, new(AppointmentsMock)).Update(context.Background(), 0, in)

		assert.True(t, httperr.IsBusiness(err, "invalid_id"))
	})

	t.Run("success keeps code", func(t *testing.T) {
		existing := &models.Client{ID: 9, Code: "code-123", Name: "Antigo", Phone: "(11) 98888-8888", Email: "a@b.c"}

		repo := new(RepoMock)
		repo.On("FindByID", mock.Anything, uint(9)).Return(existing, nil).Once()
		repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		got, err := newUseCase(repo, new(AppointmentsMock)).Update(context.Background(), 9, in)

		assert.NoError(t, err)
		assert.Equal(t, uint(9), got.ID)
		assert.Equal(t, "code-123", got.Code)
		assert.Equal(t, "João Silva", got.Name)
		repo.AssertExpectations(t)
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ExistsByID", mock.Anything, uint(4)).Return(false, nil).Once()

		err := newUseCase(repo, new(AppointmentsMock)).Delete(context.Background(), 4)

		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})

	t.Run("rejected while referenced by appointments", func(t *testing.T) {
		repo := new(RepoMock)
		appts := new(AppointmentsMock)
		repo.On("ExistsByID", mock.Anything, uint(4)).Return(true, nil).Once()
		appts.On("CountByClientID", mock.Anything, uint(4)).Return(int64(2), nil).Once()

		err := newUseCase(repo, appts).Delete(context.Background(), 4)

		assert.True(t, httperr.IsBusiness(err, "client_in_use"))
		assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	})

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		appts := new(AppointmentsMock)
		repo.On("ExistsByID", mock.Anything, uint(4)).Return(true, nil).Once()
		appts.On("CountByClientID", mock.Anything, uint(4)).Return(int64(0), nil).Once()
		repo.On("Delete", mock.Anything, uint(4)).Return(nil).Once()

		assert.NoError(t, newUseCase(repo, appts).Delete(context.Background(), 4))
		repo.AssertExpectations(t)
		appts.AssertExpectations(t)
	})
}

func TestClient_ExistsByIDIsIdempotent(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ExistsByID", mock.Anything, uint(3)).Return(true, nil).Twice()

	uc := newUseCase(repo, new(AppointmentsMock))

	first, err := uc.ExistsByID(context.Background(), 3)
	assert.NoError(t, err)

	second, err := uc.ExistsByID(context.Background(), 3)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestClient_ExistsValidation(t *testing.T) {
	uc := newUseCase(new(RepoMock), new(AppointmentsMock))

	_, err := uc.ExistsByID(context.Background(), 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_id"))

	_, err = uc.ExistsByCode(context.Background(), "  ")
	assert.True(t, httperr.IsBusiness(err, "code_required"))
}
