package appointment

import (
	"context"
	"time"

	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Repository é a porta de persistência de agendamentos.
// FindByID/FindByCode devolvem (nil, nil) quando não há registro.
type Repository interface {
	// -------- Escrita --------

	Save(ctx context.Context, ap *models.Appointment) error

	// CreateScheduled faz a checagem de conflito e o insert na mesma
	// transação, com lock nas linhas do slot.
	CreateScheduled(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, id uint) error

	// -------- Leitura --------

	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByCode(ctx context.Context, code string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByClientID(ctx context.Context, clientID uint) ([]models.Appointment, error)
	FindByDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Appointment, error)

	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// HasTimeConflict verifica se outro agendamento ocupa o mesmo
	// (data, hora). excludeID > 0 tira o próprio registro da varredura.
	HasTimeConflict(ctx context.Context, date time.Time, hourMinute string, excludeID uint) (bool, error)

	// -------- Guarda de exclusão cruzada --------

	CountByClientID(ctx context.Context, clientID uint) (int64, error)
	CountByServiceID(ctx context.Context, serviceID uint) (int64, error)
}
