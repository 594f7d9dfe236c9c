package appointment

import (
	"context"
	"strings"

	domain "github.com/carepetz/petshop-scheduler/internal/domain/appointment"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Queries agrupa as operações de leitura da agenda. Elas só aplicam
// pré-condições de id/código; nenhuma regra de negócio é revalidada.
type Queries struct {
	appointments domain.Repository
}

func NewQueries(appointments domain.Repository) *Queries {
	return &Queries{appointments: appointments}
}

func (uc *Queries) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}
	return uc.appointments.FindByID(ctx, id)
}

func (uc *Queries) GetByCode(ctx context.Context, code string) (*models.Appointment, error) {
	if strings.TrimSpace(code) == "" {
		return nil, httperr.Validation("code_required", "Código da agenda é obrigatório.")
	}
	return uc.appointments.FindByCode(ctx, code)
}

func (uc *Queries) List(ctx context.Context) ([]models.Appointment, error) {
	return uc.appointments.FindAll(ctx)
}

func (uc *Queries) ListByClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	if clientID == 0 {
		return nil, httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}
	return uc.appointments.FindByClientID(ctx, clientID)
}

func (uc *Queries) ListByDate(ctx context.Context, dateStr string) ([]models.Appointment, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return uc.appointments.FindByDate(ctx, date)
}

func (uc *Queries) ListByDateRange(ctx context.Context, startStr, endStr string) ([]models.Appointment, error) {
	start, err := domain.ParseDate(startStr)
	if err != nil {
		return nil, err
	}

	end, err := domain.ParseDate(endStr)
	if err != nil {
		return nil, err
	}

	if start.After(end) {
		return nil, httperr.Validation("invalid_range", "Data de início deve ser anterior à data de fim.")
	}

	return uc.appointments.FindByDateRange(ctx, start, end)
}

func (uc *Queries) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}
	return uc.appointments.ExistsByID(ctx, id)
}

func (uc *Queries) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if strings.TrimSpace(code) == "" {
		return false, httperr.Validation("code_required", "Código da agenda é obrigatório.")
	}
	return uc.appointments.ExistsByCode(ctx, code)
}

// HasConflict é a sonda de conflito exposta na API. Data ou hora
// malformada falha com erro de validação em vez de responder "sem
// conflito".
func (uc *Queries) HasConflict(ctx context.Context, dateStr, timeStr string, excludeID uint) (bool, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return false, err
	}

	hm, err := domain.ParseClock(timeStr)
	if err != nil {
		return false, err
	}

	return uc.appointments.HasTimeConflict(ctx, date, hm, excludeID)
}
