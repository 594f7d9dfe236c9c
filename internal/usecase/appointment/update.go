package appointment

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	domain "github.com/carepetz/petshop-scheduler/internal/domain/appointment"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
	"github.com/carepetz/petshop-scheduler/internal/timezone"
)

type Update struct {
	appointments domain.Repository
	clients      Clients
	services     Services
	audit        Auditor
}

func NewUpdate(
	appointments domain.Repository,
	clients Clients,
	services Services,
	auditor Auditor,
) *Update {
	return &Update{
		appointments: appointments,
		clients:      clients,
		services:     services,
		audit:        auditor,
	}
}

// Execute refaz toda a validação do create, exclui o próprio registro da
// varredura de conflito e recalcula o snapshot de preço ao reassociar o
// serviço.
func (uc *Update) Execute(ctx context.Context, id uint, in Input) (*models.Appointment, error) {

	if id == 0 {
		return nil, httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	hm, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	if in.ClientID == 0 {
		return nil, httperr.Validation("client_required", "Cliente é obrigatório.")
	}
	if in.ServiceID == 0 {
		return nil, httperr.Validation("service_required", "Serviço é obrigatório.")
	}

	if date.Before(timezone.Today()) {
		return nil, httperr.Validation("past_date", "Não é possível agendar para datas passadas.")
	}

	ok, err := uc.clients.ExistsByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.Validation("client_not_found", "Cliente não encontrado.")
	}

	svc, err := uc.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, httperr.Validation("service_not_found", "Serviço não encontrado.")
	}

	existing, err := uc.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.NotFound("appointment_not_found", "Agenda não encontrada.")
	}

	// id e código sobrevivem ao update; o resto é substituído
	existing.Date = date
	existing.Time = hm
	existing.ClientID = in.ClientID
	existing.ServiceID = svc.ID
	existing.Price = svc.Price
	if in.PriceOverride != nil {
		existing.Price = *in.PriceOverride
	}
	existing.Client = models.Client{}
	existing.Service = models.Service{}

	if err := domain.Validate(existing); err != nil {
		return nil, err
	}

	// o próprio id fica fora da varredura: re-salvar o mesmo slot passa
	conflict, err := uc.appointments.HasTimeConflict(ctx, date, hm, id)
	if err != nil {
		return nil, err
	}
	if conflict {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_conflict",
			Entity:   "appointment",
			EntityID: &id,
			Metadata: map[string]string{"date": in.Date, "time": hm},
		})
		return nil, httperr.Conflict("time_conflict", "Já existe um agendamento para este horário.")
	}

	if err := uc.appointments.Save(ctx, existing); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &existing.ID,
	})

	return existing, nil
}
