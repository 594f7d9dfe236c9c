package appointment

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	domain "github.com/carepetz/petshop-scheduler/internal/domain/appointment"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
	"github.com/carepetz/petshop-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	ClientID  uint
	ServiceID uint

	Date string
	Time string

	// PriceOverride substitui o snapshot copiado do serviço.
	PriceOverride *float64
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	appointments domain.Repository
	clients      Clients
	services     Services
	audit        Auditor
}

func NewCreate(
	appointments domain.Repository,
	clients Clients,
	services Services,
	auditor Auditor,
) *Create {
	return &Create{
		appointments: appointments,
		clients:      clients,
		services:     services,
		audit:        auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in Input) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data / hora — entrada malformada é rejeitada aqui
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	hm, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Referências obrigatórias
	// --------------------------------------------------
	if in.ClientID == 0 {
		return nil, httperr.Validation("client_required", "Cliente é obrigatório.")
	}
	if in.ServiceID == 0 {
		return nil, httperr.Validation("service_required", "Serviço é obrigatório.")
	}

	// --------------------------------------------------
	// 3. Regra temporal (só a data, nunca a hora)
	// --------------------------------------------------
	if date.Before(timezone.Today()) {
		return nil, httperr.Validation("past_date", "Não é possível agendar para datas passadas.")
	}

	// --------------------------------------------------
	// 4. Dependências
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 5. Montagem + snapshot de preço
	// --------------------------------------------------
	ap := models.NewAppointment(in.ClientID, svc, date, hm)
	if in.PriceOverride != nil {
		ap.Price = *in.PriceOverride
	}

	if err := domain.Validate(ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Unicidade de código
	// --------------------------------------------------
	exists, err := uc.appointments.ExistsByCode(ctx, ap.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.Conflict("code_already_exists", "Agenda com código já existente: "+ap.Code)
	}

	// --------------------------------------------------
	// 7. Conflito de horário + insert na mesma transação
	// --------------------------------------------------
	conflict, err := uc.appointments.HasTimeConflict(ctx, date, hm, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_conflict",
			Entity:   "appointment",
			Metadata: map[string]string{"date": in.Date, "time": hm},
		})
		return nil, httperr.Conflict("time_conflict", "Já existe um agendamento para este horário.")
	}

	if err := uc.appointments.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
