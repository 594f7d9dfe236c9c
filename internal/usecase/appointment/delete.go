package appointment

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	domain "github.com/carepetz/petshop-scheduler/internal/domain/appointment"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
)

type Delete struct {
	appointments domain.Repository
	audit        Auditor
}

func NewDelete(appointments domain.Repository, auditor Auditor) *Delete {
	return &Delete{
		appointments: appointments,
		audit:        auditor,
	}
}

func (uc *Delete) Execute(ctx context.Context, id uint) error {
	if id == 0 {
		return httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}

	exists, err := uc.appointments.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("appointment_not_found", "Agenda não encontrada.")
	}

	if err := uc.appointments.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
