package appointment

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Clients e Services são as fatias dos outros agregados que o fluxo de
// agendamento consome para checar dependências e copiar o preço.

type Clients interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type Services interface {
	FindByID(ctx context.Context, id uint) (*models.Service, error)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}
