package client

import (
	"context"
	"strings"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	domain "github.com/carepetz/petshop-scheduler/internal/domain/client"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Appointments é a fatia da agenda que a guarda de exclusão precisa.
type Appointments interface {
	CountByClientID(ctx context.Context, clientID uint) (int64, error)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Input struct {
	Name  string
	Phone string
	Email string
}

type UseCase struct {
	repo         domain.Repository
	appointments Appointments
	audit        Auditor
}

func New(repo domain.Repository, appointments Appointments, auditor Auditor) *UseCase {
	return &UseCase{
		repo:         repo,
		appointments: appointments,
		audit:        auditor,
	}
}

// ======================================================
// CREATE
// ======================================================

func (uc *UseCase) Create(ctx context.Context, in Input) (*models.Client, error) {
	cl := models.NewClient(in.Name, in.Phone, in.Email)

	if err := domain.Validate(cl); err != nil {
		return nil, err
	}

	// colisão de UUID é improvável, mas a checagem é obrigatória
	exists, err := uc.repo.ExistsByCode(ctx, cl.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.Conflict("code_already_exists", "Cliente com código já existente: "+cl.Code)
	}

	if err := uc.repo.Save(ctx, cl); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &cl.ID,
	})

	return cl, nil
}

// ======================================================
// READ
// ======================================================

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *UseCase) GetByCode(ctx context.Context, code string) (*models.Client, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	return uc.repo.FindByCode(ctx, code)
}

func (uc *UseCase) List(ctx context.Context) ([]models.Client, error) {
	return uc.repo.FindAll(ctx)
}

// ======================================================
// UPDATE
// ======================================================

func (uc *UseCase) Update(ctx context.Context, id uint, in Input) (*models.Client, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	candidate := &models.Client{Name: in.Name, Phone: in.Phone, Email: in.Email}
	if err := domain.Validate(candidate); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.NotFound("client_not_found", "Cliente não encontrado.")
	}

	// o código é imutável: só os dados cadastrais mudam
	existing.Name = in.Name
	existing.Phone = in.Phone
	existing.Email = in.Email

	if err := uc.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &existing.ID,
	})

	return existing, nil
}

// ======================================================
// DELETE
// ======================================================

func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	if err := validateID(id); err != nil {
		return err
	}

	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.NotFound("client_not_found", "Cliente não encontrado.")
	}

	refs, err := uc.appointments.CountByClientID(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return httperr.Conflict("client_in_use", "Cliente possui agendamentos e não pode ser excluído.")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

// ======================================================
// EXISTS
// ======================================================

func (uc *UseCase) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}
	return uc.repo.ExistsByID(ctx, id)
}

func (uc *UseCase) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if err := validateCode(code); err != nil {
		return false, err
	}
	return uc.repo.ExistsByCode(ctx, code)
}

func validateID(id uint) error {
	if id == 0 {
		return httperr.Validation("invalid_id", "ID deve ser um número positivo.")
	}
	return nil
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return httperr.Validation("code_required", "Código do cliente é obrigatório.")
	}
	return nil
}
