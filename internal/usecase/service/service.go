package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/carepetz/petshop-scheduler/internal/audit"
	domain "github.com/carepetz/petshop-scheduler/internal/domain/service"
	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

const cacheTTL = time.Hour

// Appointments é a fatia da agenda que a guarda de exclusão precisa.
type Appointments interface {
	CountByServiceID(ctx context.Context, serviceID uint) (int64, error)
}

type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Input struct {
	Description string
	Price       float64
}

type UseCase struct {
	repo         domain.Repository
	appointments Appointments
	cache        Cache
	audit        Auditor
}

func New(repo domain.Repository, appointments Appointments, cache Cache, auditor Auditor) *UseCase {
	return &UseCase{
		repo:         repo,
		appointments: appointments,
		cache:        cache,
		audit:        auditor,
	}
}

func cacheKey(id uint) string {
	return fmt.Sprintf("service:%d", id)
}

// ======================================================
// CREATE
// ======================================================

func (uc *UseCase) Create(ctx context.Context, in Input) (*models.Service, error) {
	svc := models.NewService(in.Description, in.Price)

	if err := domain.Validate(svc); err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsByCode(ctx, svc.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.Conflict("code_already_exists", "Serviço com código já existente: "+svc.Code)
	}

	if err := uc.repo.Save(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}

// ======================================================
// READ (get-by-id passa pelo cache)
// ======================================================

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var cached models.Service
	found, err := uc.cache.Get(ctx, cacheKey(id), &cached)
	if err != nil {
		log.Println("service cache read error:", err)
	}
	if found {
		return &cached, nil
	}

	svc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}

	if err := uc.cache.Set(ctx, cacheKey(id), svc, cacheTTL); err != nil {
		log.Println("service cache write error:", err)
	}

	return svc, nil
}

func (uc *UseCase) GetByCode(ctx context.Context, code string) (*models.Service, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	return uc.repo.FindByCode(ctx, code)
}

func (uc *UseCase) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.FindAll(ctx)
}

// ======================================================
// UPDATE
// ======================================================

func (uc *UseCase) Update(ctx context.Context, id uint, in Input) (*models.Service, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	candidate := &models.Service{Description: in.Description, Price: in.Price}
	if err := domain.Validate(candidate); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.NotFound("service_not_found", "Serviço não encontrado.")
	}

	existing.Description = in.Description
	existing.Price = in.Price

	if err := uc.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		log.Println("service cache invalidate error:", err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
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
		return httperr.NotFound("service_not_found", "Serviço não encontrado.")
	}

	refs, err := uc.appointments.CountByServiceID(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return httperr.Conflict("service_in_use", "Serviço possui agendamentos e não pode ser excluído.")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.cache.Invalidate(ctx, cacheKey(id)); err != nil {
		log.Println("service cache invalidate error:", err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
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
		return httperr.Validation("code_required", "Código do serviço é obrigatório.")
	}
	return nil
}
