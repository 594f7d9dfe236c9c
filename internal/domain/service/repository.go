package service

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Repository é a porta de persistência do catálogo de serviços.
// FindByID/FindByCode devolvem (nil, nil) quando não há registro.
type Repository interface {
	Save(ctx context.Context, svc *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByCode(ctx context.Context, code string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
