package client

import (
	"context"

	"github.com/carepetz/petshop-scheduler/internal/models"
)

// Repository é a porta de persistência de clientes.
// FindByID/FindByCode devolvem (nil, nil) quando não há registro.
type Repository interface {
	Save(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	FindByCode(ctx context.Context, code string) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
