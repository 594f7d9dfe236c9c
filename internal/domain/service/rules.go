package service

import (
	"strings"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
)

func Validate(s *models.Service) error {
	if s == nil {
		return httperr.Validation("service_required", "Serviço não pode ser nulo.")
	}

	if strings.TrimSpace(s.Description) == "" {
		return httperr.Validation("description_required", "Descrição do serviço é obrigatória.")
	}

	if s.Price <= 0 {
		return httperr.Validation("invalid_price", "Valor do serviço deve ser maior que zero.")
	}

	return nil
}
