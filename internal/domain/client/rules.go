package client

import (
	"strings"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
	"github.com/carepetz/petshop-scheduler/internal/validators"
)

// Validate aplica as regras de cadastro na ordem do fluxo:
// primeiro falha vence.
func Validate(c *models.Client) error {
	if c == nil {
		return httperr.Validation("client_required", "Cliente não pode ser nulo.")
	}

	if strings.TrimSpace(c.Name) == "" {
		return httperr.Validation("name_required", "Nome do cliente é obrigatório.")
	}

	if strings.TrimSpace(c.Phone) == "" {
		return httperr.Validation("phone_required", "Celular do cliente é obrigatório.")
	}

	if !validators.IsPhoneValid(c.Phone) {
		return httperr.Validation("invalid_phone", "Celular do cliente inválido.")
	}

	if strings.TrimSpace(c.Email) == "" {
		return httperr.Validation("email_required", "Email do cliente é obrigatório.")
	}

	if !validators.IsEmailValid(c.Email) {
		return httperr.Validation("invalid_email", "Email do cliente inválido.")
	}

	return nil
}
