package appointment

import (
	"time"

	"github.com/carepetz/petshop-scheduler/internal/httperr"
	"github.com/carepetz/petshop-scheduler/internal/models"
	"github.com/carepetz/petshop-scheduler/internal/timezone"
)

// DateLayout e TimeLayout são os formatos de fio do agendamento.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseDate devolve a meia-noite da data no fuso padrão.
// Entrada malformada é rejeitada aqui, nunca engolida.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, timezone.Location(""))
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date", "Data inválida, use o formato AAAA-MM-DD.")
	}
	return d, nil
}

// ParseClock normaliza a hora para granularidade de minuto ("HH:MM").
func ParseClock(s string) (string, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return "", httperr.Validation("invalid_time", "Hora inválida, use o formato HH:MM.")
	}
	return t.Format(TimeLayout), nil
}

// Validate cobre presença de campos e a regra temporal.
// A existência de cliente/serviço é checada pelo caso de uso, que tem
// acesso aos repositórios.
func Validate(ap *models.Appointment) error {
	if ap == nil {
		return httperr.Validation("appointment_required", "Agenda não pode ser nula.")
	}

	if ap.ClientID == 0 {
		return httperr.Validation("client_required", "Cliente é obrigatório.")
	}

	if ap.ServiceID == 0 {
		return httperr.Validation("service_required", "Serviço é obrigatório.")
	}

	if ap.Date.IsZero() {
		return httperr.Validation("date_required", "Data do agendamento é obrigatória.")
	}

	if ap.Time == "" {
		return httperr.Validation("time_required", "Hora do agendamento é obrigatória.")
	}

	if ap.Price <= 0 {
		return httperr.Validation("invalid_price", "Valor do serviço deve ser maior que zero.")
	}

	// Só a data conta; a hora do dia não é comparada com o relógio.
	if ap.Date.Before(timezone.Today()) {
		return httperr.Validation("past_date", "Não é possível agendar para datas passadas.")
	}

	return nil
}
