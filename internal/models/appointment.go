package models

import (
	"time"

	"github.com/google/uuid"
)

// Agendamento de um serviço para um cliente.
// O índice único em (date, time) é o backstop do conflito de horário:
// mesmo que duas requisições passem pela checagem, só uma insere.
type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_appointments_slot" json:"date"`
	Time string    `gorm:"size:5;not null;uniqueIndex:idx_appointments_slot" json:"time"`

	// Snapshot do preço do serviço no momento do agendamento
	Price float64 `json:"price"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAppointment copia o preço do serviço no ato da associação.
func NewAppointment(clientID uint, svc *Service, date time.Time, hourMinute string) *Appointment {
	ap := &Appointment{
		Code:     uuid.NewString(),
		Date:     date,
		Time:     hourMinute,
		ClientID: clientID,
	}
	if svc != nil {
		ap.ServiceID = svc.ID
		ap.Price = svc.Price
	}
	return ap
}
