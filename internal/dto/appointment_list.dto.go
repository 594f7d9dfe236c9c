package dto

import (
	"time"

	"github.com/carepetz/petshop-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID                 uint      `json:"id"`
	Code               string    `json:"code"`
	Date               time.Time `json:"date"`
	Time               string    `json:"time"`
	Price              float64   `json:"price"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, AppointmentListDTO{
			ID:                 ap.ID,
			Code:               ap.Code,
			Date:               ap.Date,
			Time:               ap.Time,
			Price:              ap.Price,
			ClientName:         ap.Client.Name,
			ServiceDescription: ap.Service.Description,
		})
	}
	return out
}
