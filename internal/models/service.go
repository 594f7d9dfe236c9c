package models

import (
	"time"

	"github.com/google/uuid"
)

// Serviço oferecido pelo pet shop (banho, tosa, etc)
type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewService(description string, price float64) *Service {
	return &Service{
		Code:        uuid.NewString(),
		Description: description,
		Price:       price,
	}
}
