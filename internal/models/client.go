package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente do pet shop, dono do animal atendido
type Client struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient gera o código externo na construção; ele nunca muda depois.
func NewClient(name, phone, email string) *Client {
	return &Client{
		Code:  uuid.NewString(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
}
