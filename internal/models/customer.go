package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an exchange-desk counterparty, distinct from a rental Client.
type Customer struct {
	ID        uuid.UUID `json:"uuid"`
	DisplayID int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IDNumber  string    `json:"id_number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}

type UpdateCustomerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}
