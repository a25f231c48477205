package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment status constants
const (
	PaymentStatusPaid      = "paid"
	PaymentStatusPending   = "pending"
	PaymentStatusScheduled = "scheduled"
	PaymentStatusOverdue   = "overdue"
)

type Payment struct {
	ID         uuid.UUID `json:"uuid"`
	DisplayID  int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ContractID uuid.UUID `json:"contract_id"`
	Amount     float64   `json:"amount"`
	// DueDate is kept as the raw stored string. Legacy rows may hold either
	// DD-MM-YYYY or ISO dates; the matcher compares against both forms.
	DueDate       string    `json:"due_date"`
	PaidDate      *string   `json:"paid_date,omitempty"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CheckNumber   string    `json:"check_number,omitempty"`
	BankName      string    `json:"bank_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreatePaymentRequest struct {
	ContractID    uuid.UUID `json:"contract_id"`
	Amount        float64   `json:"amount"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CheckNumber   string    `json:"check_number"`
	BankName      string    `json:"bank_name"`
}

type UpdatePaymentRequest struct {
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	CheckNumber   string  `json:"check_number"`
	BankName      string  `json:"bank_name"`
}

type ConfirmPaymentRequest struct {
	PaidDate      string `json:"paid_date"`
	PaymentMethod string `json:"payment_method"`
}
