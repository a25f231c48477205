package models

import (
	"time"

	"github.com/google/uuid"
)

// Contract status constants
const (
	ContractStatusActive     = "active"
	ContractStatusTerminated = "terminated"
)

type Contract struct {
	ID         uuid.UUID `json:"uuid"`
	DisplayID  int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	ClientID   uuid.UUID `json:"client_id"`
	// UnitNumber correlates to a unit by string equality, not by foreign key.
	UnitNumber string    `json:"unit_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	// TotalRent is the rent for the whole contract period. It must equal the
	// sum of all payment amounts for the contract, within 0.01.
	TotalRent float64 `json:"total_rent"`
	// PaymentDates and PaymentAmounts are the raw comma-separated schedule
	// strings, kept verbatim for display fidelity. internal/schedule derives
	// the effective entries from them.
	PaymentDates   string    `json:"payment_dates"`
	PaymentAmounts string    `json:"payment_amounts"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateContractRequest struct {
	PropertyID     uuid.UUID `json:"property_id"`
	ClientID       uuid.UUID `json:"client_id"`
	UnitNumber     string    `json:"unit_number"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalRent      float64   `json:"total_rent"`
	PaymentDates   string    `json:"payment_dates"`
	PaymentAmounts string    `json:"payment_amounts"`
	// Override lets the user reserve a unit whose manual availability flag
	// is off. It never overrides an active contract.
	Override bool `json:"override"`
}

type UpdateContractRequest struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalRent      float64 `json:"total_rent"`
	PaymentDates   string  `json:"payment_dates"`
	PaymentAmounts string  `json:"payment_amounts"`
}
