package models

import (
	"time"

	"github.com/google/uuid"
)

// Exchange transaction type constants
const (
	ExchangeTypeBuy  = "buy"
	ExchangeTypeSell = "sell"
)

type ExchangeTransaction struct {
	ID          uuid.UUID  `json:"uuid"`
	DisplayID   int64      `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	VaultID     uuid.UUID  `json:"vault_id"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
	Type        string     `json:"type"`
	CurrencyIn  string     `json:"currency_in"`
	AmountIn    float64    `json:"amount_in"`
	CurrencyOut string     `json:"currency_out"`
	AmountOut   float64    `json:"amount_out"`
	Rate        float64    `json:"rate"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateExchangeRequest struct {
	VaultID     uuid.UUID  `json:"vault_id"`
	CustomerID  *uuid.UUID `json:"customer_id"`
	Type        string     `json:"type"`
	CurrencyIn  string     `json:"currency_in"`
	AmountIn    float64    `json:"amount_in"`
	CurrencyOut string     `json:"currency_out"`
	AmountOut   float64    `json:"amount_out"`
	Rate        float64    `json:"rate"`
	Notes       string     `json:"notes"`
}
