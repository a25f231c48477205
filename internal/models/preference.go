package models

import (
	"time"

	"github.com/google/uuid"
)

// Preference holds per-user display settings, previously kept client-side.
type Preference struct {
	UserID    uuid.UUID `json:"user_id"`
	Currency  string    `json:"currency"`
	Theme     string    `json:"theme"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdatePreferenceRequest struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}
