package models

import (
	"time"

	"github.com/google/uuid"
)

type Unit struct {
	ID         uuid.UUID `json:"uuid"`
	DisplayID  int64     `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Number     string    `json:"number"`
	Floor      int       `json:"floor"`
	UnitType   string    `json:"unit_type"`
	// IsAvailable is the manual vacancy flag. It only matters for units with
	// no contract; an active contract always wins (see internal/occupancy).
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateUnitRequest struct {
	PropertyID  uuid.UUID `json:"property_id"`
	Number      string    `json:"number"`
	Floor       int       `json:"floor"`
	UnitType    string    `json:"unit_type"`
	IsAvailable *bool     `json:"is_available"`
}

type UpdateUnitRequest struct {
	Number      string `json:"number"`
	Floor       int    `json:"floor"`
	UnitType    string `json:"unit_type"`
	IsAvailable *bool  `json:"is_available"`
}

// UnitOccupancy is the derived occupancy view for a single unit.
type UnitOccupancy struct {
	UnitNumber string     `json:"unit_number"`
	Occupied   bool       `json:"occupied"`
	ClientID   *uuid.UUID `json:"client_id,omitempty"`
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
}
