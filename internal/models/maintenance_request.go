package models

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance request status constants
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
)

type MaintenanceRequest struct {
	ID          uuid.UUID  `json:"uuid"`
	DisplayID   int64      `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	PropertyID  uuid.UUID  `json:"property_id"`
	UnitNumber  string     `json:"unit_number"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateMaintenanceRequest struct {
	PropertyID  uuid.UUID `json:"property_id"`
	UnitNumber  string    `json:"unit_number"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
}

type UpdateMaintenanceRequest struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}
