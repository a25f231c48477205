package models

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID        uuid.UUID `json:"uuid"`
	DisplayID int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Floors    int       `json:"floors"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePropertyRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Floors   int    `json:"floors"`
}

type UpdatePropertyRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Floors   int    `json:"floors"`
}
