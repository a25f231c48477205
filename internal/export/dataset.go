package export

import (
	"encoding/json"

	"rental-backend/internal/models"
)

// Dataset is a tenant's full exportable state. Collections may be empty but
// are always present in the output so re-imports see a stable shape.
type Dataset struct {
	Properties           []*models.Property            `json:"properties"`
	Units                []*models.Unit                `json:"units"`
	Clients              []*models.Client              `json:"clients"`
	Contracts            []*models.Contract            `json:"contracts"`
	Payments             []*models.Payment             `json:"payments"`
	MaintenanceRequests  []*models.MaintenanceRequest  `json:"maintenance_requests"`
	Vaults               []*models.Vault               `json:"vaults"`
	Customers            []*models.Customer            `json:"customers"`
	Suppliers            []*models.Supplier            `json:"suppliers"`
	ExchangeTransactions []*models.ExchangeTransaction `json:"exchange_transactions"`
}

// JSON renders the dataset as indented JSON for download.
func (d *Dataset) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
