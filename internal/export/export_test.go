package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rental-backend/internal/models"
	"rental-backend/internal/schedule"
)

func sampleDataset() *Dataset {
	propertyID := uuid.New()
	clientID := uuid.New()
	contractID := uuid.New()
	return &Dataset{
		Properties: []*models.Property{
			{ID: propertyID, Name: "Marina Tower", Location: "Downtown", Type: "residential", Floors: 12},
		},
		Units: []*models.Unit{
			{ID: uuid.New(), PropertyID: propertyID, Number: "12A", Floor: 12, UnitType: "2BR", IsAvailable: false},
		},
		Clients: []*models.Client{
			{ID: clientID, Name: "Dana K", Email: "dana@example.com", Phone: "555-0101"},
		},
		Contracts: []*models.Contract{
			{
				ID: contractID, PropertyID: propertyID, ClientID: clientID, UnitNumber: "12A",
				StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
				TotalRent: 12000, PaymentDates: "01-01-2024, 01-07-2024", PaymentAmounts: "6000, 6000",
				Status: models.ContractStatusActive,
			},
		},
		Payments: []*models.Payment{
			{ID: uuid.New(), ContractID: contractID, Amount: 6000, DueDate: "2024-01-01", Status: models.PaymentStatusPaid},
		},
		Vaults: []*models.Vault{
			{ID: uuid.New(), Name: "Main", Currency: "USD", Balance: 5000},
		},
	}
}

func TestDatasetJSONStableShape(t *testing.T) {
	b, err := (&Dataset{}).JSON()
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &decoded))

	// Every collection key is present even when the tenant has no data.
	for _, key := range []string{
		"properties", "units", "clients", "contracts", "payments",
		"maintenance_requests", "vaults", "customers", "suppliers",
		"exchange_transactions",
	} {
		assert.Contains(t, decoded, key)
	}
}

func TestDatasetExcel(t *testing.T) {
	d := sampleDataset()
	b, err := d.Excel()
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Properties", "Units", "Clients", "Contracts", "Payments", "Vaults"} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1")

	name, err := f.GetCellValue("Properties", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Marina Tower", name)

	due, err := f.GetCellValue("Payments", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", due)
}

func TestContractStatementPDF(t *testing.T) {
	d := sampleDataset()
	paidOn := "2024-01-02"
	entries := []schedule.EffectivePayment{
		{DueDate: "01-01-2024", Amount: 6000, Status: models.PaymentStatusPaid, PaidDate: &paidOn},
		{DueDate: "01-07-2024", Amount: 6000, Status: models.PaymentStatusScheduled},
	}

	b, err := ContractStatement(d.Contracts[0], d.Clients[0], entries)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
