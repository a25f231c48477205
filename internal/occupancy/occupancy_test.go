package occupancy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

var (
	propertyA = uuid.New()
	propertyB = uuid.New()
	clientX   = uuid.New()
	clientY   = uuid.New()
)

func day(value string) time.Time {
	t, err := timeutil.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

func contract(property uuid.UUID, unit string, client uuid.UUID, end string, status string) *models.Contract {
	return &models.Contract{
		ID:         uuid.New(),
		PropertyID: property,
		ClientID:   client,
		UnitNumber: unit,
		StartDate:  day("2024-01-01"),
		EndDate:    day(end),
		Status:     status,
	}
}

func TestDeriveOccupied(t *testing.T) {
	c := contract(propertyA, "12A", clientX, "2024-12-31", models.ContractStatusActive)
	occ := Derive([]*models.Contract{c}, propertyA, "12A", day("2024-06-15"))

	assert.True(t, occ.Occupied)
	require.NotNil(t, occ.ClientID)
	assert.Equal(t, clientX, *occ.ClientID)
	require.NotNil(t, occ.ContractID)
	assert.Equal(t, c.ID, *occ.ContractID)
}

func TestDeriveEndDateBoundary(t *testing.T) {
	// Occupied through the end date itself; moving the end date one day
	// before today flips occupancy with no other change.
	c := contract(propertyA, "12A", clientX, "2024-06-15", models.ContractStatusActive)
	today := day("2024-06-15")

	assert.True(t, Derive([]*models.Contract{c}, propertyA, "12A", today).Occupied)

	c.EndDate = day("2024-06-14")
	assert.False(t, Derive([]*models.Contract{c}, propertyA, "12A", today).Occupied)
}

func TestDeriveIgnoresTerminated(t *testing.T) {
	c := contract(propertyA, "12A", clientX, "2099-01-01", models.ContractStatusTerminated)
	occ := Derive([]*models.Contract{c}, propertyA, "12A", day("2024-06-15"))
	assert.False(t, occ.Occupied)
	assert.Nil(t, occ.ClientID)
}

func TestDeriveMatchesUnitByExactString(t *testing.T) {
	c := contract(propertyA, "12A", clientX, "2099-01-01", models.ContractStatusActive)
	contracts := []*models.Contract{c}

	assert.False(t, Derive(contracts, propertyA, "12a", day("2024-06-15")).Occupied)
	assert.False(t, Derive(contracts, propertyB, "12A", day("2024-06-15")).Occupied)
}

func TestDeriveFirstMatchWins(t *testing.T) {
	first := contract(propertyA, "12A", clientX, "2099-01-01", models.ContractStatusActive)
	second := contract(propertyA, "12A", clientY, "2099-01-01", models.ContractStatusActive)

	occ := Derive([]*models.Contract{first, second}, propertyA, "12A", day("2024-06-15"))
	require.NotNil(t, occ.ClientID)
	assert.Equal(t, clientX, *occ.ClientID)
}

func TestCheckReservationConflicts(t *testing.T) {
	today := day("2024-06-15")
	occupied := contract(propertyA, "12A", clientX, "2024-12-31", models.ContractStatusActive)
	unit := &models.Unit{PropertyID: propertyA, Number: "12A", IsAvailable: true}

	t.Run("duplicate by same client", func(t *testing.T) {
		err := CheckReservation([]*models.Contract{occupied}, unit, propertyA, "12A", clientX, false, today)
		assert.ErrorIs(t, err, ErrDuplicateReservation)
	})

	t.Run("conflict with other client", func(t *testing.T) {
		err := CheckReservation([]*models.Contract{occupied}, unit, propertyA, "12A", clientY, false, today)
		assert.ErrorIs(t, err, ErrConflictingReservation)
	})

	t.Run("terminated contract does not block", func(t *testing.T) {
		gone := contract(propertyA, "12A", clientX, "2024-12-31", models.ContractStatusTerminated)
		err := CheckReservation([]*models.Contract{gone}, unit, propertyA, "12A", clientY, false, today)
		assert.NoError(t, err)
	})

	t.Run("expired contract does not block", func(t *testing.T) {
		expired := contract(propertyA, "12A", clientX, "2024-01-31", models.ContractStatusActive)
		err := CheckReservation([]*models.Contract{expired}, unit, propertyA, "12A", clientY, false, today)
		assert.NoError(t, err)
	})
}

func TestCheckReservationManualFlag(t *testing.T) {
	today := day("2024-06-15")
	unit := &models.Unit{PropertyID: propertyA, Number: "12A", IsAvailable: false}

	err := CheckReservation(nil, unit, propertyA, "12A", clientX, false, today)
	assert.ErrorIs(t, err, ErrUnitUnavailable)

	// Override clears the manual flag but never an active contract.
	assert.NoError(t, CheckReservation(nil, unit, propertyA, "12A", clientX, true, today))

	occupied := contract(propertyA, "12A", clientY, "2099-01-01", models.ContractStatusActive)
	err = CheckReservation([]*models.Contract{occupied}, unit, propertyA, "12A", clientX, true, today)
	assert.ErrorIs(t, err, ErrConflictingReservation)
}
