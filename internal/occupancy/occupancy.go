package occupancy

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"rental-backend/internal/models"
	"rental-backend/internal/timeutil"
)

// Reservation guard failures. These are returned, never panicked, and map
// to 409 at the handler edge.
var (
	ErrDuplicateReservation   = errors.New("client already holds an active contract on this unit")
	ErrConflictingReservation = errors.New("unit is already occupied by another active contract")
	ErrUnitUnavailable        = errors.New("unit is marked unavailable")
)

// ActiveOn reports whether a contract still counts for occupancy on the
// given day: not terminated, and its end date (normalized to midnight) has
// not passed.
func ActiveOn(c *models.Contract, today time.Time) bool {
	if c.Status == models.ContractStatusTerminated {
		return false
	}
	return !timeutil.StartOfDay(c.EndDate).Before(timeutil.StartOfDay(today))
}

// Derive determines occupancy for one unit from the contract set. The
// contract-derived answer is the single source of truth; the unit's stored
// availability flag never overrides an active contract. When several active
// contracts overlap on the same unit the first in iteration order wins,
// which is an accepted ambiguity.
func Derive(contracts []*models.Contract, propertyID uuid.UUID, unitNumber string, today time.Time) models.UnitOccupancy {
	occ := models.UnitOccupancy{UnitNumber: unitNumber}
	for _, c := range contracts {
		if c.PropertyID != propertyID || c.UnitNumber != unitNumber {
			continue
		}
		if !ActiveOn(c, today) {
			continue
		}
		occ.Occupied = true
		clientID := c.ClientID
		contractID := c.ID
		occ.ClientID = &clientID
		occ.ContractID = &contractID
		return occ
	}
	return occ
}

// CheckReservation is the advisory double-booking guard run before a
// contract is created. It rejects a duplicate reservation by the same
// client, a conflict with any other active contract, and a unit whose
// manual availability flag is off unless an override is requested. It takes
// no locks; two concurrent sessions can both pass before either commits.
func CheckReservation(contracts []*models.Contract, unit *models.Unit, propertyID uuid.UUID, unitNumber string, clientID uuid.UUID, override bool, today time.Time) error {
	for _, c := range contracts {
		if c.PropertyID != propertyID || c.UnitNumber != unitNumber {
			continue
		}
		if !ActiveOn(c, today) {
			continue
		}
		if c.ClientID == clientID {
			return ErrDuplicateReservation
		}
		return ErrConflictingReservation
	}
	// The manual flag only matters when no contract occupies the unit: it is
	// vacancy bookkeeping for units reserved without a contract.
	if unit != nil && !unit.IsAvailable && !override {
		return ErrUnitUnavailable
	}
	return nil
}
