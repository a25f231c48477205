package services

import (
	"context"
	"errors"
	"log"
	"math"

	"rental-backend/internal/cache"
	"rental-backend/internal/metrics"
	"rental-backend/internal/models"
	"rental-backend/internal/occupancy"
	"rental-backend/internal/repositories"
	"rental-backend/internal/schedule"
	"rental-backend/internal/timeutil"

	"github.com/google/uuid"
)

type ContractService struct {
	Repo        *repositories.ContractRepository
	UnitRepo    *repositories.UnitRepository
	ClientRepo  *repositories.ClientRepository
	PaymentRepo *repositories.PaymentRepository
}

func NewContractService(repo *repositories.ContractRepository, unitRepo *repositories.UnitRepository, clientRepo *repositories.ClientRepository, paymentRepo *repositories.PaymentRepository) *ContractService {
	return &ContractService{
		Repo:        repo,
		UnitRepo:    unitRepo,
		ClientRepo:  clientRepo,
		PaymentRepo: paymentRepo,
	}
}

// CreateContract runs the reservation guard, persists the contract, flips
// the unit's availability flag and materializes one scheduled payment row
// per parsed schedule entry. The guard is advisory: it takes no lock, so
// two concurrent sessions can both pass before either commits.
func (s *ContractService) CreateContract(ctx context.Context, userID uuid.UUID, req *models.CreateContractRequest) (*models.Contract, error) {
	if req.UnitNumber == "" {
		return nil, errors.New("unit number is required")
	}
	if _, err := s.ClientRepo.Get(ctx, userID, req.ClientID); err != nil {
		return nil, errors.New("client not found")
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("invalid start date")
	}
	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.New("invalid end date")
	}

	existing, err := s.Repo.ListByUnit(ctx, userID, req.PropertyID, req.UnitNumber)
	if err != nil {
		return nil, err
	}

	// The unit row is optional: contracts correlate to units by number
	// string, and the guard only needs the row for the manual flag.
	unit, _ := s.UnitRepo.GetByNumber(ctx, userID, req.PropertyID, req.UnitNumber)

	if err := occupancy.CheckReservation(existing, unit, req.PropertyID, req.UnitNumber, req.ClientID, req.Override, timeutil.Today()); err != nil {
		switch {
		case errors.Is(err, occupancy.ErrDuplicateReservation):
			metrics.ReservationRejections.WithLabelValues("duplicate").Inc()
		case errors.Is(err, occupancy.ErrConflictingReservation):
			metrics.ReservationRejections.WithLabelValues("conflict").Inc()
		case errors.Is(err, occupancy.ErrUnitUnavailable):
			metrics.ReservationRejections.WithLabelValues("unavailable").Inc()
		}
		return nil, err
	}

	contract := &models.Contract{
		UserID:         userID,
		PropertyID:     req.PropertyID,
		ClientID:       req.ClientID,
		UnitNumber:     req.UnitNumber,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalRent:      req.TotalRent,
		PaymentDates:   req.PaymentDates,
		PaymentAmounts: req.PaymentAmounts,
		Status:         models.ContractStatusActive,
	}

	if err := s.Repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	// Secondary writes past this point are logged, not rolled back.
	if unit != nil {
		if err := s.UnitRepo.SetAvailability(ctx, userID, unit.ID, false); err != nil {
			log.Printf("[Contract] flag flip failed for unit %s: %v", unit.ID, err)
		}
	}
	s.materializePayments(ctx, contract)
	cache.InvalidateDashboard(ctx, userID.String())

	return contract, nil
}

// materializePayments creates one scheduled payment row per schedule entry.
// Stored due dates use the canonical form so later date-matching is exact;
// a failed row is logged and skipped.
func (s *ContractService) materializePayments(ctx context.Context, c *models.Contract) {
	for _, e := range schedule.Parse(c.PaymentDates, c.PaymentAmounts) {
		amount := e.Amount
		if math.IsNaN(amount) {
			amount = 0
		}
		p := &models.Payment{
			UserID:     c.UserID,
			ContractID: c.ID,
			Amount:     amount,
			DueDate:    e.Canonical,
			Status:     models.PaymentStatusScheduled,
		}
		if err := s.PaymentRepo.Create(ctx, p); err != nil {
			log.Printf("[Contract] schedule row %d for contract %s not created: %v", e.Index, c.ID, err)
		}
	}
}

func (s *ContractService) GetContract(ctx context.Context, userID, id uuid.UUID) (*models.Contract, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *ContractService) ListContracts(ctx context.Context, userID uuid.UUID) ([]*models.Contract, error) {
	return s.Repo.List(ctx, userID)
}

func (s *ContractService) UpdateContract(ctx context.Context, userID, id uuid.UUID, req *models.UpdateContractRequest) (*models.Contract, error) {
	contract, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != "" {
		startDate, err := timeutil.ParseDate(req.StartDate)
		if err != nil {
			return nil, errors.New("invalid start date")
		}
		contract.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := timeutil.ParseDate(req.EndDate)
		if err != nil {
			return nil, errors.New("invalid end date")
		}
		contract.EndDate = endDate
	}
	contract.TotalRent = req.TotalRent
	contract.PaymentDates = req.PaymentDates
	contract.PaymentAmounts = req.PaymentAmounts

	if err := s.Repo.Update(ctx, contract); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return contract, nil
}

// Terminate marks the contract terminated and rolls its still-scheduled
// payments to pending for final settlement, both in one transaction. The
// unit's manual flag release stays best-effort outside the transaction:
// the flag is advisory bookkeeping, not a source of truth.
func (s *ContractService) Terminate(ctx context.Context, userID, id uuid.UUID) (*models.Contract, error) {
	contract, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if contract.Status == models.ContractStatusTerminated {
		return nil, errors.New("contract is already terminated")
	}

	if err := s.Repo.TerminateCascade(ctx, userID, id); err != nil {
		return nil, err
	}
	contract.Status = models.ContractStatusTerminated

	if unit, err := s.UnitRepo.GetByNumber(ctx, userID, contract.PropertyID, contract.UnitNumber); err == nil {
		if err := s.UnitRepo.SetAvailability(ctx, userID, unit.ID, true); err != nil {
			log.Printf("[Contract] flag release failed for unit %s: %v", unit.ID, err)
		}
	}

	cache.InvalidateDashboard(ctx, userID.String())
	return contract, nil
}

func (s *ContractService) DeleteContract(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.PaymentRepo.DeleteByContract(ctx, userID, id); err != nil {
		log.Printf("[Contract] payment cleanup failed for contract %s: %v", id, err)
	}
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return nil
}

// Schedule reconciles the contract's declared schedule against its
// persisted payments and returns the effective entries.
func (s *ContractService) Schedule(ctx context.Context, userID, id uuid.UUID) ([]schedule.EffectivePayment, error) {
	contract, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByContract(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	entries := schedule.Parse(contract.PaymentDates, contract.PaymentAmounts)
	return schedule.Reconcile(entries, payments), nil
}
