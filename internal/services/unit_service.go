package services

import (
	"context"
	"errors"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/occupancy"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"

	"github.com/google/uuid"
)

type UnitService struct {
	Repo         *repositories.UnitRepository
	PropertyRepo *repositories.PropertyRepository
	ContractRepo *repositories.ContractRepository
}

func NewUnitService(repo *repositories.UnitRepository, propertyRepo *repositories.PropertyRepository, contractRepo *repositories.ContractRepository) *UnitService {
	return &UnitService{
		Repo:         repo,
		PropertyRepo: propertyRepo,
		ContractRepo: contractRepo,
	}
}

func (s *UnitService) CreateUnit(ctx context.Context, userID uuid.UUID, req *models.CreateUnitRequest) (*models.Unit, error) {
	if req.Number == "" {
		return nil, errors.New("unit number is required")
	}

	// The unit must belong to one of the user's properties
	if _, err := s.PropertyRepo.Get(ctx, userID, req.PropertyID); err != nil {
		return nil, errors.New("property not found")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	unit := &models.Unit{
		UserID:      userID,
		PropertyID:  req.PropertyID,
		Number:      req.Number,
		Floor:       req.Floor,
		UnitType:    req.UnitType,
		IsAvailable: available,
	}

	if err := s.Repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return unit, nil
}

func (s *UnitService) GetUnit(ctx context.Context, userID, id uuid.UUID) (*models.Unit, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *UnitService) ListUnits(ctx context.Context, userID uuid.UUID) ([]*models.Unit, error) {
	return s.Repo.List(ctx, userID)
}

func (s *UnitService) ListByProperty(ctx context.Context, userID, propertyID uuid.UUID) ([]*models.Unit, error) {
	return s.Repo.ListByProperty(ctx, userID, propertyID)
}

func (s *UnitService) UpdateUnit(ctx context.Context, userID, id uuid.UUID, req *models.UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Number != "" {
		unit.Number = req.Number
	}
	unit.Floor = req.Floor
	unit.UnitType = req.UnitType
	if req.IsAvailable != nil {
		unit.IsAvailable = *req.IsAvailable
	}

	if err := s.Repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return unit, nil
}

func (s *UnitService) DeleteUnit(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return nil
}

// UnitOccupancy derives occupancy for a single unit from its contracts.
func (s *UnitService) UnitOccupancy(ctx context.Context, userID, id uuid.UUID) (*models.UnitOccupancy, error) {
	unit, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	contracts, err := s.ContractRepo.ListByUnit(ctx, userID, unit.PropertyID, unit.Number)
	if err != nil {
		return nil, err
	}

	occ := occupancy.Derive(contracts, unit.PropertyID, unit.Number, timeutil.Today())
	return &occ, nil
}
