package services

import (
	"context"
	"encoding/json"
	"errors"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/occupancy"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"

	"github.com/google/uuid"
)

type PropertyService struct {
	Repo         *repositories.PropertyRepository
	UnitRepo     *repositories.UnitRepository
	ContractRepo *repositories.ContractRepository
}

func NewPropertyService(repo *repositories.PropertyRepository, unitRepo *repositories.UnitRepository, contractRepo *repositories.ContractRepository) *PropertyService {
	return &PropertyService{
		Repo:         repo,
		UnitRepo:     unitRepo,
		ContractRepo: contractRepo,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, userID uuid.UUID, req *models.CreatePropertyRequest) (*models.Property, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	property := &models.Property{
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
		Type:     req.Type,
		Floors:   req.Floors,
	}

	if err := s.Repo.Create(ctx, property); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())

	return property, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, userID, id uuid.UUID) (*models.Property, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *PropertyService) ListProperties(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	return s.Repo.List(ctx, userID)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, userID, id uuid.UUID, req *models.UpdatePropertyRequest) (*models.Property, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	property, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	property.Name = req.Name
	property.Location = req.Location
	property.Type = req.Type
	property.Floors = req.Floors

	if err := s.Repo.Update(ctx, property); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())

	return property, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return nil
}

// PropertyOccupancy derives the occupancy of every unit of a property from
// its contracts. Stored availability flags do not participate; only
// contract state does. The derived map is cached per property; every
// contract or payment mutation drops the tenant's cached sections.
func (s *PropertyService) PropertyOccupancy(ctx context.Context, userID, propertyID uuid.UUID) ([]models.UnitOccupancy, error) {
	if _, err := s.Repo.Get(ctx, userID, propertyID); err != nil {
		return nil, err
	}

	section := "occupancy:" + propertyID.String()
	if data, ok := cache.GetCachedDashboard(ctx, userID.String(), section); ok {
		var cached []models.UnitOccupancy
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	units, err := s.UnitRepo.ListByProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.ContractRepo.ListByProperty(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	today := timeutil.Today()
	out := make([]models.UnitOccupancy, 0, len(units))
	for _, u := range units {
		out = append(out, occupancy.Derive(contracts, propertyID, u.Number, today))
	}

	if data, err := json.Marshal(out); err == nil {
		cache.CacheDashboard(ctx, userID.String(), section, data)
	}
	return out, nil
}
