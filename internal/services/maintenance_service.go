package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/timeutil"

	"github.com/google/uuid"
)

type MaintenanceService struct {
	Repo         *repositories.MaintenanceRepository
	PropertyRepo *repositories.PropertyRepository
}

func NewMaintenanceService(repo *repositories.MaintenanceRepository, propertyRepo *repositories.PropertyRepository) *MaintenanceService {
	return &MaintenanceService{
		Repo:         repo,
		PropertyRepo: propertyRepo,
	}
}

func (s *MaintenanceService) CreateRequest(ctx context.Context, userID uuid.UUID, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if req.Description == "" {
		return nil, errors.New("description is required")
	}
	if _, err := s.PropertyRepo.Get(ctx, userID, req.PropertyID); err != nil {
		return nil, errors.New("property not found")
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	request := &models.MaintenanceRequest{
		UserID:      userID,
		PropertyID:  req.PropertyID,
		UnitNumber:  req.UnitNumber,
		Description: req.Description,
		Priority:    priority,
		Status:      models.MaintenanceStatusOpen,
	}

	if err := s.Repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *MaintenanceService) GetRequest(ctx context.Context, userID, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *MaintenanceService) ListRequests(ctx context.Context, userID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	return s.Repo.List(ctx, userID)
}

func (s *MaintenanceService) UpdateRequest(ctx context.Context, userID, id uuid.UUID, req *models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	request, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		request.Description = req.Description
	}
	if req.Priority != "" {
		request.Priority = req.Priority
	}
	if req.Status != "" {
		request.Status = req.Status
		if req.Status == models.MaintenanceStatusResolved && request.ResolvedAt == nil {
			now := timeutil.Now()
			request.ResolvedAt = &now
		}
	}

	if err := s.Repo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *MaintenanceService) DeleteRequest(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
