package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type SupplierService struct {
	Repo *repositories.SupplierRepository
}

func NewSupplierService(repo *repositories.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, userID uuid.UUID, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	supplier := &models.Supplier{
		UserID:  userID,
		Name:    req.Name,
		Company: req.Company,
		Phone:   req.Phone,
		Email:   req.Email,
	}

	if err := s.Repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, userID, id uuid.UUID) (*models.Supplier, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context, userID uuid.UUID) ([]*models.Supplier, error) {
	return s.Repo.List(ctx, userID)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, userID, id uuid.UUID, req *models.UpdateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	supplier, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Company = req.Company
	supplier.Phone = req.Phone
	supplier.Email = req.Email

	if err := s.Repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
