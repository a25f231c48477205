package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, userID uuid.UUID, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	customer := &models.Customer{
		UserID:   userID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IDNumber: req.IDNumber,
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, userID, id uuid.UUID) (*models.Customer, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*models.Customer, error) {
	return s.Repo.List(ctx, userID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, userID, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	customer, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.IDNumber = req.IDNumber

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
