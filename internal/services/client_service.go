package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) CreateClient(ctx context.Context, userID uuid.UUID, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	client := &models.Client{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		Address:  req.Address,
	}

	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, userID, id uuid.UUID) (*models.Client, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *ClientService) ListClients(ctx context.Context, userID uuid.UUID) ([]*models.Client, error) {
	return s.Repo.List(ctx, userID)
}

func (s *ClientService) UpdateClient(ctx context.Context, userID, id uuid.UUID, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	client, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.IDNumber = req.IDNumber
	client.Address = req.Address

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
