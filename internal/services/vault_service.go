package services

import (
	"context"
	"errors"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type VaultService struct {
	Repo *repositories.VaultRepository
}

func NewVaultService(repo *repositories.VaultRepository) *VaultService {
	return &VaultService{Repo: repo}
}

func (s *VaultService) CreateVault(ctx context.Context, userID uuid.UUID, req *models.CreateVaultRequest) (*models.Vault, error) {
	if req.Name == "" || req.Currency == "" {
		return nil, errors.New("name and currency are required")
	}

	vault := &models.Vault{
		UserID:   userID,
		Name:     req.Name,
		Currency: req.Currency,
		Balance:  req.Balance,
	}

	if err := s.Repo.Create(ctx, vault); err != nil {
		return nil, err
	}
	return vault, nil
}

func (s *VaultService) GetVault(ctx context.Context, userID, id uuid.UUID) (*models.Vault, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *VaultService) ListVaults(ctx context.Context, userID uuid.UUID) ([]*models.Vault, error) {
	return s.Repo.List(ctx, userID)
}

func (s *VaultService) UpdateVault(ctx context.Context, userID, id uuid.UUID, req *models.UpdateVaultRequest) (*models.Vault, error) {
	vault, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		vault.Name = req.Name
	}
	if req.Currency != "" {
		vault.Currency = req.Currency
	}
	vault.Balance = req.Balance

	if err := s.Repo.Update(ctx, vault); err != nil {
		return nil, err
	}
	return vault, nil
}

func (s *VaultService) DeleteVault(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
