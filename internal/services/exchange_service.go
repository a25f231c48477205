package services

import (
	"context"
	"errors"
	"log"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type ExchangeService struct {
	Repo         *repositories.ExchangeRepository
	VaultRepo    *repositories.VaultRepository
	CustomerRepo *repositories.CustomerRepository
}

func NewExchangeService(repo *repositories.ExchangeRepository, vaultRepo *repositories.VaultRepository, customerRepo *repositories.CustomerRepository) *ExchangeService {
	return &ExchangeService{
		Repo:         repo,
		VaultRepo:    vaultRepo,
		CustomerRepo: customerRepo,
	}
}

// RecordExchange persists a buy/sell transaction and moves the vault
// balance in the same call: amount_in is added, amount_out subtracted.
// The two writes run sequentially without a transaction, in keeping with
// the rest of the mutation paths; a failed balance move after a recorded
// transaction is logged, not rolled back.
func (s *ExchangeService) RecordExchange(ctx context.Context, userID uuid.UUID, req *models.CreateExchangeRequest) (*models.ExchangeTransaction, error) {
	if req.Type != models.ExchangeTypeBuy && req.Type != models.ExchangeTypeSell {
		return nil, errors.New("type must be buy or sell")
	}
	if req.CurrencyIn == "" || req.CurrencyOut == "" {
		return nil, errors.New("currencies are required")
	}
	if req.AmountIn <= 0 || req.AmountOut <= 0 {
		return nil, errors.New("amounts must be positive")
	}

	vault, err := s.VaultRepo.Get(ctx, userID, req.VaultID)
	if err != nil {
		return nil, errors.New("vault not found")
	}
	if req.CustomerID != nil {
		if _, err := s.CustomerRepo.Get(ctx, userID, *req.CustomerID); err != nil {
			return nil, errors.New("customer not found")
		}
	}
	if vault.Balance < req.AmountOut {
		return nil, errors.New("insufficient vault balance")
	}

	transaction := &models.ExchangeTransaction{
		UserID:      userID,
		VaultID:     req.VaultID,
		CustomerID:  req.CustomerID,
		Type:        req.Type,
		CurrencyIn:  req.CurrencyIn,
		AmountIn:    req.AmountIn,
		CurrencyOut: req.CurrencyOut,
		AmountOut:   req.AmountOut,
		Rate:        req.Rate,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	if _, err := s.VaultRepo.AdjustBalance(ctx, userID, req.VaultID, req.AmountIn-req.AmountOut); err != nil {
		log.Printf("[Exchange] balance move failed for vault %s after transaction %s: %v",
			req.VaultID, transaction.ID, err)
	}

	return transaction, nil
}

func (s *ExchangeService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*models.ExchangeTransaction, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *ExchangeService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*models.ExchangeTransaction, error) {
	return s.Repo.List(ctx, userID)
}

func (s *ExchangeService) ListByVault(ctx context.Context, userID, vaultID uuid.UUID) ([]*models.ExchangeTransaction, error) {
	return s.Repo.ListByVault(ctx, userID, vaultID)
}

func (s *ExchangeService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return s.Repo.Delete(ctx, userID, id)
}
