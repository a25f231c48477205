package services

import (
	"context"
	"errors"
	"fmt"

	"rental-backend/internal/cache"
	"rental-backend/internal/models"
	"rental-backend/internal/repositories"
	"rental-backend/internal/schedule"
	"rental-backend/internal/timeutil"

	"github.com/google/uuid"
)

type PaymentService struct {
	Repo         *repositories.PaymentRepository
	ContractRepo *repositories.ContractRepository
}

func NewPaymentService(repo *repositories.PaymentRepository, contractRepo *repositories.ContractRepository) *PaymentService {
	return &PaymentService{
		Repo:         repo,
		ContractRepo: contractRepo,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if _, err := s.ContractRepo.Get(ctx, userID, req.ContractID); err != nil {
		return nil, errors.New("contract not found")
	}

	status := req.Status
	if status == "" {
		status = models.PaymentStatusPending
	}

	payment := &models.Payment{
		UserID:        userID,
		ContractID:    req.ContractID,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		CheckNumber:   req.CheckNumber,
		BankName:      req.BankName,
	}

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error) {
	return s.Repo.Get(ctx, userID, id)
}

func (s *PaymentService) ListPayments(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	return s.Repo.List(ctx, userID)
}

func (s *PaymentService) ListByContract(ctx context.Context, userID, contractID uuid.UUID) ([]*models.Payment, error) {
	return s.Repo.ListByContract(ctx, userID, contractID)
}

// UpdatePayment applies an edit after checking the sum invariant: the
// contract's payment amounts, with the edit applied, must still add up to
// the contract total within tolerance. The check runs before any write.
func (s *PaymentService) UpdatePayment(ctx context.Context, userID, id uuid.UUID, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	contract, err := s.ContractRepo.Get(ctx, userID, payment.ContractID)
	if err != nil {
		return nil, err
	}

	siblings, err := s.Repo.ListByContract(ctx, userID, payment.ContractID)
	if err != nil {
		return nil, err
	}

	proposed := make([]*models.Payment, 0, len(siblings))
	for _, p := range siblings {
		if p.ID == payment.ID {
			edited := *p
			edited.Amount = req.Amount
			proposed = append(proposed, &edited)
			continue
		}
		proposed = append(proposed, p)
	}
	if !schedule.SumMatchesTotal(proposed, contract.TotalRent) {
		return nil, fmt.Errorf("payment amounts must sum to the contract total %.2f", contract.TotalRent)
	}

	payment.Amount = req.Amount
	if req.DueDate != "" {
		payment.DueDate = req.DueDate
	}
	if req.Status != "" {
		payment.Status = req.Status
	}
	payment.PaymentMethod = req.PaymentMethod
	payment.CheckNumber = req.CheckNumber
	payment.BankName = req.BankName

	if err := s.Repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return payment, nil
}

// Confirm marks a payment paid, stamping the paid date.
func (s *PaymentService) Confirm(ctx context.Context, userID, id uuid.UUID, req *models.ConfirmPaymentRequest) (*models.Payment, error) {
	payment, err := s.Repo.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == models.PaymentStatusPaid {
		return nil, errors.New("payment is already paid")
	}

	paidDate := req.PaidDate
	if paidDate == "" {
		paidDate = timeutil.Today().Format(timeutil.DateLayout)
	}

	payment.Status = models.PaymentStatusPaid
	payment.PaidDate = &paidDate
	if req.PaymentMethod != "" {
		payment.PaymentMethod = req.PaymentMethod
	}

	if err := s.Repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx, userID.String())
	return nil
}
