package services

import (
	"context"

	"rental-backend/internal/export"
	"rental-backend/internal/repositories"
	"rental-backend/internal/schedule"

	"github.com/google/uuid"
)

type ExportService struct {
	PropertyRepo    *repositories.PropertyRepository
	UnitRepo        *repositories.UnitRepository
	ClientRepo      *repositories.ClientRepository
	ContractRepo    *repositories.ContractRepository
	PaymentRepo     *repositories.PaymentRepository
	MaintenanceRepo *repositories.MaintenanceRepository
	VaultRepo       *repositories.VaultRepository
	CustomerRepo    *repositories.CustomerRepository
	SupplierRepo    *repositories.SupplierRepository
	ExchangeRepo    *repositories.ExchangeRepository
}

func NewExportService(
	propertyRepo *repositories.PropertyRepository,
	unitRepo *repositories.UnitRepository,
	clientRepo *repositories.ClientRepository,
	contractRepo *repositories.ContractRepository,
	paymentRepo *repositories.PaymentRepository,
	maintenanceRepo *repositories.MaintenanceRepository,
	vaultRepo *repositories.VaultRepository,
	customerRepo *repositories.CustomerRepository,
	supplierRepo *repositories.SupplierRepository,
	exchangeRepo *repositories.ExchangeRepository,
) *ExportService {
	return &ExportService{
		PropertyRepo:    propertyRepo,
		UnitRepo:        unitRepo,
		ClientRepo:      clientRepo,
		ContractRepo:    contractRepo,
		PaymentRepo:     paymentRepo,
		MaintenanceRepo: maintenanceRepo,
		VaultRepo:       vaultRepo,
		CustomerRepo:    customerRepo,
		SupplierRepo:    supplierRepo,
		ExchangeRepo:    exchangeRepo,
	}
}

// Dataset gathers the tenant's entire state for export.
func (s *ExportService) Dataset(ctx context.Context, userID uuid.UUID) (*export.Dataset, error) {
	d := &export.Dataset{}
	var err error

	if d.Properties, err = s.PropertyRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Units, err = s.UnitRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Clients, err = s.ClientRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Contracts, err = s.ContractRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Payments, err = s.PaymentRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.MaintenanceRequests, err = s.MaintenanceRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Vaults, err = s.VaultRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Customers, err = s.CustomerRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.Suppliers, err = s.SupplierRepo.List(ctx, userID); err != nil {
		return nil, err
	}
	if d.ExchangeTransactions, err = s.ExchangeRepo.List(ctx, userID); err != nil {
		return nil, err
	}

	return d, nil
}

// Statement renders the contract statement PDF from the reconciled
// schedule, so the document shows exactly what the schedule endpoint
// reports.
func (s *ExportService) Statement(ctx context.Context, userID, contractID uuid.UUID) ([]byte, error) {
	contract, err := s.ContractRepo.Get(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}
	client, err := s.ClientRepo.Get(ctx, userID, contract.ClientID)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByContract(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}

	entries := schedule.Reconcile(schedule.Parse(contract.PaymentDates, contract.PaymentAmounts), payments)
	return export.ContractStatement(contract, client, entries)
}
