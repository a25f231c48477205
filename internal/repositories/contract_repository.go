package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContractRepository struct {
	DB *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{DB: db}
}

const contractColumns = `id, user_id, property_id, client_id, unit_number, start_date, end_date,
         total_rent, payment_dates, payment_amounts, status, created_at, updated_at`

func (r *ContractRepository) Create(ctx context.Context, c *models.Contract) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO contracts(user_id, property_id, client_id, unit_number, start_date, end_date,
             total_rent, payment_dates, payment_amounts, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, created_at, updated_at`,
		c.UserID, c.PropertyID, c.ClientID, c.UnitNumber, c.StartDate, c.EndDate,
		c.TotalRent, c.PaymentDates, c.PaymentAmounts, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return nil
}

func (r *ContractRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Contract, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id=$1 AND user_id=$2`, id, userID)
	return scanContract(row)
}

func (r *ContractRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Contract, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByUnit returns contracts tied to a unit of a property. The unit is
// correlated by its number string, matched exactly.
func (r *ContractRepository) ListByUnit(ctx context.Context, userID, propertyID uuid.UUID, unitNumber string) ([]*models.Contract, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+contractColumns+` FROM contracts
         WHERE user_id=$1 AND property_id=$2 AND unit_number=$3
         ORDER BY created_at DESC`,
		userID, propertyID, unitNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ContractRepository) ListByProperty(ctx context.Context, userID, propertyID uuid.UUID) ([]*models.Contract, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+contractColumns+` FROM contracts
         WHERE user_id=$1 AND property_id=$2 ORDER BY created_at DESC`,
		userID, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ContractRepository) Update(ctx context.Context, c *models.Contract) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE contracts SET start_date=$1, end_date=$2, total_rent=$3,
             payment_dates=$4, payment_amounts=$5, status=$6, updated_at=NOW()
         WHERE id=$7 AND user_id=$8`,
		c.StartDate, c.EndDate, c.TotalRent, c.PaymentDates, c.PaymentAmounts,
		c.Status, c.ID, c.UserID)
	return err
}

// TerminateCascade marks the contract terminated and rolls its still-
// scheduled payments to pending in one transaction, so a partial terminate
// cannot leave orphaned scheduled rows behind.
func (r *ContractRepository) TerminateCascade(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx,
		`UPDATE contracts SET status=$1, updated_at=NOW() WHERE id=$2 AND user_id=$3`,
		models.ContractStatusTerminated, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx,
		`UPDATE payments SET status=$1, updated_at=NOW()
         WHERE contract_id=$2 AND user_id=$3 AND status=$4`,
		models.PaymentStatusPending, id, userID, models.PaymentStatusScheduled); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ContractRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM contracts WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func (r *ContractRepository) collect(rows pgx.Rows) ([]*models.Contract, error) {
	var contracts []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func scanContract(row rowScanner) (*models.Contract, error) {
	var c models.Contract
	err := row.Scan(&c.ID, &c.UserID, &c.PropertyID, &c.ClientID, &c.UnitNumber,
		&c.StartDate, &c.EndDate, &c.TotalRent, &c.PaymentDates, &c.PaymentAmounts,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return &c, nil
}
