package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, user_id, contract_id, amount, due_date, paid_date, status,
         payment_method, check_number, bank_name, created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO payments(user_id, contract_id, amount, due_date, paid_date, status,
             payment_method, check_number, bank_name)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		p.UserID, p.ContractID, p.Amount, p.DueDate, p.PaidDate, p.Status,
		p.PaymentMethod, p.CheckNumber, p.BankName,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	p.DisplayID = models.DisplayID(p.ID)
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Payment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1 AND user_id=$2`, id, userID)
	return scanPayment(row)
}

func (r *PaymentRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *PaymentRepository) ListByContract(ctx context.Context, userID, contractID uuid.UUID) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
         WHERE user_id=$1 AND contract_id=$2 ORDER BY created_at`,
		userID, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByStatus returns every payment of a tenant in one of the given
// statuses, used by the rollover sweep.
func (r *PaymentRepository) ListByStatus(ctx context.Context, userID uuid.UUID, statuses []string) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
         WHERE user_id=$1 AND status=ANY($2) ORDER BY created_at`,
		userID, statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListAllByStatus is the cross-tenant variant for the background sweep.
func (r *PaymentRepository) ListAllByStatus(ctx context.Context, statuses []string) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE status=ANY($1) ORDER BY created_at`,
		statuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET amount=$1, due_date=$2, paid_date=$3, status=$4,
             payment_method=$5, check_number=$6, bank_name=$7, updated_at=NOW()
         WHERE id=$8 AND user_id=$9`,
		p.Amount, p.DueDate, p.PaidDate, p.Status, p.PaymentMethod,
		p.CheckNumber, p.BankName, p.ID, p.UserID)
	return err
}

func (r *PaymentRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func (r *PaymentRepository) DeleteByContract(ctx context.Context, userID, contractID uuid.UUID) error {
	_, err := r.DB.Exec(ctx,
		`DELETE FROM payments WHERE contract_id=$1 AND user_id=$2`, contractID, userID)
	return err
}

func (r *PaymentRepository) collect(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.ContractID, &p.Amount, &p.DueDate, &p.PaidDate,
		&p.Status, &p.PaymentMethod, &p.CheckNumber, &p.BankName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DisplayID = models.DisplayID(p.ID)
	return &p, nil
}
