package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExchangeRepository struct {
	DB *pgxpool.Pool
}

func NewExchangeRepository(db *pgxpool.Pool) *ExchangeRepository {
	return &ExchangeRepository{DB: db}
}

const exchangeColumns = `id, user_id, vault_id, customer_id, type, currency_in, amount_in,
         currency_out, amount_out, rate, notes, created_at`

func (r *ExchangeRepository) Create(ctx context.Context, t *models.ExchangeTransaction) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO exchange_transactions(user_id, vault_id, customer_id, type,
             currency_in, amount_in, currency_out, amount_out, rate, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, created_at`,
		t.UserID, t.VaultID, t.CustomerID, t.Type, t.CurrencyIn, t.AmountIn,
		t.CurrencyOut, t.AmountOut, t.Rate, t.Notes,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return err
	}
	t.DisplayID = models.DisplayID(t.ID)
	return nil
}

func (r *ExchangeRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.ExchangeTransaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+exchangeColumns+` FROM exchange_transactions WHERE id=$1 AND user_id=$2`, id, userID)
	return scanExchange(row)
}

func (r *ExchangeRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.ExchangeTransaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+exchangeColumns+` FROM exchange_transactions
         WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ExchangeRepository) ListByVault(ctx context.Context, userID, vaultID uuid.UUID) ([]*models.ExchangeTransaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+exchangeColumns+` FROM exchange_transactions
         WHERE user_id=$1 AND vault_id=$2 ORDER BY created_at DESC`,
		userID, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ExchangeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM exchange_transactions WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func (r *ExchangeRepository) collect(rows pgx.Rows) ([]*models.ExchangeTransaction, error) {
	var transactions []*models.ExchangeTransaction
	for rows.Next() {
		t, err := scanExchange(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func scanExchange(row rowScanner) (*models.ExchangeTransaction, error) {
	var t models.ExchangeTransaction
	err := row.Scan(&t.ID, &t.UserID, &t.VaultID, &t.CustomerID, &t.Type,
		&t.CurrencyIn, &t.AmountIn, &t.CurrencyOut, &t.AmountOut, &t.Rate,
		&t.Notes, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.DisplayID = models.DisplayID(t.ID)
	return &t, nil
}
