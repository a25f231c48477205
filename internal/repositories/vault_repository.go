package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VaultRepository struct {
	DB *pgxpool.Pool
}

func NewVaultRepository(db *pgxpool.Pool) *VaultRepository {
	return &VaultRepository{DB: db}
}

func (r *VaultRepository) Create(ctx context.Context, v *models.Vault) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO vaults(user_id, name, currency, balance)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		v.UserID, v.Name, v.Currency, v.Balance,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return err
	}
	v.DisplayID = models.DisplayID(v.ID)
	return nil
}

func (r *VaultRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Vault, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, currency, balance, created_at, updated_at
         FROM vaults WHERE id=$1 AND user_id=$2`, id, userID)
	return scanVault(row)
}

func (r *VaultRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Vault, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, currency, balance, created_at, updated_at
         FROM vaults WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vaults []*models.Vault
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, err
		}
		vaults = append(vaults, v)
	}
	return vaults, rows.Err()
}

func (r *VaultRepository) Update(ctx context.Context, v *models.Vault) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE vaults SET name=$1, currency=$2, balance=$3, updated_at=NOW()
         WHERE id=$4 AND user_id=$5`,
		v.Name, v.Currency, v.Balance, v.ID, v.UserID)
	return err
}

// AdjustBalance applies a signed delta atomically, returning the new balance.
func (r *VaultRepository) AdjustBalance(ctx context.Context, userID, id uuid.UUID, delta float64) (float64, error) {
	var balance float64
	err := r.DB.QueryRow(ctx,
		`UPDATE vaults SET balance=balance+$1, updated_at=NOW()
         WHERE id=$2 AND user_id=$3
         RETURNING balance`,
		delta, id, userID,
	).Scan(&balance)
	return balance, err
}

func (r *VaultRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM vaults WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanVault(row rowScanner) (*models.Vault, error) {
	var v models.Vault
	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Currency, &v.Balance, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.DisplayID = models.DisplayID(v.ID)
	return &v, nil
}
