package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	DB *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO suppliers(user_id, name, company, phone, email)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		s.UserID, s.Name, s.Company, s.Phone, s.Email,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	s.DisplayID = models.DisplayID(s.ID)
	return nil
}

func (r *SupplierRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Supplier, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, company, phone, email, created_at, updated_at
         FROM suppliers WHERE id=$1 AND user_id=$2`, id, userID)
	return scanSupplier(row)
}

func (r *SupplierRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Supplier, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, company, phone, email, created_at, updated_at
         FROM suppliers WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) Update(ctx context.Context, s *models.Supplier) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE suppliers SET name=$1, company=$2, phone=$3, email=$4, updated_at=NOW()
         WHERE id=$5 AND user_id=$6`,
		s.Name, s.Company, s.Phone, s.Email, s.ID, s.UserID)
	return err
}

func (r *SupplierRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM suppliers WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanSupplier(row rowScanner) (*models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Company, &s.Phone, &s.Email,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.DisplayID = models.DisplayID(s.ID)
	return &s, nil
}
