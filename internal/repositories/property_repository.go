package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO properties(user_id, name, location, type, floors)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		p.UserID, p.Name, p.Location, p.Type, p.Floors,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	p.DisplayID = models.DisplayID(p.ID)
	return nil
}

func (r *PropertyRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Property, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, location, type, floors, created_at, updated_at
         FROM properties WHERE id=$1 AND user_id=$2`, id, userID)
	return scanProperty(row)
}

func (r *PropertyRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, location, type, floors, created_at, updated_at
         FROM properties WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE properties SET name=$1, location=$2, type=$3, floors=$4, updated_at=NOW()
         WHERE id=$5 AND user_id=$6`,
		p.Name, p.Location, p.Type, p.Floors, p.ID, p.UserID)
	return err
}

func (r *PropertyRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM properties WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Location, &p.Type, &p.Floors,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DisplayID = models.DisplayID(p.ID)
	return &p, nil
}
