package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnitRepository struct {
	DB *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{DB: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *models.Unit) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO units(user_id, property_id, number, floor, unit_type, is_available)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		u.UserID, u.PropertyID, u.Number, u.Floor, u.UnitType, u.IsAvailable,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return err
	}
	u.DisplayID = models.DisplayID(u.ID)
	return nil
}

func (r *UnitRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Unit, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, property_id, number, floor, unit_type, is_available, created_at, updated_at
         FROM units WHERE id=$1 AND user_id=$2`, id, userID)
	return scanUnit(row)
}

func (r *UnitRepository) GetByNumber(ctx context.Context, userID, propertyID uuid.UUID, number string) (*models.Unit, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, property_id, number, floor, unit_type, is_available, created_at, updated_at
         FROM units WHERE user_id=$1 AND property_id=$2 AND number=$3`,
		userID, propertyID, number)
	return scanUnit(row)
}

func (r *UnitRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, property_id, number, floor, unit_type, is_available, created_at, updated_at
         FROM units WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *UnitRepository) ListByProperty(ctx context.Context, userID, propertyID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, property_id, number, floor, unit_type, is_available, created_at, updated_at
         FROM units WHERE user_id=$1 AND property_id=$2 ORDER BY number`,
		userID, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *UnitRepository) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE units SET number=$1, floor=$2, unit_type=$3, is_available=$4, updated_at=NOW()
         WHERE id=$5 AND user_id=$6`,
		u.Number, u.Floor, u.UnitType, u.IsAvailable, u.ID, u.UserID)
	return err
}

// SetAvailability flips the manual vacancy flag, used by the reservation
// and termination flows.
func (r *UnitRepository) SetAvailability(ctx context.Context, userID, id uuid.UUID, available bool) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE units SET is_available=$1, updated_at=NOW() WHERE id=$2 AND user_id=$3`,
		available, id, userID)
	return err
}

func (r *UnitRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM units WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanUnit(row rowScanner) (*models.Unit, error) {
	var u models.Unit
	err := row.Scan(&u.ID, &u.UserID, &u.PropertyID, &u.Number, &u.Floor, &u.UnitType,
		&u.IsAvailable, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.DisplayID = models.DisplayID(u.ID)
	return &u, nil
}
