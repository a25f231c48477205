package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepository struct {
	DB *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{DB: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO maintenance_requests(user_id, property_id, unit_number, description, priority, status)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, reported_at, created_at, updated_at`,
		m.UserID, m.PropertyID, m.UnitNumber, m.Description, m.Priority, m.Status,
	).Scan(&m.ID, &m.ReportedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return err
	}
	m.DisplayID = models.DisplayID(m.ID)
	return nil
}

func (r *MaintenanceRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.MaintenanceRequest, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, property_id, unit_number, description, priority, status,
             reported_at, resolved_at, created_at, updated_at
         FROM maintenance_requests WHERE id=$1 AND user_id=$2`, id, userID)
	return scanMaintenance(row)
}

func (r *MaintenanceRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, property_id, unit_number, description, priority, status,
             reported_at, resolved_at, created_at, updated_at
         FROM maintenance_requests WHERE user_id=$1 ORDER BY reported_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE maintenance_requests SET description=$1, priority=$2, status=$3,
             resolved_at=$4, updated_at=NOW()
         WHERE id=$5 AND user_id=$6`,
		m.Description, m.Priority, m.Status, m.ResolvedAt, m.ID, m.UserID)
	return err
}

func (r *MaintenanceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanMaintenance(row rowScanner) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := row.Scan(&m.ID, &m.UserID, &m.PropertyID, &m.UnitNumber, &m.Description,
		&m.Priority, &m.Status, &m.ReportedAt, &m.ResolvedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.DisplayID = models.DisplayID(m.ID)
	return &m, nil
}
