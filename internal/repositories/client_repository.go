package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO clients(user_id, name, email, phone, id_number, address)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Email, c.Phone, c.IDNumber, c.Address,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return nil
}

func (r *ClientRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, email, phone, id_number, address, created_at, updated_at
         FROM clients WHERE id=$1 AND user_id=$2`, id, userID)
	return scanClient(row)
}

func (r *ClientRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, email, phone, id_number, address, created_at, updated_at
         FROM clients WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET name=$1, email=$2, phone=$3, id_number=$4, address=$5, updated_at=NOW()
         WHERE id=$6 AND user_id=$7`,
		c.Name, c.Email, c.Phone, c.IDNumber, c.Address, c.ID, c.UserID)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanClient(row rowScanner) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.IDNumber,
		&c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return &c, nil
}
