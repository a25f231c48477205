package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO customers(user_id, name, phone, email, id_number)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Phone, c.Email, c.IDNumber,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return nil
}

func (r *CustomerRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, name, phone, email, id_number, created_at, updated_at
         FROM customers WHERE id=$1 AND user_id=$2`, id, userID)
	return scanCustomer(row)
}

func (r *CustomerRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, name, phone, email, id_number, created_at, updated_at
         FROM customers WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE customers SET name=$1, phone=$2, email=$3, id_number=$4, updated_at=NOW()
         WHERE id=$5 AND user_id=$6`,
		c.Name, c.Phone, c.Email, c.IDNumber, c.ID, c.UserID)
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1 AND user_id=$2`, id, userID)
	return err
}

func scanCustomer(row rowScanner) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.IDNumber,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.DisplayID = models.DisplayID(c.ID)
	return &c, nil
}
