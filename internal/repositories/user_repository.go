package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO users(email, name, password_hash)
         VALUES($1, $2, $3)
         RETURNING id, created_at`,
		u.Email, u.Name, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return err
	}
	u.DisplayID = models.DisplayID(u.ID)
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
         FROM users WHERE id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.DisplayID = models.DisplayID(user.ID)
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, name, password_hash, created_at
         FROM users WHERE email=$1`, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.DisplayID = models.DisplayID(user.ID)
	return &user, nil
}
