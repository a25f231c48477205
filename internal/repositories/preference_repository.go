package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferenceRepository struct {
	DB *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Get returns the user's preferences, falling back to defaults when the
// row does not exist yet.
func (r *PreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT user_id, currency, theme, language, updated_at
         FROM preferences WHERE user_id=$1`, userID)

	var p models.Preference
	err := row.Scan(&p.UserID, &p.Currency, &p.Theme, &p.Language, &p.UpdatedAt)
	if err != nil {
		return &models.Preference{
			UserID:   userID,
			Currency: "USD",
			Theme:    "light",
			Language: "en",
		}, nil
	}
	return &p, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, p *models.Preference) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO preferences(user_id, currency, theme, language, updated_at)
         VALUES($1, $2, $3, $4, NOW())
         ON CONFLICT (user_id) DO UPDATE
         SET currency=$2, theme=$3, language=$4, updated_at=NOW()
         RETURNING updated_at`,
		p.UserID, p.Currency, p.Theme, p.Language,
	).Scan(&p.UpdatedAt)
}
