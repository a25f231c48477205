package services

import (
	"context"

	"rental-backend/internal/models"
	"rental-backend/internal/repositories"

	"github.com/google/uuid"
)

type PreferenceService struct {
	Repo *repositories.PreferenceRepository
}

func NewPreferenceService(repo *repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{Repo: repo}
}

func (s *PreferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.Preference, error) {
	return s.Repo.Get(ctx, userID)
}

func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *models.UpdatePreferenceRequest) (*models.Preference, error) {
	current, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Currency != "" {
		current.Currency = req.Currency
	}
	if req.Theme != "" {
		current.Theme = req.Theme
	}
	if req.Language != "" {
		current.Language = req.Language
	}
	current.UserID = userID

	if err := s.Repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
