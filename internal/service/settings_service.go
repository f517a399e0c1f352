package service

import (
	"context"
	"errors"

	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
)

// SettingsService reads and writes the settings singleton.
type SettingsService interface {
	// Get returns the current settings, or an empty record when none exists.
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, in model.SettingsInput) (*model.Settings, error)
}

type settingsServiceImpl struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return &model.Settings{}, nil
	}
	return settings, err
}

func (s *settingsServiceImpl) Save(ctx context.Context, in model.SettingsInput) (*model.Settings, error) {
	return s.repo.UpsertSettings(ctx, in)
}
