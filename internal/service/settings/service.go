package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(repo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: repo}
}

func ownerFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	ownerID, ok := claims["user_id"].(string)
	if !ok || ownerID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return ownerID, nil
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.Settings, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	saved, err := s.SettingsRepository.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return saved, nil
}

// SaveSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) SaveSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	merged := req.Merge()
	if err := s.SettingsRepository.Upsert(ctx, ownerID, merged); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return merged, nil
}

// ResetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) ResetSettings(ctx context.Context) (settings.Settings, error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	if err := s.SettingsRepository.Delete(ctx, ownerID); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to reset settings: %w", err)
	}

	return settings.Default(), nil
}
