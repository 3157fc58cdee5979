package settings

import (
	"context"
)

// SettingsService defines business logic for tolerance and color settings
type SettingsService interface {
	// GetSettings returns the owner's settings, falling back to defaults
	GetSettings(ctx context.Context) (Settings, error)

	// SaveSettings validates and stores a new configuration document
	SaveSettings(ctx context.Context, req UpdateSettingsRequest) (Settings, error)

	// ResetSettings removes the saved document and returns the defaults
	ResetSettings(ctx context.Context) (Settings, error)
}
