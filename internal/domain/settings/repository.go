package settings

import (
	"context"
)

// SettingsRepository persists one configuration document per owner.
type SettingsRepository interface {
	// Get returns the owner's saved document, or ErrSettingsNotFound.
	Get(ctx context.Context, ownerID string) (Settings, error)

	// Upsert saves the whole document, replacing any previous one.
	Upsert(ctx context.Context, ownerID string, s Settings) error

	// Delete removes the saved document so defaults apply again.
	Delete(ctx context.Context, ownerID string) error
}
