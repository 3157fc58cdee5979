package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend/internal/domain/settings"
	"github.com/pontolabs/ponto-backend/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context, ownerID string) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var doc []byte
	err := q.QueryRow(ctx, "SELECT config FROM user_settings WHERE owner_id = $1", ownerID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var s settings.Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to decode settings document: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, ownerID string, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings document: %w", err)
	}

	query := `
		INSERT INTO user_settings (owner_id, config, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (owner_id)
		DO UPDATE SET config = EXCLUDED.config, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, ownerID, doc); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Delete implements settings.SettingsRepository.
func (r *settingsRepository) Delete(ctx context.Context, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM user_settings WHERE owner_id = $1", ownerID); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}
