package settings

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend/internal/domain/record"
	"github.com/pontolabs/ponto-backend/internal/domain/settings"
)

type fakeSettingsRepo struct {
	saved map[string]settings.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context, ownerID string) (settings.Settings, error) {
	s, ok := f.saved[ownerID]
	if !ok {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, ownerID string, s settings.Settings) error {
	if f.saved == nil {
		f.saved = make(map[string]settings.Settings)
	}
	f.saved[ownerID] = s
	return nil
}

func (f *fakeSettingsRepo) Delete(_ context.Context, ownerID string) error {
	delete(f.saved, ownerID)
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetSettings(t *testing.T) {
	ctx := authedContext(t, "owner-1")

	t.Run("falls back to defaults when nothing saved", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})

		got, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, settings.Default(), got)
	})

	t.Run("returns the saved document", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		cfg := settings.Default()
		cfg.Tolerances.General = 10
		require.NoError(t, repo.Upsert(ctx, "owner-1", cfg))

		svc := NewSettingsService(repo)
		got, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Tolerances.General)
	})

	t.Run("requires authentication claims", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})
		_, err := svc.GetSettings(context.Background())
		assert.Error(t, err)
	})
}

func TestSaveSettings(t *testing.T) {
	ctx := authedContext(t, "owner-1")

	t.Run("merges partial colors over defaults", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewSettingsService(repo)

		got, err := svc.SaveSettings(ctx, settings.UpdateSettingsRequest{
			Tolerances: settings.ToleranceConfig{General: 10},
			Colors: settings.StatusColorMap{
				record.StatusLate: "#dc2626",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 10, got.Tolerances.General)
		assert.Equal(t, "#dc2626", got.Colors[record.StatusLate])
		// Untouched statuses keep their default color.
		assert.Equal(t, "#22c55e", got.Colors[record.StatusOnTime])

		saved, err := repo.Get(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, got, saved)
	})

	t.Run("rejects a tolerance above an hour", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})
		_, err := svc.SaveSettings(ctx, settings.UpdateSettingsRequest{
			Tolerances: settings.ToleranceConfig{General: 61},
		})
		assert.Error(t, err)
	})

	t.Run("rejects a malformed color", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})
		_, err := svc.SaveSettings(ctx, settings.UpdateSettingsRequest{
			Tolerances: settings.ToleranceConfig{General: 5},
			Colors: settings.StatusColorMap{
				record.StatusLate: "red",
			},
		})
		assert.Error(t, err)
	})

	t.Run("accepts a zero per axis override", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewSettingsService(repo)
		zero := 0

		got, err := svc.SaveSettings(ctx, settings.UpdateSettingsRequest{
			Tolerances: settings.ToleranceConfig{General: 5, Entry: &zero},
		})
		require.NoError(t, err)
		assert.Equal(t, 0, got.Tolerances.ForEntry())
		assert.Equal(t, 5, got.Tolerances.ForExit())
	})
}

func TestResetSettings(t *testing.T) {
	ctx := authedContext(t, "owner-1")
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	cfg := settings.Default()
	cfg.Tolerances.General = 30
	require.NoError(t, repo.Upsert(ctx, "owner-1", cfg))

	got, err := svc.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)

	_, err = repo.Get(ctx, "owner-1")
	assert.ErrorIs(t, err, settings.ErrSettingsNotFound)
}
