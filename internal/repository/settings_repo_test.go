package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carsalesweblink/internal/sheets/sheetstest"
)

func TestSettingsRepository_UpdateAndGet(t *testing.T) {
	store := sheetstest.New()
	repo := NewSettingsRepository(store, testConfig())
	ctx := context.Background()

	err := repo.Update(ctx, map[string]string{
		"storefrontLogoUrl": "https://cdn.example/logo.png",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/logo.png", got["storefrontLogoUrl"])
	// Every known key is present even when unset.
	assert.Contains(t, got, "storefrontHeroVideoUrl")
	assert.Empty(t, got["storefrontHeroVideoUrl"])
}

func TestSettingsRepository_UpdateSameKeyRewritesRow(t *testing.T) {
	store := sheetstest.New()
	repo := NewSettingsRepository(store, testConfig())
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, map[string]string{"storefrontLogoUrl": "https://a.example/1.png"}))
	require.NoError(t, repo.Update(ctx, map[string]string{"storefrontLogoUrl": "https://a.example/2.png"}))

	assert.Equal(t, "https://a.example/2.png", store.Cell("Settings", 2, 2))
	assert.Empty(t, store.Cell("Settings", 3, 1), "same key must not grow a second row")
}

func TestSettingsRepository_RejectsUnknownKeyBeforeWriting(t *testing.T) {
	store := sheetstest.New()
	repo := NewSettingsRepository(store, testConfig())
	ctx := context.Background()

	err := repo.Update(ctx, map[string]string{
		"storefrontLogoUrl": "https://cdn.example/logo.png",
		"adminBackdoor":     "x",
	})
	assert.ErrorIs(t, err, ErrUnknownSettingKey)
	assert.Empty(t, store.Cell("Settings", 2, 1), "rejected batch writes nothing")
}

func TestSettingsRepository_DropsUnknownKeysOnRead(t *testing.T) {
	store := sheetstest.New()
	repo := NewSettingsRepository(store, testConfig())
	ctx := context.Background()

	// Provision, then plant a stray row.
	_, err := repo.Get(ctx)
	require.NoError(t, err)
	store.Seed("Settings", 2, [][]string{{"legacyKey", "junk", ""}})

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.NotContains(t, got, "legacyKey")
}
