package application

import (
	"context"
	"testing"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesDefaults(t *testing.T) {
	t.Parallel()

	svc := NewPreferencesService(&inMemoryPreferencesRepo{})

	prefs, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.False(t, prefs.ShowSecretID)
}

func TestPreferencesToggleThemeTwiceRestoresOriginal(t *testing.T) {
	t.Parallel()

	repo := &inMemoryPreferencesRepo{}
	svc := NewPreferencesService(repo)
	ctx := context.Background()

	first, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, first)

	second, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, second)
	assert.Equal(t, domain.ThemeDark, repo.theme)
}

func TestPreferencesSetThemeRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	repo := &inMemoryPreferencesRepo{theme: domain.ThemeLight}
	svc := NewPreferencesService(repo)

	_, err := svc.SetTheme(context.Background(), "sepia")
	require.ErrorIs(t, err, domain.ErrInvalidTheme)
	assert.Equal(t, domain.ThemeLight, repo.theme)
}

func TestPreferencesToggleShowSecretID(t *testing.T) {
	t.Parallel()

	svc := NewPreferencesService(&inMemoryPreferencesRepo{})
	ctx := context.Background()

	shown, err := svc.ToggleShowSecretID(ctx)
	require.NoError(t, err)
	assert.True(t, shown)

	shown, err = svc.ToggleShowSecretID(ctx)
	require.NoError(t, err)
	assert.False(t, shown)
}
