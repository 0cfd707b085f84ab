package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, statePath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(StatePathKey, statePath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRecentSessionsRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	expiry := 1893456000.5
	entries := []domain.SessionHistoryEntry{
		{
			SessionID:  "AB123_one",
			Timestamp:  time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
			Domain:     "one.example",
			ExpiryDate: &expiry,
			Status:     domain.SessionStatusActive,
		},
		{
			SessionID: "AB123_two",
			Timestamp: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
			Domain:    "two.example",
			Status:    domain.SessionStatusExpired,
		},
	}

	require.NoError(t, repo.SaveRecent(context.Background(), entries))

	got, err := repo.ListRecent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRepositoryLastSessionRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	empty, err := repo.GetLast(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty.SessionID)

	expiry := 1893456000.0
	last := domain.LastSession{
		SessionID: "AB123_xyz",
		Timestamp: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Status:    domain.SessionStatusActive,
		Bundle: domain.SessionBundle{
			URL: "https://example.com/home",
			Cookies: []domain.Cookie{
				{Domain: ".example.com", Name: "sid", Value: "1", Path: "/", Secure: true, HTTPOnly: true, ExpirationDate: &expiry, SameSite: domain.SameSiteLax},
				{Domain: "example.com", Name: "tmp", Value: "2", Session: true, HostOnly: true, StoreID: "0"},
			},
		},
	}

	require.NoError(t, repo.SaveLast(context.Background(), last))

	got, err := repo.GetLast(context.Background())
	require.NoError(t, err)
	assert.Equal(t, last, got)
}

func TestRepositoryPreferencesSurviveHistoryWrites(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repo := newTestRepository(t, statePath)
	ctx := context.Background()

	require.NoError(t, repo.SaveTheme(ctx, domain.ThemeLight))
	require.NoError(t, repo.SaveShowSecretID(ctx, true))
	require.NoError(t, repo.SaveRecent(ctx, []domain.SessionHistoryEntry{{SessionID: "AB123_a", Status: domain.SessionStatusActive}}))

	reopened := newTestRepository(t, statePath)
	theme, err := reopened.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	show, err := reopened.GetShowSecretID(ctx)
	require.NoError(t, err)
	assert.True(t, show)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Regexp(t, `session_vault_theme = ['"]light['"]`, string(data))
	assert.Contains(t, string(data), "session_vault_show_secret = true")
	assert.Contains(t, string(data), "[[recent_sessions]]")
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "state.toml"))
	ctx := context.Background()

	entries, err := repo.ListRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	theme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme)

	show, err := repo.GetShowSecretID(ctx)
	require.NoError(t, err)
	assert.False(t, show)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeDark))

	statePath := filepath.Join(homeDir, ".session-vault", "state.toml")
	assert.Equal(t, statePath, repo.Path())
	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("recent_sessions = ["), 0o600))

	repo := newTestRepository(t, statePath)

	_, err := repo.ListRecent(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode state file")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"recent_sessions = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, statePath)

	_, err := repo.ListRecent(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported state schema version")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveTheme(ctx, domain.ThemeDark)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentWritesAcrossInstancesKeepFileReadable(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repoA := newTestRepository(t, statePath)
	repoB := newTestRepository(t, statePath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.SaveRecent(context.Background(), []domain.SessionHistoryEntry{
				{SessionID: domain.SessionID("AB123_a" + strconv.Itoa(i)), Status: domain.SessionStatusActive},
			})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.SaveShowSecretID(context.Background(), i%2 == 0)
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	entries, err := repoA.ListRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.SessionID("AB123_a"+strconv.Itoa(perRepoWrites-1)), entries[0].SessionID)
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repo := newTestRepository(t, statePath)

	require.NoError(t, repo.SaveShowSecretID(context.Background(), false))

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}
