package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPopup(t *testing.T) popupModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	app, err := wireApp()
	require.NoError(t, err)
	return newPopupModel(context.Background(), app, "")
}

func update(t *testing.T, m popupModel, msg tea.Msg) (popupModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(popupModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPopupRestoreShowsBannerUntilExpiry(t *testing.T) {
	m := newTestPopup(t)

	m, _ = update(t, m, runes("AB123_xyz"))
	assert.Equal(t, "AB123_xyz", m.input.Value())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "Restoring session...", m.busy)

	m, _ = update(t, m, restoreDoneMsg{result: application.RestoreResult{Domain: "example.com"}})
	assert.Empty(t, m.busy)
	assert.Empty(t, m.input.Value())
	require.NotNil(t, m.banner)
	assert.Contains(t, m.View(), "Session restored for example.com")

	m, _ = update(t, m, bannerExpiredMsg{seq: m.bannerSeq - 1})
	assert.NotNil(t, m.banner)

	m, _ = update(t, m, bannerExpiredMsg{seq: m.bannerSeq})
	assert.Nil(t, m.banner)
}

func TestPopupRestoreFailureKeepsInput(t *testing.T) {
	m := newTestPopup(t)

	m, _ = update(t, m, runes("AB123_xyz"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, restoreDoneMsg{err: domain.ErrSessionNotFound})

	assert.Equal(t, "AB123_xyz", m.input.Value())
	require.NotNil(t, m.banner)
	assert.Equal(t, "Session ID not found!", m.banner.Message)
}

func TestPopupEmptyInputShowsInvalidFormatBanner(t *testing.T) {
	m := newTestPopup(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, "Restoring session...", m.busy)

	m, _ = update(t, m, restoreResult(t, cmd))
	assert.Empty(t, m.busy)
	require.NotNil(t, m.banner)
	assert.Equal(t, application.BannerError, m.banner.Kind)
	assert.Equal(t, "Invalid Secret ID format.", m.banner.Message)
}

// restoreResult runs the commands batched by a restore and returns its outcome.
func restoreResult(t *testing.T, cmd tea.Cmd) restoreDoneMsg {
	t.Helper()

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if done, ok := c().(restoreDoneMsg); ok {
			return done
		}
	}

	require.FailNow(t, "restore command produced no result")
	return restoreDoneMsg{}
}

func TestPopupIgnoresActionsWhileBusy(t *testing.T) {
	m := newTestPopup(t)
	m.busy = "Restoring session..."

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	assert.Equal(t, "Restoring session...", m.busy)
}

func TestPopupDeleteReportsWarningBanner(t *testing.T) {
	m := newTestPopup(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, "Deleting cookies...", m.busy)

	m, _ = update(t, m, deleteDoneMsg{result: application.DeleteResult{Domain: "example.com", Err: domain.ErrNoCookiesToDelete}})
	require.NotNil(t, m.banner)
	assert.Equal(t, application.BannerWarning, m.banner.Kind)
	assert.Equal(t, "No cookies found for example.com", m.banner.Message)
}

func TestPopupHistoryListIsCappedAndNavigable(t *testing.T) {
	m := newTestPopup(t)

	entries := make([]domain.SessionHistoryEntry, 0, 5)
	for _, id := range []string{"AA111_a", "BB222_b", "CC333_c", "DD444_d", "EE555_e"} {
		entries = append(entries, domain.SessionHistoryEntry{SessionID: domain.SessionID(id), Domain: "example.com", Status: domain.SessionStatusActive, Timestamp: time.Now()})
	}

	m, _ = update(t, m, historyLoadedMsg{entries: entries})
	require.Len(t, m.recent, popupRecentLimit)
	assert.Equal(t, -1, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	assert.False(t, m.input.Focused())

	m, _ = update(t, m, runes("q"))
	assert.Empty(t, m.input.Value())

	m, cmd := update(t, m, runes("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, historyRemovedMsg{}, cmd())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Restoring session...", m.busy)

	m.busy = ""
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, -1, m.cursor)
	assert.True(t, m.input.Focused())
}

func TestPopupHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestPopup(t)

	m, _ = update(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "toggle light/dark theme")

	m, cmd := update(t, m, runes("z"))
	assert.Nil(t, cmd)
	assert.False(t, m.showHelp)
	assert.Empty(t, m.input.Value())
}

func TestPopupPreferenceToggles(t *testing.T) {
	m := newTestPopup(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	msg, ok := cmd().(prefsSavedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, domain.ThemeLight, msg.prefs.Theme)

	m, _ = update(t, m, msg)
	assert.Equal(t, domain.ThemeLight, m.prefs.Theme)
	assert.Contains(t, m.View(), "theme: light")

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.True(t, m.prefs.ShowSecretID)
	assert.Equal(t, textinput.EchoNormal, m.input.EchoMode)
}

func TestPopupPreferenceErrorShowsBanner(t *testing.T) {
	m := newTestPopup(t)

	m, _ = update(t, m, prefsSavedMsg{err: errors.New("disk full")})
	require.NotNil(t, m.banner)
	assert.Equal(t, "Failed to save preferences!", m.banner.Message)
}

func TestPopupEscQuitsFromInput(t *testing.T) {
	m := newTestPopup(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
