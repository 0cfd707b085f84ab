package cmd

import (
	"context"
	"fmt"
	"time"

	statusadapter "github.com/bnema/session-vault-cli/internal/adapters/render/status"
	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/logging"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// popupRecentLimit is how many history entries the popup lists.
const popupRecentLimit = 4

type (
	prefsLoadedMsg struct {
		prefs domain.Preferences
		err   error
	}
	historyLoadedMsg struct {
		entries []domain.SessionHistoryEntry
		err     error
	}
	restoreDoneMsg struct {
		result application.RestoreResult
		err    error
	}
	deleteDoneMsg struct {
		result application.DeleteResult
		err    error
	}
	historyRemovedMsg struct {
		err error
	}
	prefsSavedMsg struct {
		prefs domain.Preferences
		err   error
	}
	bannerExpiredMsg struct {
		seq int
	}
)

type popupModel struct {
	ctx    context.Context
	app    *app
	tabURL string

	input   textinput.Model
	spinner spinner.Model
	styles  statusadapter.Styles
	prefs   domain.Preferences

	recent []domain.SessionHistoryEntry
	// cursor is the selected history row; -1 keeps focus on the input.
	cursor int

	busy      string
	banner    *application.Banner
	bannerSeq int
	showHelp  bool
}

func newPopupCmd(app *app) *cobra.Command {
	var tabURL string

	cmd := &cobra.Command{
		Use:   "popup",
		Short: "Open the interactive session vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			previous := logging.GetLevel()
			logging.SetLevel(logging.LevelSilent)
			defer logging.SetLevel(previous)

			p := tea.NewProgram(
				newPopupModel(cmd.Context(), app, tabURL),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&tabURL, "url", "", "Tab URL cleaned by ctrl+d (default: the browser's active tab)")

	return cmd
}

func newPopupModel(ctx context.Context, app *app, tabURL string) popupModel {
	input := textinput.New()
	input.Placeholder = "AB123_..."
	input.Prompt = "Secret ID: "
	input.CharLimit = 256
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	prefs := domain.DefaultPreferences()

	return popupModel{
		ctx:     ctx,
		app:     app,
		tabURL:  tabURL,
		input:   input,
		spinner: s,
		styles:  statusadapter.NewStyles(prefs.Theme),
		prefs:   prefs,
		cursor:  -1,
	}
}

func (m popupModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadPrefs(), m.loadHistory())
}

func (m popupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case prefsLoadedMsg:
		if msg.err != nil {
			return m.showBanner(application.PreferenceBanner(msg.err))
		}
		m.applyPrefs(msg.prefs)
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			return m.showBanner(application.PreferenceBanner(msg.err))
		}
		m.applyPrefs(msg.prefs)
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.recent = nil
			return m, nil
		}
		if len(msg.entries) > popupRecentLimit {
			msg.entries = msg.entries[:popupRecentLimit]
		}
		m.recent = msg.entries
		if m.cursor >= len(m.recent) {
			m.cursor = len(m.recent) - 1
		}
		if m.cursor < 0 {
			m.focusInput()
		}
		return m, nil

	case restoreDoneMsg:
		m.busy = ""
		if msg.err == nil {
			m.input.SetValue("")
		}
		model, cmd := m.showBanner(application.RestoreBanner(msg.result, msg.err))
		return model, tea.Batch(cmd, m.loadHistory())

	case deleteDoneMsg:
		m.busy = ""
		return m.showBanner(application.DeleteBanner(msg.result, msg.err))

	case historyRemovedMsg:
		model, cmd := m.showBanner(application.HistoryRemovedBanner(msg.err))
		return model, tea.Batch(cmd, m.loadHistory())

	case bannerExpiredMsg:
		if msg.seq == m.bannerSeq {
			m.banner = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m popupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.cursor >= 0 {
			m.focusInput()
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "ctrl+t":
		return m, m.savePrefs(func(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
			theme, err := m.app.preferences.ToggleTheme(ctx)
			prefs.Theme = theme
			return prefs, err
		})
	case "ctrl+s":
		return m, m.savePrefs(func(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
			show, err := m.app.preferences.ToggleShowSecretID(ctx)
			prefs.ShowSecretID = show
			return prefs, err
		})
	}

	if m.busy != "" {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.cursor >= 0 {
			return m.startRestore(string(m.recent[m.cursor].SessionID))
		}
		return m.startRestore(m.input.Value())
	case "ctrl+d":
		return m.startDelete()
	case "down", "tab":
		if len(m.recent) == 0 {
			return m, nil
		}
		m.cursor = min(m.cursor+1, len(m.recent)-1)
		m.input.Blur()
		return m, nil
	case "up", "shift+tab":
		if m.cursor <= 0 {
			m.focusInput()
			return m, nil
		}
		m.cursor--
		return m, nil
	case "x", "delete":
		if m.cursor >= 0 {
			return m, m.removeEntry(m.recent[m.cursor].SessionID)
		}
	}

	if m.cursor >= 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m popupModel) startRestore(rawID string) (tea.Model, tea.Cmd) {
	m.busy = "Restoring session..."
	restore := m.app.restore
	ctx := m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := restore.Restore(ctx, rawID)
		return restoreDoneMsg{result: result, err: err}
	})
}

func (m popupModel) startDelete() (tea.Model, tea.Cmd) {
	m.busy = "Deleting cookies..."
	restore := m.app.restore
	ctx, tabURL := m.ctx, m.tabURL
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := restore.DeleteCurrentTab(ctx, tabURL)
		return deleteDoneMsg{result: result, err: err}
	})
}

func (m popupModel) removeEntry(id domain.SessionID) tea.Cmd {
	history := m.app.history
	ctx := m.ctx
	return func() tea.Msg {
		return historyRemovedMsg{err: history.RemoveSession(ctx, id)}
	}
}

func (m popupModel) loadPrefs() tea.Cmd {
	preferences := m.app.preferences
	ctx := m.ctx
	return func() tea.Msg {
		prefs, err := preferences.Load(ctx)
		return prefsLoadedMsg{prefs: prefs, err: err}
	}
}

func (m popupModel) savePrefs(save func(context.Context, domain.Preferences) (domain.Preferences, error)) tea.Cmd {
	ctx, prefs := m.ctx, m.prefs
	return func() tea.Msg {
		updated, err := save(ctx, prefs)
		return prefsSavedMsg{prefs: updated, err: err}
	}
}

func (m popupModel) loadHistory() tea.Cmd {
	history := m.app.history
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := history.GetRecentSessions(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m popupModel) showBanner(banner application.Banner) (tea.Model, tea.Cmd) {
	m.bannerSeq++
	m.banner = &banner
	seq := m.bannerSeq
	return m, tea.Tick(application.BannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

func (m *popupModel) applyPrefs(prefs domain.Preferences) {
	m.prefs = prefs
	m.styles = statusadapter.NewStyles(prefs.Theme)
	if prefs.ShowSecretID {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

func (m *popupModel) focusInput() {
	m.cursor = -1
	m.input.Focus()
}

func (m popupModel) View() string {
	s := m.styles
	if m.showHelp {
		return s.Box.Render(m.helpView())
	}

	sections := []string{
		s.Title.Render("Session Vault"),
		m.input.View(),
	}

	if m.busy != "" {
		sections = append(sections, fmt.Sprintf("%s %s", m.spinner.View(), s.Muted.Render(m.busy)))
	} else if m.banner != nil {
		sections = append(sections, statusadapter.RenderBanner(*m.banner, m.prefs.Theme))
	}

	sections = append(sections, s.Section.Render(m.recentView()))
	sections = append(sections, s.Muted.Render(fmt.Sprintf("theme: %s  ·  ? help  ·  esc quit", m.prefs.Theme)))

	return s.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m popupModel) recentView() string {
	s := m.styles
	if len(m.recent) == 0 {
		return s.Empty.Render("No recent sessions.")
	}

	opts := statusadapter.RenderOptions{Now: m.app.now(), Theme: m.prefs.Theme, ShowSecretID: m.prefs.ShowSecretID}
	lines := []string{s.Header.Render("Recent sessions")}
	for i, entry := range m.recent {
		marker := "  "
		if i == m.cursor {
			marker = s.Key.Render("> ")
		}
		lines = append(lines, marker+statusadapter.HistoryRow(i+1, entry, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m popupModel) helpView() string {
	s := m.styles
	rows := [][2]string{
		{"enter", "restore the typed or selected session"},
		{"↑/↓ tab", "move between input and recent sessions"},
		{"x", "remove the selected session from history"},
		{"ctrl+d", "delete all cookies of the current tab"},
		{"ctrl+t", "toggle light/dark theme"},
		{"ctrl+s", "show or hide session identifiers"},
		{"esc", "back to input, or quit"},
	}

	lines := []string{s.Title.Render("Help")}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s", s.Key.Render(fmt.Sprintf("%-8s", row[0])), s.Detail.Render(row[1])))
	}
	lines = append(lines, s.Muted.Render("press any key to close"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
