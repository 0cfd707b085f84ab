package status

import (
	"errors"
	"io"

	"github.com/bnema/session-vault-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	entries []domain.SessionHistoryEntry
	opts    RenderOptions
	styles  Styles
	output  string
}

func newModel(entries []domain.SessionHistoryEntry, opts RenderOptions) model {
	return model{
		entries: entries,
		opts:    opts,
		styles:  NewStyles(opts.Theme),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.entries, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderHistory renders the recent-session table once and returns it.
func RenderHistory(entries []domain.SessionHistoryEntry, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(entries, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
