package status

import (
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
	border  lipgloss.Color
}

var (
	darkPalette = palette{
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		accent:  lipgloss.Color("39"),
		success: lipgloss.Color("114"),
		warning: lipgloss.Color("221"),
		danger:  lipgloss.Color("203"),
		border:  lipgloss.Color("238"),
	}
	lightPalette = palette{
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("242"),
		accent:  lipgloss.Color("25"),
		success: lipgloss.Color("28"),
		warning: lipgloss.Color("130"),
		danger:  lipgloss.Color("160"),
		border:  lipgloss.Color("250"),
	}
)

// Styles is the set of lipgloss styles for one theme.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Detail  lipgloss.Style
	Muted   lipgloss.Style
	Empty   lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Section lipgloss.Style
	Box     lipgloss.Style
	Status  map[domain.SessionStatus]lipgloss.Style
}

func NewStyles(theme domain.Theme) Styles {
	p := darkPalette
	if theme == domain.ThemeLight {
		p = lightPalette
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Header:  lipgloss.NewStyle().Foreground(p.muted),
		Detail:  lipgloss.NewStyle().Foreground(p.text),
		Muted:   lipgloss.NewStyle().Foreground(p.muted),
		Empty:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Success: lipgloss.NewStyle().Bold(true).Foreground(p.success),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(p.warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		Section: lipgloss.NewStyle().MarginTop(1),
		Box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		Status: map[domain.SessionStatus]lipgloss.Style{
			domain.SessionStatusActive:  lipgloss.NewStyle().Foreground(p.success),
			domain.SessionStatusExpired: lipgloss.NewStyle().Foreground(p.warning),
			domain.SessionStatusInvalid: lipgloss.NewStyle().Foreground(p.danger),
		},
	}
}
