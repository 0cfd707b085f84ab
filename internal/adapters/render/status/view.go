package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maskRune = "•"

type RenderOptions struct {
	Now          time.Time
	Theme        domain.Theme
	ShowSecretID bool
	// Limit caps the number of rows; zero shows every entry.
	Limit int
}

func renderView(entries []domain.SessionHistoryEntry, opts RenderOptions, s Styles) string {
	lines := []string{
		s.Title.Render("Recent Sessions"),
		s.Header.Render(fmt.Sprintf("sessions: %d", len(entries))),
	}

	if len(entries) == 0 {
		lines = append(lines, s.Empty.Render("No recent sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(entries))
	for i, entry := range entries {
		if opts.Limit > 0 && i >= opts.Limit {
			break
		}
		rows = append(rows, HistoryRow(i+1, entry, opts, s))
	}

	lines = append(lines, s.Section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// HistoryRow renders one numbered history entry on a single line.
func HistoryRow(index int, entry domain.SessionHistoryEntry, opts RenderOptions, s Styles) string {
	statusStyle, ok := s.Status[entry.Status]
	if !ok {
		statusStyle = s.Muted
	}

	host := entry.Domain
	if host == "" {
		host = "unknown domain"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.Muted.Render(fmt.Sprintf("%d.", index)),
		" ",
		s.Detail.Render(DisplaySessionID(entry.SessionID, opts.ShowSecretID)),
		"  ",
		s.Key.Render(host),
		"  ",
		statusStyle.Render(string(entry.Status)),
		"  ",
		s.Muted.Render(FormatAge(entry.Timestamp, opts.Now)),
		"  ",
		s.Muted.Render(formatExpiry(entry, opts.Now)),
	)
}

// RenderBanner renders a status banner in the colors of its kind.
func RenderBanner(banner application.Banner, theme domain.Theme) string {
	s := NewStyles(theme)
	switch banner.Kind {
	case application.BannerSuccess:
		return s.Success.Render("✓ " + banner.Message)
	case application.BannerWarning:
		return s.Warning.Render("! " + banner.Message)
	default:
		return s.Error.Render("✗ " + banner.Message)
	}
}

// DisplaySessionID masks everything after the two-letter prefix unless show is set.
func DisplaySessionID(id domain.SessionID, show bool) string {
	raw := string(id)
	if show || len(raw) <= 2 {
		return raw
	}

	return raw[:2] + strings.Repeat(maskRune, min(len(raw)-2, 8))
}

// FormatAge renders how long ago ts was, relative to now.
func FormatAge(ts, now time.Time) string {
	if ts.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return ts.Format("2006-01-02 15:04")
	}

	elapsed := now.Sub(ts)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	}
}

func formatExpiry(entry domain.SessionHistoryEntry, now time.Time) string {
	expiry := entry.Expiry()
	if expiry.IsZero() {
		return "session cookie"
	}
	if now.IsZero() {
		return "expires " + expiry.Format(time.RFC3339)
	}
	if !expiry.After(now) {
		return "expired"
	}

	remaining := expiry.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		return "expires in " + plural(max(hours, 1), "hour")
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	return "expires in " + plural(days, "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
