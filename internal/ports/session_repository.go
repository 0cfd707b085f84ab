package ports

import (
	"context"

	"github.com/bnema/session-vault-cli/internal/domain"
)

// SessionRepository persists the recent-session list and the last-session slot.
// Each call reads or replaces one whole stored value.
type SessionRepository interface {
	ListRecent(ctx context.Context) ([]domain.SessionHistoryEntry, error)
	SaveRecent(ctx context.Context, entries []domain.SessionHistoryEntry) error
	GetLast(ctx context.Context) (domain.LastSession, error)
	SaveLast(ctx context.Context, last domain.LastSession) error
}

type PreferencesRepository interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
	GetShowSecretID(ctx context.Context) (bool, error)
	SaveShowSecretID(ctx context.Context, show bool) error
}
