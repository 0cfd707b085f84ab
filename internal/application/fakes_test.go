package application

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/session-vault-cli/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// stepClock advances by one minute on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

type inMemorySessionRepo struct {
	recent []domain.SessionHistoryEntry
	last   domain.LastSession
}

func (r *inMemorySessionRepo) ListRecent(_ context.Context) ([]domain.SessionHistoryEntry, error) {
	out := make([]domain.SessionHistoryEntry, len(r.recent))
	copy(out, r.recent)
	return out, nil
}

func (r *inMemorySessionRepo) SaveRecent(_ context.Context, entries []domain.SessionHistoryEntry) error {
	r.recent = append([]domain.SessionHistoryEntry(nil), entries...)
	return nil
}

func (r *inMemorySessionRepo) GetLast(_ context.Context) (domain.LastSession, error) {
	return r.last, nil
}

func (r *inMemorySessionRepo) SaveLast(_ context.Context, last domain.LastSession) error {
	r.last = last
	return nil
}

type inMemoryPreferencesRepo struct {
	theme domain.Theme
	show  bool
}

func (r *inMemoryPreferencesRepo) GetTheme(_ context.Context) (domain.Theme, error) {
	return r.theme, nil
}

func (r *inMemoryPreferencesRepo) SaveTheme(_ context.Context, theme domain.Theme) error {
	r.theme = theme
	return nil
}

func (r *inMemoryPreferencesRepo) GetShowSecretID(_ context.Context) (bool, error) {
	return r.show, nil
}

func (r *inMemoryPreferencesRepo) SaveShowSecretID(_ context.Context, show bool) error {
	r.show = show
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bundleFor(url string, cookies ...domain.Cookie) domain.SessionBundle {
	return domain.SessionBundle{URL: url, Cookies: cookies}
}
