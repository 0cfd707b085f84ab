package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
)

// ErrNoLastSession is returned by GetLastSession when nothing was restored yet.
var ErrNoLastSession = errors.New("no last session recorded")

// HistoryService keeps the bounded recent-session list and the last-session slot.
//
// Every mutation is a read-modify-write of the whole stored list. Two concurrent
// mutations can lose one update; the store is single-user and that is accepted.
type HistoryService struct {
	repo  ports.SessionRepository
	clock ports.Clock
}

func NewHistoryService(repo ports.SessionRepository, clock ports.Clock) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &HistoryService{repo: repo, clock: clock}
}

func (s *HistoryService) AddRecentSession(ctx context.Context, id domain.SessionID, bundle domain.SessionBundle) error {
	entries, err := s.repo.ListRecent(ctx)
	if err != nil {
		return fmt.Errorf("list recent sessions: %w", err)
	}

	updated := make([]domain.SessionHistoryEntry, 0, len(entries)+1)
	updated = append(updated, domain.SessionHistoryEntry{
		SessionID:  id,
		Timestamp:  s.clock.Now(),
		Domain:     bundle.Domain(),
		ExpiryDate: bundle.FirstExpiry(),
		Status:     domain.SessionStatusActive,
	})
	for _, entry := range entries {
		if entry.SessionID == id {
			continue
		}
		updated = append(updated, entry)
	}

	if len(updated) > domain.MaxRecentSessions {
		updated = updated[:domain.MaxRecentSessions]
	}

	if err := s.repo.SaveRecent(ctx, updated); err != nil {
		return fmt.Errorf("save recent sessions: %w", err)
	}

	return nil
}

func (s *HistoryService) GetRecentSessions(ctx context.Context) ([]domain.SessionHistoryEntry, error) {
	entries, err := s.repo.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	if entries == nil {
		entries = []domain.SessionHistoryEntry{}
	}

	return entries, nil
}

// RemoveSession drops id from the history. Removing an unknown id is a no-op.
func (s *HistoryService) RemoveSession(ctx context.Context, id domain.SessionID) error {
	entries, err := s.repo.ListRecent(ctx)
	if err != nil {
		return fmt.Errorf("list recent sessions: %w", err)
	}

	updated := make([]domain.SessionHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.SessionID != id {
			updated = append(updated, entry)
		}
	}

	if err := s.repo.SaveRecent(ctx, updated); err != nil {
		return fmt.Errorf("save recent sessions: %w", err)
	}

	return nil
}

func (s *HistoryService) UpdateSessionStatus(ctx context.Context, id domain.SessionID, status domain.SessionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	entries, err := s.repo.ListRecent(ctx)
	if err != nil {
		return fmt.Errorf("list recent sessions: %w", err)
	}

	for i := range entries {
		if entries[i].SessionID == id {
			entries[i].Status = status
		}
	}

	if err := s.repo.SaveRecent(ctx, entries); err != nil {
		return fmt.Errorf("save recent sessions: %w", err)
	}

	return nil
}

func (s *HistoryService) SetLastSession(ctx context.Context, id domain.SessionID, bundle domain.SessionBundle) error {
	last := domain.LastSession{
		SessionID: id,
		Timestamp: s.clock.Now(),
		Bundle:    bundle,
		Status:    domain.SessionStatusActive,
	}

	if err := s.repo.SaveLast(ctx, last); err != nil {
		return fmt.Errorf("save last session: %w", err)
	}

	return nil
}

func (s *HistoryService) GetLastSession(ctx context.Context) (domain.LastSession, error) {
	last, err := s.repo.GetLast(ctx)
	if err != nil {
		return domain.LastSession{}, fmt.Errorf("get last session: %w", err)
	}
	if last.SessionID == "" {
		return domain.LastSession{}, ErrNoLastSession
	}

	return last, nil
}
