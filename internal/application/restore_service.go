package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
)

type RestoreResult struct {
	SessionID domain.SessionID
	URL       string
	Domain    string
	Sync      SyncResult
}

type DeleteResult struct {
	URL     string
	Domain  string
	Removed int
	// Err carries a non-fatal outcome such as ErrNoCookiesToDelete.
	Err error
}

// RestoreService runs the user-facing actions: restore a session from its
// identifier and wipe the cookies of the active tab.
type RestoreService struct {
	source    ports.SessionSource
	sync      *CookieSynchronizer
	history   *HistoryService
	navigator ports.Navigator
	logger    *slog.Logger
}

func NewRestoreService(source ports.SessionSource, sync *CookieSynchronizer, history *HistoryService, navigator ports.Navigator, logger *slog.Logger) *RestoreService {
	if logger == nil {
		logger = slog.Default()
	}

	return &RestoreService{
		source:    source,
		sync:      sync,
		history:   history,
		navigator: navigator,
		logger:    logger,
	}
}

// Restore fetches the bundle for rawID, records it in the history, replaces the
// cookies of the bundle domain and opens the bundle URL in a new tab.
func (s *RestoreService) Restore(ctx context.Context, rawID string) (RestoreResult, error) {
	id, err := domain.ValidateSessionID(rawID)
	if err != nil {
		return RestoreResult{}, err
	}

	s.logger.Debug("fetching session", "session_id", id)
	bundle, err := s.source.FetchSession(ctx, id)
	if err != nil {
		return RestoreResult{}, fmt.Errorf("fetch session: %w", err)
	}

	host := bundle.Domain()
	if host == "" {
		return RestoreResult{}, fmt.Errorf("%w: bundle url %q has no host", domain.ErrDecode, bundle.URL)
	}

	if err := s.history.AddRecentSession(ctx, id, bundle); err != nil {
		return RestoreResult{}, err
	}
	if err := s.history.SetLastSession(ctx, id, bundle); err != nil {
		return RestoreResult{}, err
	}

	result := RestoreResult{SessionID: id, URL: bundle.URL, Domain: host}

	synced, err := s.sync.ReplaceCookies(ctx, host, bundle.Cookies)
	result.Sync = synced
	if err != nil {
		return result, fmt.Errorf("restore cookies for %s: %w", host, err)
	}

	if err := s.navigator.OpenTab(ctx, bundle.URL); err != nil {
		return result, fmt.Errorf("open tab: %w", err)
	}

	s.logger.Info("session restored", "session_id", id, "domain", host)
	return result, nil
}

// DeleteCurrentTab deletes the cookies of the tab at tabURL, or of the active
// tab when tabURL is empty, then reloads that tab. Finding no cookies is
// reported through DeleteResult.Err and still reloads the tab.
func (s *RestoreService) DeleteCurrentTab(ctx context.Context, tabURL string) (DeleteResult, error) {
	if tabURL == "" {
		active, err := s.navigator.ActiveTabURL(ctx)
		if err != nil {
			return DeleteResult{}, fmt.Errorf("resolve active tab: %w", err)
		}
		tabURL = active
	}

	parsed, err := url.Parse(tabURL)
	if err != nil || parsed.Hostname() == "" {
		return DeleteResult{}, fmt.Errorf("%w: %q", domain.ErrNoActiveTab, tabURL)
	}

	result := DeleteResult{URL: tabURL, Domain: parsed.Hostname()}

	removed, err := s.sync.DeleteAllCookiesForDomain(ctx, result.Domain)
	switch {
	case errors.Is(err, domain.ErrNoCookiesToDelete):
		result.Err = err
	case err != nil:
		return result, err
	}
	result.Removed = removed

	if err := s.navigator.Reload(ctx, tabURL); err != nil {
		return result, fmt.Errorf("reload tab: %w", err)
	}

	return result, nil
}
