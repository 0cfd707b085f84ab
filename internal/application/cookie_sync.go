package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	"golang.org/x/sync/errgroup"
)

type SyncResult struct {
	Removed   int
	Installed int
}

// CookieSynchronizer clears and installs cookie sets through a CookieStore.
type CookieSynchronizer struct {
	store  ports.CookieStore
	logger *slog.Logger
}

func NewCookieSynchronizer(store ports.CookieStore, logger *slog.Logger) *CookieSynchronizer {
	if logger == nil {
		logger = slog.Default()
	}

	return &CookieSynchronizer{store: store, logger: logger}
}

// ReplaceCookies removes every cookie currently stored for host, then installs
// cookies. An empty batch fails before anything is removed.
func (s *CookieSynchronizer) ReplaceCookies(ctx context.Context, host string, cookies []domain.Cookie) (SyncResult, error) {
	if len(cookies) == 0 {
		return SyncResult{}, domain.ErrNoCookies
	}

	removed, err := s.clear(ctx, host)
	if err != nil {
		return SyncResult{}, err
	}

	installed, err := s.InstallCookies(ctx, cookies)
	result := SyncResult{Removed: removed, Installed: installed}
	if err != nil {
		return result, err
	}

	s.logger.Info("cookies restored", "domain", host, "removed", removed, "installed", installed)
	return result, nil
}

// InstallCookies normalizes and sets every cookie. Installs run concurrently
// and the call returns once all of them have finished; it succeeds only if
// every install did. Installs that succeeded are kept when another one failed.
func (s *CookieSynchronizer) InstallCookies(ctx context.Context, cookies []domain.Cookie) (int, error) {
	if len(cookies) == 0 {
		return 0, domain.ErrNoCookies
	}

	var (
		mu      sync.Mutex
		errs    []error
		applied int
	)

	var g errgroup.Group
	for _, cookie := range cookies {
		req := domain.NormalizeCookie(cookie)
		g.Go(func() error {
			err := s.store.Set(ctx, req)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				err = fmt.Errorf("set cookie %q: %w", req.Cookie.Name, err)
				errs = append(errs, err)
				return err
			}
			applied++
			s.logger.Debug("cookie set", "name", req.Cookie.Name, "domain", req.Cookie.Domain)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return applied, fmt.Errorf("%w: %d of %d failed: %w", domain.ErrInstallFailed, len(errs), len(cookies), errors.Join(errs...))
	}

	return applied, nil
}

// DeleteAllCookiesForDomain removes every cookie stored for host and returns
// how many were found.
func (s *CookieSynchronizer) DeleteAllCookiesForDomain(ctx context.Context, host string) (int, error) {
	removed, err := s.clear(ctx, host)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		s.logger.Warn("no cookies found to delete", "domain", host)
		return 0, domain.ErrNoCookiesToDelete
	}

	s.logger.Info("cookies deleted", "domain", host, "count", removed)
	return removed, nil
}

// clear removes the cookies of host one by one. A failed removal is logged
// and skipped.
func (s *CookieSynchronizer) clear(ctx context.Context, host string) (int, error) {
	existing, err := s.store.GetAll(ctx, host)
	if err != nil {
		return 0, fmt.Errorf("list cookies for %s: %w", host, err)
	}

	for _, cookie := range existing {
		if err := s.store.Remove(ctx, domain.RemovalURL(cookie), cookie.Name); err != nil {
			s.logger.Debug("cookie removal failed", "name", cookie.Name, "domain", cookie.Domain, "error", err)
			continue
		}
		s.logger.Debug("cookie removed", "name", cookie.Name, "domain", cookie.Domain)
	}

	return len(existing), nil
}
