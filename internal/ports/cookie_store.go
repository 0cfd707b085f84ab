package ports

import (
	"context"

	"github.com/bnema/session-vault-cli/internal/domain"
)

// CookieStore is the browser cookie capability.
type CookieStore interface {
	GetAll(ctx context.Context, host string) ([]domain.Cookie, error)
	Set(ctx context.Context, req domain.CookieSetRequest) error
	Remove(ctx context.Context, url string, name string) error
}

// Navigator drives browser tabs.
type Navigator interface {
	OpenTab(ctx context.Context, url string) error
	ActiveTabURL(ctx context.Context) (string, error)
	Reload(ctx context.Context, url string) error
}

// SessionSource retrieves a stored cookie bundle by session identifier.
type SessionSource interface {
	FetchSession(ctx context.Context, id domain.SessionID) (domain.SessionBundle, error)
}
