package domain

import "errors"

var (
	ErrInvalidSessionID  = errors.New("invalid session id format")
	ErrInvalidTheme      = errors.New("invalid theme")
	ErrInvalidStatus     = errors.New("invalid session status")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDecode            = errors.New("decode session payload")
	ErrNetwork           = errors.New("session request failed")
	ErrNoCookies         = errors.New("no cookies to restore")
	ErrNoCookiesToDelete = errors.New("no cookies to delete")
	ErrInstallFailed     = errors.New("install cookies")
	ErrNoActiveTab       = errors.New("no active tab")
	ErrSecretNotFound    = errors.New("secret not found")
)
