// Package system navigates by handing URLs to the desktop's default opener.
package system

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	"github.com/pkg/browser"
)

func init() {
	// stdout carries native messaging frames; opener chatter must not reach it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Navigator opens URLs in the default browser. It cannot see the browser's
// tabs, so ActiveTabURL always reports ErrNoActiveTab.
type Navigator struct {
	logger *slog.Logger
	open   func(target string) error
}

var _ ports.Navigator = (*Navigator)(nil)

func NewNavigator(logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Navigator{logger: logger, open: browser.OpenURL}
}

func (n *Navigator) OpenTab(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("refusing to open %q: not an http(s) url", rawURL)
	}

	n.logger.Debug("opening url", "url", parsed.String())
	if err := n.open(parsed.String()); err != nil {
		return fmt.Errorf("open %s: %w", parsed.String(), err)
	}

	return nil
}

func (n *Navigator) ActiveTabURL(context.Context) (string, error) {
	return "", domain.ErrNoActiveTab
}

// Reload opens url again; the opener has no way to refresh an existing tab.
func (n *Navigator) Reload(ctx context.Context, rawURL string) error {
	return n.OpenTab(ctx, rawURL)
}
