// Package cdp drives a Chromium-family browser over the DevTools protocol.
package cdp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const blankPageURL = "about:blank"

var ErrNoPage = errors.New("browser has no open page")

type Options struct {
	// ControlURL is a DevTools endpoint, either ws://... or http://host:port.
	// When empty a browser is launched with UserDataDir as its profile.
	ControlURL  string
	UserDataDir string
	BrowserBin  string
	Logger      *slog.Logger
}

// Store is both the cookie capability and the tab navigator of one browser.
// The connection is opened on first use.
type Store struct {
	opts   Options
	logger *slog.Logger

	once       sync.Once
	browser    *rod.Browser
	connectErr error
}

var (
	_ ports.CookieStore = (*Store)(nil)
	_ ports.Navigator   = (*Store)(nil)
)

func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{opts: opts, logger: logger}
}

func (s *Store) GetAll(ctx context.Context, host string) ([]domain.Cookie, error) {
	browser, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	cookies, err := browser.GetCookies()
	if err != nil {
		return nil, fmt.Errorf("get browser cookies: %w", err)
	}

	return filterCookies(cookies, host), nil
}

func (s *Store) Set(ctx context.Context, req domain.CookieSetRequest) error {
	browser, err := s.connect(ctx)
	if err != nil {
		return err
	}

	if err := browser.SetCookies([]*proto.NetworkCookieParam{toCookieParam(req)}); err != nil {
		return fmt.Errorf("set cookie %q: %w", req.Cookie.Name, err)
	}

	return nil
}

// Remove deletes the cookie called name that the browser would send to url.
// Network commands need a page session, so the first open page is used.
func (s *Store) Remove(ctx context.Context, url string, name string) error {
	browser, err := s.connect(ctx)
	if err != nil {
		return err
	}

	page, err := anyPage(browser)
	if err != nil {
		return err
	}

	if err := (proto.NetworkDeleteCookies{Name: name, URL: url}).Call(page); err != nil {
		return fmt.Errorf("delete cookie %q at %s: %w", name, url, err)
	}

	return nil
}

func (s *Store) OpenTab(ctx context.Context, url string) error {
	browser, err := s.connect(ctx)
	if err != nil {
		return err
	}

	if _, err := browser.Page(proto.TargetCreateTarget{URL: url}); err != nil {
		return fmt.Errorf("open tab %s: %w", url, err)
	}

	return nil
}

// ActiveTabURL returns the URL of the most recently focused web page. The
// DevTools target list is ordered by last activation.
func (s *Store) ActiveTabURL(ctx context.Context) (string, error) {
	browser, err := s.connect(ctx)
	if err != nil {
		return "", err
	}

	targets, err := proto.TargetGetTargets{}.Call(browser)
	if err != nil {
		return "", fmt.Errorf("list targets: %w", err)
	}

	for _, info := range targets.TargetInfos {
		if info.Type == proto.TargetTargetInfoTypePage && isWebURL(info.URL) {
			return info.URL, nil
		}
	}

	return "", domain.ErrNoActiveTab
}

func (s *Store) Reload(ctx context.Context, url string) error {
	browser, err := s.connect(ctx)
	if err != nil {
		return err
	}

	pages, err := browser.Pages()
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}

	for _, page := range pages {
		info, err := page.Info()
		if err != nil || info.URL != url {
			continue
		}
		if err := page.Reload(); err != nil {
			return fmt.Errorf("reload %s: %w", url, err)
		}
		return nil
	}

	s.logger.Debug("no tab to reload", "url", url)
	return nil
}

func (s *Store) connect(ctx context.Context) (*rod.Browser, error) {
	s.once.Do(func() {
		s.browser, s.connectErr = s.dial()
	})
	if s.connectErr != nil {
		return nil, s.connectErr
	}

	return s.browser.Context(ctx), nil
}

func (s *Store) dial() (*rod.Browser, error) {
	controlURL := s.opts.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(false).Leakless(false)
		if s.opts.UserDataDir != "" {
			l = l.UserDataDir(s.opts.UserDataDir)
		}
		if s.opts.BrowserBin != "" {
			l = l.Bin(s.opts.BrowserBin)
		}

		launched, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = launched
		s.logger.Debug("browser launched", "control_url", controlURL)
	} else if !strings.HasPrefix(controlURL, "ws") {
		resolved, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("resolve devtools url %s: %w", controlURL, err)
		}
		controlURL = resolved
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return browser, nil
}

func anyPage(browser *rod.Browser) (*rod.Page, error) {
	pages, err := browser.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(pages) > 0 {
		return pages.First(), nil
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: blankPageURL})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPage, err)
	}

	return page, nil
}

func isWebURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}
