// Package firefox reads and writes the cookie jar of a Firefox profile.
//
// Firefox keeps its cookies in memory while running and rewrites the jar on
// exit, so changes made here are only picked up by a closed browser.
package firefox

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	_ "modernc.org/sqlite"
)

// sessionCookieLifetime is the expiry given to session cookies, which the jar
// cannot represent.
const sessionCookieLifetime = 24 * time.Hour

// moz_cookies.sameSite values.
const (
	sameSiteNone   = 0
	sameSiteLax    = 1
	sameSiteStrict = 2
)

type Store struct {
	path    string
	resolve func() (string, error)
	logger  *slog.Logger
	now     func() time.Time

	once    sync.Once
	db      *sql.DB
	openErr error
}

var _ ports.CookieStore = (*Store)(nil)

func NewStore(dbPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{path: dbPath, logger: logger, now: time.Now}
}

// NewProfileStore resolves the cookie jar of profile (see ResolveCookieDB)
// on first use.
func NewProfileStore(profile string, roots []string, logger *slog.Logger) *Store {
	store := NewStore("", logger)
	store.resolve = func() (string, error) {
		return ResolveCookieDB(profile, roots)
	}
	return store
}

func (s *Store) GetAll(ctx context.Context, host string) ([]domain.Cookie, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	host = strings.ToLower(domain.StripLeadingDot(host))
	rows, err := db.QueryContext(ctx,
		`SELECT host, name, value, path, expiry, isSecure, isHttpOnly, sameSite FROM moz_cookies
		 WHERE host = ? OR host = ? OR host LIKE ?`,
		host, "."+host, "%."+host,
	)
	if err != nil {
		return nil, fmt.Errorf("query firefox cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Cookie
	for rows.Next() {
		var (
			cookie   domain.Cookie
			expiry   sql.NullInt64
			secure   sql.NullInt64
			httpOnly sql.NullInt64
			sameSite sql.NullInt64
		)
		if err := rows.Scan(&cookie.Domain, &cookie.Name, &cookie.Value, &cookie.Path, &expiry, &secure, &httpOnly, &sameSite); err != nil {
			return nil, fmt.Errorf("scan firefox cookie: %w", err)
		}
		if !domain.MatchesDomain(cookie.Domain, host) {
			continue
		}

		cookie.Secure = secure.Valid && secure.Int64 == 1
		cookie.HTTPOnly = httpOnly.Valid && httpOnly.Int64 == 1
		cookie.HostOnly = !strings.HasPrefix(cookie.Domain, ".")
		cookie.SameSite = sameSiteFromInt(sameSite.Int64)
		if expiry.Valid && expiry.Int64 > 0 {
			seconds := float64(expiry.Int64)
			cookie.ExpirationDate = &seconds
		} else {
			cookie.Session = true
		}
		out = append(out, cookie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read firefox cookies: %w", err)
	}

	return out, nil
}

func (s *Store) Set(ctx context.Context, req domain.CookieSetRequest) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	c := req.Cookie
	now := s.now()
	expiry := now.Add(sessionCookieLifetime).Unix()
	if c.ExpirationDate != nil {
		expiry = int64(*c.ExpirationDate)
	}
	path := c.Path
	if path == "" {
		path = "/"
	}
	sameSite := sameSiteToInt(c.SameSite)

	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO moz_cookies
		 (originAttributes, name, value, host, path, expiry, lastAccessed, creationTime, isSecure, isHttpOnly, sameSite, rawSameSite)
		 VALUES ('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Value, strings.ToLower(c.Domain), path, expiry,
		now.UnixMicro(), now.UnixMicro(), boolToInt(c.Secure), boolToInt(c.HTTPOnly), sameSite, sameSite,
	)
	if err != nil {
		return fmt.Errorf("insert firefox cookie %q: %w", c.Name, err)
	}

	return nil
}

// Remove deletes the cookie called name stored for the host and path of
// rawURL, whether host-only or domain-wide.
func (s *Store) Remove(ctx context.Context, rawURL string, name string) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return fmt.Errorf("invalid cookie url %q", rawURL)
	}
	host := strings.ToLower(parsed.Hostname())
	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if _, err := db.ExecContext(ctx,
		`DELETE FROM moz_cookies WHERE name = ? AND (host = ? OR host = ?) AND path = ?`,
		name, host, "."+host, path,
	); err != nil {
		return fmt.Errorf("delete firefox cookie %q: %w", name, err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) open() (*sql.DB, error) {
	s.once.Do(func() {
		if s.path == "" && s.resolve != nil {
			path, err := s.resolve()
			if err != nil {
				s.openErr = err
				return
			}
			s.path = path
		}

		dsn := "file:" + filepath.ToSlash(s.path) + "?_pragma=busy_timeout(5000)"
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			s.openErr = fmt.Errorf("open firefox cookie jar: %w", err)
			return
		}
		db.SetMaxOpenConns(1)
		s.db = db
		s.logger.Debug("firefox cookie jar opened", "path", s.path)
	})

	return s.db, s.openErr
}

func sameSiteFromInt(v int64) domain.SameSite {
	switch v {
	case sameSiteLax:
		return domain.SameSiteLax
	case sameSiteStrict:
		return domain.SameSiteStrict
	default:
		return domain.SameSiteNone
	}
}

func sameSiteToInt(s domain.SameSite) int {
	switch s.Canonical() {
	case domain.SameSiteLax:
		return sameSiteLax
	case domain.SameSiteStrict:
		return sameSiteStrict
	default:
		return sameSiteNone
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
