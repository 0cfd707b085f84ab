package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".session-vault"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Repository persists history and preferences in a single TOML file. Each
// call reads or rewrites the whole file under a per-path lock.
type Repository struct {
	statePath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.SessionRepository     = (*Repository)(nil)
	_ ports.PreferencesRepository = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	statePath := cfg.GetString(StatePathKey)
	if statePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		statePath = filepath.Join(homeDir, stateConfigDir, stateConfigFile)
	}

	statePath, err := normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Repository{statePath: statePath, mu: lockForPath(statePath)}, nil
}

func (r *Repository) Path() string {
	return r.statePath
}

func (r *Repository) ListRecent(ctx context.Context) ([]domain.SessionHistoryEntry, error) {
	file, err := r.view(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SessionHistoryEntry, 0, len(file.RecentSessions))
	for _, entry := range file.RecentSessions {
		entries = append(entries, fromHistorySchema(entry))
	}

	return entries, nil
}

func (r *Repository) SaveRecent(ctx context.Context, entries []domain.SessionHistoryEntry) error {
	return r.update(ctx, func(file *stateSchema) {
		file.RecentSessions = make([]historyEntrySchema, 0, len(entries))
		for _, entry := range entries {
			file.RecentSessions = append(file.RecentSessions, toHistorySchema(entry))
		}
	})
}

func (r *Repository) GetLast(ctx context.Context) (domain.LastSession, error) {
	file, err := r.view(ctx)
	if err != nil {
		return domain.LastSession{}, err
	}
	if file.LastSession == nil {
		return domain.LastSession{}, nil
	}

	return fromLastSessionSchema(*file.LastSession), nil
}

func (r *Repository) SaveLast(ctx context.Context, last domain.LastSession) error {
	return r.update(ctx, func(file *stateSchema) {
		encoded := toLastSessionSchema(last)
		file.LastSession = &encoded
	})
}

func (r *Repository) GetTheme(ctx context.Context) (domain.Theme, error) {
	file, err := r.view(ctx)
	if err != nil {
		return "", err
	}

	return domain.Theme(file.Theme), nil
}

func (r *Repository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return r.update(ctx, func(file *stateSchema) {
		file.Theme = string(theme)
	})
}

func (r *Repository) GetShowSecretID(ctx context.Context) (bool, error) {
	file, err := r.view(ctx)
	if err != nil {
		return false, err
	}

	return file.ShowSecretID, nil
}

func (r *Repository) SaveShowSecretID(ctx context.Context, show bool) error {
	return r.update(ctx, func(file *stateSchema) {
		file.ShowSecretID = show
	})
}

func (r *Repository) view(ctx context.Context) (stateSchema, error) {
	if err := ctx.Err(); err != nil {
		return stateSchema{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.readSchema()
}

func (r *Repository) update(ctx context.Context, mutate func(*stateSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	mutate(&file)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (stateSchema, error) {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return stateSchema{}, nil
		}
		return stateSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var file stateSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return stateSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return stateSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file stateSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.statePath, stateFileMode); err != nil {
		return fmt.Errorf("chmod state file: %w", err)
	}

	return nil
}

func toHistorySchema(entry domain.SessionHistoryEntry) historyEntrySchema {
	return historyEntrySchema{
		SessionID:  string(entry.SessionID),
		Timestamp:  formatTime(entry.Timestamp),
		Domain:     entry.Domain,
		ExpiryDate: entry.ExpiryDate,
		Status:     string(entry.Status),
	}
}

func fromHistorySchema(entry historyEntrySchema) domain.SessionHistoryEntry {
	return domain.SessionHistoryEntry{
		SessionID:  domain.SessionID(entry.SessionID),
		Timestamp:  parseTime(entry.Timestamp),
		Domain:     entry.Domain,
		ExpiryDate: entry.ExpiryDate,
		Status:     domain.SessionStatus(entry.Status),
	}
}

func toLastSessionSchema(last domain.LastSession) lastSessionSchema {
	cookies := make([]cookieSchema, 0, len(last.Bundle.Cookies))
	for _, cookie := range last.Bundle.Cookies {
		cookies = append(cookies, cookieSchema{
			Domain:         cookie.Domain,
			Name:           cookie.Name,
			Value:          cookie.Value,
			Path:           cookie.Path,
			Secure:         cookie.Secure,
			HTTPOnly:       cookie.HTTPOnly,
			ExpirationDate: cookie.ExpirationDate,
			SameSite:       string(cookie.SameSite),
			Session:        cookie.Session,
			HostOnly:       cookie.HostOnly,
			StoreID:        cookie.StoreID,
		})
	}

	return lastSessionSchema{
		SessionID: string(last.SessionID),
		Timestamp: formatTime(last.Timestamp),
		Status:    string(last.Status),
		URL:       last.Bundle.URL,
		Cookies:   cookies,
	}
}

func fromLastSessionSchema(last lastSessionSchema) domain.LastSession {
	var cookies []domain.Cookie
	if len(last.Cookies) > 0 {
		cookies = make([]domain.Cookie, 0, len(last.Cookies))
	}
	for _, cookie := range last.Cookies {
		cookies = append(cookies, domain.Cookie{
			Domain:         cookie.Domain,
			Name:           cookie.Name,
			Value:          cookie.Value,
			Path:           cookie.Path,
			Secure:         cookie.Secure,
			HTTPOnly:       cookie.HTTPOnly,
			ExpirationDate: cookie.ExpirationDate,
			SameSite:       domain.SameSite(cookie.SameSite),
			Session:        cookie.Session,
			HostOnly:       cookie.HostOnly,
			StoreID:        cookie.StoreID,
		})
	}

	return domain.LastSession{
		SessionID: domain.SessionID(last.SessionID),
		Timestamp: parseTime(last.Timestamp),
		Status:    domain.SessionStatus(last.Status),
		Bundle:    domain.SessionBundle{URL: last.URL, Cookies: cookies},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
