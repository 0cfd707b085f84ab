package toml

import "fmt"

const currentSchemaVersion = 1

type stateSchema struct {
	Version        int                  `toml:"version"`
	Theme          string               `toml:"session_vault_theme,omitempty"`
	ShowSecretID   bool                 `toml:"session_vault_show_secret"`
	RecentSessions []historyEntrySchema `toml:"recent_sessions"`
	LastSession    *lastSessionSchema   `toml:"last_session,omitempty"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type historyEntrySchema struct {
	SessionID  string   `toml:"session_id"`
	Timestamp  string   `toml:"timestamp"`
	Domain     string   `toml:"domain"`
	ExpiryDate *float64 `toml:"expiry_date,omitempty"`
	Status     string   `toml:"status"`
}

type lastSessionSchema struct {
	SessionID string         `toml:"session_id"`
	Timestamp string         `toml:"timestamp"`
	Status    string         `toml:"status"`
	URL       string         `toml:"url"`
	Cookies   []cookieSchema `toml:"cookies"`
}

type cookieSchema struct {
	Domain         string   `toml:"domain"`
	Name           string   `toml:"name"`
	Value          string   `toml:"value"`
	Path           string   `toml:"path,omitempty"`
	Secure         bool     `toml:"secure"`
	HTTPOnly       bool     `toml:"http_only"`
	ExpirationDate *float64 `toml:"expiration_date,omitempty"`
	SameSite       string   `toml:"same_site,omitempty"`
	Session        bool     `toml:"session"`
	HostOnly       bool     `toml:"host_only"`
	StoreID        string   `toml:"store_id,omitempty"`
}
