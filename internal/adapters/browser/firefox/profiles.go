package firefox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-ini/ini"
)

const cookiesFile = "cookies.sqlite"

var ErrProfileNotFound = errors.New("firefox profile not found")

// Roots returns the directories holding profiles.ini on this platform.
func Roots() []string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return []string{filepath.Join(appData, "Mozilla", "Firefox")}
		}
		return nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		return []string{filepath.Join(home, "Library", "Application Support", "Firefox")}
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		return []string{
			filepath.Join(home, ".mozilla", "firefox"),
			filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox"),
		}
	}
}

// ResolveCookieDB finds the cookies.sqlite to use. override may be a
// cookies.sqlite path, a profile directory, a profile name or a directory
// basename. Without override the profile marked Default=1 wins, then the
// first profile that has a cookie jar.
func ResolveCookieDB(override string, roots []string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		if info, err := os.Stat(override); err == nil {
			if !info.IsDir() {
				return override, nil
			}
			dbPath := filepath.Join(override, cookiesFile)
			if fileExists(dbPath) {
				return dbPath, nil
			}
			return "", fmt.Errorf("%w: no %s in %q", ErrProfileNotFound, cookiesFile, override)
		}
	}

	var fallback string
	for _, root := range roots {
		cfg, err := ini.Load(filepath.Join(root, "profiles.ini"))
		if err != nil {
			continue
		}

		for _, name := range cfg.SectionStrings() {
			if !strings.HasPrefix(name, "Profile") {
				continue
			}
			sec := cfg.Section(name)
			dir := filepath.FromSlash(sec.Key("Path").String())
			if dir == "" {
				continue
			}
			if sec.Key("IsRelative").MustBool(true) {
				dir = filepath.Join(root, dir)
			}

			dbPath := filepath.Join(dir, cookiesFile)
			if !fileExists(dbPath) {
				continue
			}

			if override != "" {
				if sec.Key("Name").String() == override || filepath.Base(dir) == override {
					return dbPath, nil
				}
				continue
			}
			if sec.Key("Default").String() == "1" {
				return dbPath, nil
			}
			if fallback == "" {
				fallback = dbPath
			}
		}
	}

	if fallback != "" {
		return fallback, nil
	}
	if override != "" {
		return "", fmt.Errorf("%w: %q", ErrProfileNotFound, override)
	}
	return "", ErrProfileNotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
