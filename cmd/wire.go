package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/session-vault-cli/internal/adapters/browser/cdp"
	"github.com/bnema/session-vault-cli/internal/adapters/browser/firefox"
	"github.com/bnema/session-vault-cli/internal/adapters/browser/system"
	statusadapter "github.com/bnema/session-vault-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/session-vault-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/session-vault-cli/internal/adapters/secrets/chain"
	keyringstore "github.com/bnema/session-vault-cli/internal/adapters/secrets/keyring"
	"github.com/bnema/session-vault-cli/internal/adapters/vaultapi"
	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/logging"
	"github.com/bnema/session-vault-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".session-vault"
	configFileName = "config.toml"
	envPrefix      = "SV"

	keyAPIURL             = "api.url"
	keyBrowserBackend     = "browser.backend"
	keyBrowserControlURL  = "browser.control_url"
	keyBrowserUserDataDir = "browser.user_data_dir"
	keyBrowserBin         = "browser.bin"
	keyFirefoxProfile     = "firefox.profile"

	backendCDP     = "cdp"
	backendFirefox = "firefox"
)

type app struct {
	logger          *slog.Logger
	restore         *application.RestoreService
	history         *application.HistoryService
	preferences     *application.PreferencesService
	dispatcher      *application.MessageDispatcher
	secretStore     ports.SecretStore
	historyRenderer func([]domain.SessionHistoryEntry, statusadapter.RenderOptions) (string, error)
	now             func() time.Time
}

// newSystemNavigator opens URLs for backends that cannot drive tabs.
var newSystemNavigator = func(logger *slog.Logger) ports.Navigator {
	return system.NewNavigator(logger)
}

func wireApp() (*app, error) {
	logger := logging.SetDefault()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	config, err := loadConfig(filepath.Join(homeDir, configDirName, configFileName))
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	secretStore, err := chainstore.NewKeyringFirstWithFileFallback(keyringstore.DefaultService, filepath.Join(homeDir, configDirName, "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	cookies, navigator, err := wireBrowser(config, logger)
	if err != nil {
		return nil, err
	}

	source := &vaultapi.Client{
		Endpoint:   config.GetString(keyAPIURL),
		HTTPClient: http.DefaultClient,
		Secrets:    secretStore,
		Logger:     logger,
	}

	history := application.NewHistoryService(repo, ports.SystemClock{})
	synchronizer := application.NewCookieSynchronizer(cookies, logger)
	restore := application.NewRestoreService(source, synchronizer, history, navigator, logger)

	return &app{
		logger:          logger,
		restore:         restore,
		history:         history,
		preferences:     application.NewPreferencesService(repo),
		dispatcher:      application.NewMessageDispatcher(synchronizer, restore, history),
		secretStore:     secretStore,
		historyRenderer: statusadapter.RenderHistory,
		now:             time.Now,
	}, nil
}

func loadConfig(path string) (*viper.Viper, error) {
	config := viper.New()
	config.SetConfigFile(path)
	config.SetConfigType("toml")
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	config.SetDefault(keyAPIURL, vaultapi.DefaultEndpoint)
	config.SetDefault(keyBrowserBackend, backendCDP)

	if err := config.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return config, nil
}

func wireBrowser(config *viper.Viper, logger *slog.Logger) (ports.CookieStore, ports.Navigator, error) {
	switch backend := strings.ToLower(strings.TrimSpace(config.GetString(keyBrowserBackend))); backend {
	case backendCDP:
		store := cdp.NewStore(cdp.Options{
			ControlURL:  config.GetString(keyBrowserControlURL),
			UserDataDir: config.GetString(keyBrowserUserDataDir),
			BrowserBin:  config.GetString(keyBrowserBin),
			Logger:      logger,
		})
		return store, store, nil
	case backendFirefox:
		store := firefox.NewProfileStore(config.GetString(keyFirefoxProfile), firefox.Roots(), logger)
		return store, newSystemNavigator(logger), nil
	default:
		return nil, nil, fmt.Errorf("unsupported browser backend %q (want %s or %s)", backend, backendCDP, backendFirefox)
	}
}
