package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/session-vault-cli/internal/domain"
)

// BannerTTL is how long a status banner stays visible.
const BannerTTL = 5 * time.Second

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerWarning BannerKind = "warning"
	BannerError   BannerKind = "error"
)

// Banner is the transient status message shown after a user action.
type Banner struct {
	Kind    BannerKind
	Message string
}

func (b Banner) IsError() bool {
	return b.Kind == BannerError
}

func RestoreBanner(result RestoreResult, err error) Banner {
	switch {
	case err == nil:
		return Banner{Kind: BannerSuccess, Message: fmt.Sprintf("Session restored for %s", result.Domain)}
	case errors.Is(err, domain.ErrInvalidSessionID):
		return Banner{Kind: BannerError, Message: "Invalid Secret ID format."}
	case errors.Is(err, domain.ErrSessionNotFound):
		return Banner{Kind: BannerError, Message: "Session ID not found!"}
	case errors.Is(err, domain.ErrNoCookies), errors.Is(err, domain.ErrInstallFailed):
		return Banner{Kind: BannerError, Message: "Failed to restore cookies!"}
	default:
		return Banner{Kind: BannerError, Message: "Failed to fetch session!"}
	}
}

func DeleteBanner(result DeleteResult, err error) Banner {
	switch {
	case err != nil:
		return Banner{Kind: BannerError, Message: "Failed to delete cookies!"}
	case errors.Is(result.Err, domain.ErrNoCookiesToDelete):
		return Banner{Kind: BannerWarning, Message: fmt.Sprintf("No cookies found for %s", result.Domain)}
	default:
		return Banner{Kind: BannerSuccess, Message: fmt.Sprintf("All cookies deleted for %s", result.Domain)}
	}
}

func HistoryRemovedBanner(err error) Banner {
	if err != nil {
		return Banner{Kind: BannerError, Message: "Failed to remove session from history!"}
	}

	return Banner{Kind: BannerSuccess, Message: "Session removed from history"}
}

func PreferenceBanner(err error) Banner {
	if errors.Is(err, domain.ErrInvalidTheme) {
		return Banner{Kind: BannerError, Message: "Invalid theme."}
	}

	return Banner{Kind: BannerError, Message: "Failed to save preferences!"}
}
