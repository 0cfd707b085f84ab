package cmd

import (
	"context"
	"fmt"

	statusadapter "github.com/bnema/session-vault-cli/internal/adapters/render/status"
	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/spf13/cobra"
)

// printBanner writes banner in the saved theme. Error banners come back as
// errReported so the command exits non-zero without printing twice.
func printBanner(cmd *cobra.Command, app *app, banner application.Banner) error {
	rendered := statusadapter.RenderBanner(banner, app.theme(cmd.Context()))
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	if banner.IsError() {
		return fmt.Errorf("%w: %s", errReported, banner.Message)
	}
	return nil
}

func (a *app) theme(ctx context.Context) domain.Theme {
	theme, err := a.preferences.GetTheme(ctx)
	if err != nil {
		a.logger.Debug("theme unavailable", "error", err)
		return domain.DefaultTheme
	}
	return theme
}
