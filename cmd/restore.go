package cmd

import (
	"context"

	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRestoreCmd(app *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "restore <session-id>",
		Short: "Restore a stored session into the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result     application.RestoreResult
				restoreErr error
			)
			restore := func(ctx context.Context) error {
				result, restoreErr = app.restore.Restore(ctx, args[0])
				return nil
			}

			if quiet {
				_ = restore(cmd.Context())
			} else if err := runActionSpinner(cmd.Context(), cmd.ErrOrStderr(), "Restoring session...", restore); err != nil {
				return err
			}

			if restoreErr != nil {
				app.logger.Debug("restore failed", "error", restoreErr)
			}
			return printBanner(cmd, app, application.RestoreBanner(result, restoreErr))
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not show a spinner")

	return cmd
}

func newDeleteCmd(app *app) *cobra.Command {
	var tabURL string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every cookie of the current tab's domain and reload it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.restore.DeleteCurrentTab(cmd.Context(), tabURL)
			if err != nil {
				app.logger.Debug("delete failed", "error", err)
			}
			return printBanner(cmd, app, application.DeleteBanner(result, err))
		},
	}

	cmd.Flags().StringVar(&tabURL, "url", "", "Tab URL to clean (default: the browser's active tab)")

	return cmd
}
