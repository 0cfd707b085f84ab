package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	statusadapter "github.com/bnema/session-vault-cli/internal/adapters/render/status"
	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and edit recent sessions",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryLastCmd(app),
		newHistoryStatusCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *app) *cobra.Command {
	var asJSON bool
	var show bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.history.GetRecentSessions(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, application.RecentSessionViews(entries))
			}

			prefs, err := app.preferences.Load(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.historyRenderer(entries, statusadapter.RenderOptions{
				Now:          app.now(),
				Theme:        prefs.Theme,
				ShowSecretID: show || prefs.ShowSecretID,
			})
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&show, "show", false, "Show full session identifiers")

	return cmd
}

func newHistoryRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <session-id>",
		Short: "Remove a session from the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.history.RemoveSession(cmd.Context(), domain.SessionID(args[0]))
			if err != nil {
				app.logger.Debug("remove from history failed", "error", err)
			}
			return printBanner(cmd, app, application.HistoryRemovedBanner(err))
		},
	}
}

func newHistoryLastCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the last restored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			last, err := app.history.GetLastSession(cmd.Context())
			if errors.Is(err, application.ErrNoLastSession) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No session restored yet.")
				return err
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, lastSessionView{
					SessionID: string(last.SessionID),
					Timestamp: last.Timestamp.UnixMilli(),
					Status:    string(last.Status),
					Data:      last.Bundle,
				})
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d cookies  %s\n",
				last.SessionID, last.Bundle.Domain(), last.Status, len(last.Bundle.Cookies),
				statusadapter.FormatAge(last.Timestamp, app.now()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newHistoryStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <session-id> <active|expired|invalid>",
		Short: "Set the status recorded for a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.history.UpdateSessionStatus(cmd.Context(), domain.SessionID(args[0]), domain.SessionStatus(args[1]))
		},
	}
}

type lastSessionView struct {
	SessionID string               `json:"sessionId"`
	Timestamp int64                `json:"timestamp"`
	Status    string               `json:"status"`
	Data      domain.SessionBundle `json:"data"`
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
