package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/session-vault-cli/internal/application"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the color theme",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				theme, err := app.preferences.GetTheme(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <light|dark>",
			Short: "Set the theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				theme, err := app.preferences.SetTheme(cmd.Context(), args[0])
				if err != nil {
					app.logger.Debug("set theme failed", "error", err)
					return printBanner(cmd, app, application.PreferenceBanner(err))
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				theme, err := app.preferences.ToggleTheme(cmd.Context())
				if err != nil {
					app.logger.Debug("toggle theme failed", "error", err)
					return printBanner(cmd, app, application.PreferenceBanner(err))
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
				return err
			},
		},
	)

	return cmd
}

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Show or change whether session identifiers are displayed",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print whether identifiers are shown",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				show, err := app.preferences.GetShowSecretID(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(show))
				return err
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Toggle identifier visibility",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				show, err := app.preferences.ToggleShowSecretID(cmd.Context())
				if err != nil {
					app.logger.Debug("toggle secret visibility failed", "error", err)
					return printBanner(cmd, app, application.PreferenceBanner(err))
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(show))
				return err
			},
		},
	)

	return cmd
}
