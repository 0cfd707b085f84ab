package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/session-vault-cli/internal/adapters/vaultapi"
	"github.com/spf13/cobra"
)

var errEmptyToken = errors.New("api token is empty")

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the vault API token",
	}

	cmd.AddCommand(newAuthSetTokenCmd(app), newAuthRemoveTokenCmd(app))

	return cmd
}

func newAuthSetTokenCmd(app *app) *cobra.Command {
	var token string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set-token",
		Short: "Store the bearer token sent to the vault API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fromStdin {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read token from stdin: %w", err)
				}
				token = string(raw)
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return errEmptyToken
			}

			if err := app.secretStore.Put(cmd.Context(), vaultapi.TokenSecretKey, token); err != nil {
				return fmt.Errorf("store api token: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API token saved")
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the token from stdin")
	cmd.MarkFlagsMutuallyExclusive("token", "stdin")
	cmd.MarkFlagsOneRequired("token", "stdin")

	return cmd
}

func newAuthRemoveTokenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-token",
		Short: "Delete the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), vaultapi.TokenSecretKey); err != nil {
				return fmt.Errorf("remove api token: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API token removed")
			return err
		},
	}
}
