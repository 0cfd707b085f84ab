package cmd

import (
	"github.com/bnema/session-vault-cli/internal/adapters/nativehost"
	"github.com/spf13/cobra"
)

func newNativeHostCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "native-host",
		Short: "Serve the browser extension message interface over native messaging",
		Long:  "native-host reads length-prefixed JSON messages from stdin and answers on stdout. Browsers start it through a native messaging manifest; it exits when the browser closes the pipe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host := nativehost.NewHost(app.dispatcher, cmd.InOrStdin(), cmd.OutOrStdout(), app.logger)
			return host.Run(cmd.Context())
		},
	}
}
