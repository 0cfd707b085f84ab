package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errReported marks an error whose banner was already printed.
var errReported = errors.New("reported")

func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sv",
		Short:         "Session Vault (sv): restore and delete browser cookie sessions",
		Long:          "sv (Session Vault) fetches stored cookie sessions by identifier, installs them into your browser and opens the session page. It can also wipe the cookies of the current tab and keeps a short history of recent sessions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPopupCmd(app),
		newRestoreCmd(app),
		newDeleteCmd(app),
		newHistoryCmd(app),
		newThemeCmd(app),
		newSecretCmd(app),
		newAuthCmd(app),
		newNativeHostCmd(app),
	)

	return rootCmd
}
