// Package main provides the moneywise CLI, a terminal front-end over the
// same authenticated API layer the bot uses.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moneywise/client-go/internal/api"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Session expired. Run `moneywise login` to sign in again.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moneywise",
		Short:         "Personal finance from the terminal",
		Long:          "moneywise talks to the MoneyWise API: accounts, transfers, reports and exports.\nSign in once with `moneywise login`; the session is kept on disk until logout or expiry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		verifyEmailCmd(),
		accountsCmd(),
		transferCmd(),
		reportCmd(),
		exportCmd(),
		goalsCmd(),
		notificationsCmd(),
	)

	return cmd
}
