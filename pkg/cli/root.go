// Package cli implements portfolioctl, a small terminal client for the
// portfolio backend. It drives the same form controller the site uses,
// so validation and status behavior match the browser exactly.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Client for the portfolio backend API",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("server", "http://localhost:8080", "Base URL of the portfolio backend")

	cmd.AddCommand(
		newSubmitCommand(),
		newHealthCommand(),
	)
	return cmd
}
