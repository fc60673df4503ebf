// Package cli wires the cobra commands for the frontdesk binary.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/frontdesk/internal/version"
	"github.com/example/frontdesk/internal/wire"
)

// RootCmd returns the root command. Running it with no subcommand starts
// the interactive front-desk session.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "frontdesk",
		Short:   "Hotel front-desk console",
		Version: version.String(),
		Long: `frontdesk is an interactive console for a hotel reception: room
inventory, check-ins and rental history. All data lives in memory and is
gone when the program exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := wire.Session(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.AddCommand(RoomsCmd())
	return cmd
}
