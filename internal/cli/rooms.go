package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/example/frontdesk/internal/config"
	"github.com/example/frontdesk/internal/console"
	coreroom "github.com/example/frontdesk/internal/core/room"
	"github.com/example/frontdesk/internal/ports/primary"
	"github.com/example/frontdesk/internal/wire"
)

// RoomsCmd returns the rooms command, a one-shot listing of the inventory
// without entering the interactive session.
func RoomsCmd() *cobra.Command {
	var roomType int

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Print the room inventory and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := wire.RoomService()
			if err != nil {
				return err
			}

			var rooms []*primary.Room
			if t, ok := coreroom.ParseType(roomType); ok {
				rooms, err = svc.FilterByType(cmd.Context(), t)
			} else {
				rooms, err = svc.ListRooms(cmd.Context())
			}
			if err != nil {
				return err
			}

			cfg := config.Load()
			console.NewRenderer(os.Stdout, cfg.Currency).RoomTable(rooms)
			return nil
		},
	}

	cmd.Flags().IntVarP(&roomType, "type", "t", 0, "Filter by room type (1: Single, 2: Double)")
	return cmd
}
