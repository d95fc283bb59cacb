package cli

import (
	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// LogCmd returns the audit log command group.
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View the audit trail",
	}

	var filters primary.LogFilters
	show := &cobra.Command{
		Use:   "show [entity-id]",
		Short: "Show recent audit entries",
		Long:  "Show recent audit entries, optionally for one vehicle, checklist item or report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				filters.EntityID = args[0]
			}
			_, err := wire.LogAdapter().List(NewContext(cmd), filters)
			return err
		},
	}
	show.Flags().StringVar(&filters.EntityType, "type", "", "Entity type (vehicle, checklist_item, p2h_report)")
	show.Flags().StringVar(&filters.ActorID, "actor", "", "Only entries by this actor")
	show.Flags().IntVar(&filters.Limit, "limit", 50, "Maximum number of entries")

	cmd.AddCommand(show)
	return cmd
}
