package cli

import (
	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// ChecklistCmd returns the checklist command group.
func ChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Manage P2H checklist templates per vehicle type",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [vehicle-type]",
		Short: "Show the active checklist of a vehicle type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ChecklistAdapter().List(NewContext(cmd), args[0])
			return err
		},
	})
	cmd.AddCommand(checklistAddCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "remove [item-id]",
		Short: "Deactivate a checklist item",
		Long:  "Deactivate a checklist item. Past reports keep referring to it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ChecklistAdapter().Remove(NewContext(cmd), args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "seed [vehicle-type]",
		Short: "Install the default checklist for a vehicle type without one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ChecklistAdapter().Seed(NewContext(cmd), args[0])
			return err
		},
	})
	return cmd
}

func checklistAddCmd() *cobra.Command {
	var req primary.CreateChecklistItemRequest

	cmd := &cobra.Command{
		Use:   "add [vehicle-type] [item-name]",
		Short: "Add a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.VehicleType = args[0]
			req.ItemName = args[1]
			_, err := wire.ChecklistAdapter().Add(NewContext(cmd), req)
			return err
		},
	}

	cmd.Flags().StringVar(&req.SectionName, "section", "", "Section name (e.g. Eksterior)")
	cmd.Flags().IntVar(&req.ItemOrder, "order", 0, "Position within the section")
	cmd.MarkFlagRequired("section")
	return cmd
}
