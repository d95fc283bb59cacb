package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/PT-IMM-P2H/backend/internal/adapters/cli"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// ReportCmd returns the report command group.
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Submit and inspect P2H reports",
		Long: `Submit and inspect P2H (Pemeriksaan Harian) pre-operation reports.

One report is accepted per vehicle, operational day and shift. SHIFT and
LONG_SHIFT operational days start at 05:00.`,
	}

	cmd.AddCommand(reportSubmitCmd())
	cmd.AddCommand(reportStatusCmd())
	cmd.AddCommand(reportListCmd())
	cmd.AddCommand(reportShowCmd())
	return cmd
}

func reportSubmitCmd() *cobra.Command {
	var vehicleRef string
	var shiftNumber int
	var itemFlags []string
	var allNormal bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a P2H report",
		Long: `Submit a P2H report for a vehicle.

Each --item is ITEM_ID=STATUS[:remark] with STATUS one of NORMAL, WARNING
or ABNORMAL. WARNING and ABNORMAL need a remark. With --all-normal every
item of the vehicle's checklist is NORMAL unless an --item overrides it.

A rejected submission (shift already filed, outside its hours) prints the
reason and is not a command failure.`,
		Example: `  p2h report submit --vehicle LV-012 --all-normal
  p2h report submit --vehicle LV-012 --all-normal --item 5c1d...=ABNORMAL:"rem blong"
  p2h report submit --vehicle DT-301 --shift 12 --item 5c1d...=NORMAL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext(cmd)

			overrides := make([]primary.ReportDetailInput, 0, len(itemFlags))
			for _, s := range itemFlags {
				d, err := parseDetail(s)
				if err != nil {
					return err
				}
				overrides = append(overrides, d)
			}

			vehicle, err := cliadapter.ResolveVehicle(ctx, wire.VehicleService(), vehicleRef)
			if err != nil {
				return fmt.Errorf("failed to get vehicle: %w", err)
			}

			details := overrides
			if allNormal {
				items, err := wire.ChecklistService().ListChecklist(ctx, vehicle.VehicleType)
				if err != nil {
					return err
				}
				details = mergeDetails(items, overrides)
			}

			req := primary.SubmitReportRequest{
				VehicleID: vehicle.ID,
				Details:   details,
			}
			if cmd.Flags().Changed("shift") {
				req.ShiftNumber = &shiftNumber
			}

			_, err = wire.ReportAdapter().Submit(ctx, req)
			return err
		},
	}

	cmd.Flags().StringVarP(&vehicleRef, "vehicle", "v", "", "Vehicle hull number or ID")
	cmd.Flags().IntVar(&shiftNumber, "shift", 0, "Shift code (default: the current shift)")
	cmd.Flags().StringArrayVar(&itemFlags, "item", nil, "Checklist result ITEM_ID=STATUS[:remark] (repeatable)")
	cmd.Flags().BoolVar(&allNormal, "all-normal", false, "Mark every checklist item NORMAL unless overridden")
	cmd.MarkFlagRequired("vehicle")
	return cmd
}

func reportStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [hull-number|id]",
		Short: "Show whether a vehicle can file P2H now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ReportAdapter().Status(NewContext(cmd), args[0])
			return err
		},
	}
}

func reportListCmd() *cobra.Command {
	var vehicleRef string
	var filters primary.ReportFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext(cmd)
			if vehicleRef != "" {
				vehicle, err := cliadapter.ResolveVehicle(ctx, wire.VehicleService(), vehicleRef)
				if err != nil {
					return fmt.Errorf("failed to get vehicle: %w", err)
				}
				filters.VehicleID = vehicle.ID
			}
			_, err := wire.ReportAdapter().List(ctx, filters)
			return err
		},
	}

	cmd.Flags().StringVarP(&vehicleRef, "vehicle", "v", "", "Vehicle hull number or ID")
	cmd.Flags().IntVar(&filters.Limit, "limit", 20, "Maximum number of reports")
	cmd.Flags().IntVar(&filters.Offset, "offset", 0, "Skip this many reports")
	return cmd
}

func reportShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [report-id]",
		Short: "Show a report with its checklist results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.ReportAdapter().Show(NewContext(cmd), args[0])
			return err
		},
	}
}
