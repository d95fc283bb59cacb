package cli

import (
	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// VehicleCmd returns the vehicle command group.
func VehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage the vehicle fleet",
		Long:  "Register, list, inspect and update vehicles and their shift type",
	}

	cmd.AddCommand(vehicleCreateCmd())
	cmd.AddCommand(vehicleListCmd())
	cmd.AddCommand(vehicleShowCmd())
	cmd.AddCommand(vehicleUpdateCmd())
	return cmd
}

func vehicleCreateCmd() *cobra.Command {
	var req primary.CreateVehicleRequest

	cmd := &cobra.Command{
		Use:   "create [hull-number]",
		Short: "Register a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.HullNumber = args[0]
			_, err := wire.VehicleAdapter().Create(NewContext(cmd), req)
			return err
		},
	}

	cmd.Flags().StringVar(&req.VehicleType, "type", "", "Vehicle type (e.g. \"Light Vehicle\")")
	cmd.Flags().StringVar(&req.PlateNumber, "plate", "", "Plate number")
	cmd.Flags().StringVar(&req.HullColor, "hull-color", "", "Hull number color")
	cmd.Flags().StringVar(&req.Brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&req.STNKExpiry, "stnk", "", "STNK expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.KIRExpiry, "kir", "", "KIR expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Regime, "shift-type", "", "SHIFT, LONG_SHIFT or NON_SHIFT (default SHIFT)")
	cmd.MarkFlagRequired("type")
	return cmd
}

func vehicleListCmd() *cobra.Command {
	var filters primary.VehicleFilters
	var activeOnly, inactiveOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case activeOnly:
				v := true
				filters.Active = &v
			case inactiveOnly:
				v := false
				filters.Active = &v
			}
			_, err := wire.VehicleAdapter().List(NewContext(cmd), filters)
			return err
		},
	}

	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "Match hull number, plate or brand")
	cmd.Flags().StringVar(&filters.VehicleType, "type", "", "Filter by vehicle type")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active vehicles")
	cmd.Flags().BoolVar(&inactiveOnly, "inactive", false, "Only inactive vehicles")
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "Maximum number of vehicles")
	cmd.Flags().IntVar(&filters.Offset, "offset", 0, "Skip this many vehicles")
	cmd.MarkFlagsMutuallyExclusive("active", "inactive")
	return cmd
}

func vehicleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [hull-number|id]",
		Short: "Show vehicle details and document expiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.VehicleAdapter().Show(NewContext(cmd), args[0])
			return err
		},
	}
}

func vehicleUpdateCmd() *cobra.Command {
	var hull, color, plate, vehicleType, brand, stnk, kir, regime string
	var activate, deactivate bool

	cmd := &cobra.Command{
		Use:   "update [hull-number|id]",
		Short: "Update vehicle fields",
		Long: `Update vehicle fields. Only the flags given are changed.

A shift type change applies from the vehicle's next submission.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			req := primary.UpdateVehicleRequest{
				HullNumber:  optionalString(f.Changed("hull"), hull),
				HullColor:   optionalString(f.Changed("hull-color"), color),
				PlateNumber: optionalString(f.Changed("plate"), plate),
				VehicleType: optionalString(f.Changed("type"), vehicleType),
				Brand:       optionalString(f.Changed("brand"), brand),
				STNKExpiry:  optionalString(f.Changed("stnk"), stnk),
				KIRExpiry:   optionalString(f.Changed("kir"), kir),
				Regime:      optionalString(f.Changed("shift-type"), regime),
			}
			switch {
			case activate:
				v := true
				req.IsActive = &v
			case deactivate:
				v := false
				req.IsActive = &v
			}

			_, err := wire.VehicleAdapter().Update(NewContext(cmd), args[0], req)
			return err
		},
	}

	cmd.Flags().StringVar(&hull, "hull", "", "New hull number")
	cmd.Flags().StringVar(&color, "hull-color", "", "Hull number color")
	cmd.Flags().StringVar(&plate, "plate", "", "Plate number")
	cmd.Flags().StringVar(&vehicleType, "type", "", "Vehicle type")
	cmd.Flags().StringVar(&brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&stnk, "stnk", "", "STNK expiry date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&kir, "kir", "", "KIR expiry date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&regime, "shift-type", "", "SHIFT, LONG_SHIFT or NON_SHIFT")
	cmd.Flags().BoolVar(&activate, "activate", false, "Mark the vehicle active")
	cmd.Flags().BoolVar(&deactivate, "deactivate", false, "Mark the vehicle inactive")
	cmd.MarkFlagsMutuallyExclusive("activate", "deactivate")
	return cmd
}
