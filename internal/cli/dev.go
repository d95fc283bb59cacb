package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// devFleet is the sample fleet installed by `p2h dev seed`.
var devFleet = []primary.CreateVehicleRequest{
	{HullNumber: "LV-012", HullColor: "Kuning", PlateNumber: "KT 1234 AB", VehicleType: "Light Vehicle", Brand: "Toyota Hilux", STNKExpiry: "2027-01-31", KIRExpiry: "2026-11-30", Regime: "SHIFT"},
	{HullNumber: "LV-027", HullColor: "Kuning", PlateNumber: "KT 2210 AC", VehicleType: "Light Vehicle", Brand: "Mitsubishi Triton", STNKExpiry: "2026-12-15", Regime: "NON_SHIFT"},
	{HullNumber: "DT-301", HullColor: "Putih", PlateNumber: "KT 9876 CD", VehicleType: "Dump Truck", Brand: "Hino 500", STNKExpiry: "2027-05-01", KIRExpiry: "2027-02-01", Regime: "LONG_SHIFT"},
	{HullNumber: "BUS-03", HullColor: "Putih", PlateNumber: "KT 7001 BU", VehicleType: "Bus", Brand: "Isuzu Elf", KIRExpiry: "2027-03-20", Regime: "NON_SHIFT"},
}

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
	}

	cmd.AddCommand(devSeedCmd())
	return cmd
}

func devSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install a sample fleet and default checklists",
		Long: `Install a sample fleet and the default checklist for each vehicle type.

Vehicles whose hull number already exists are skipped, so seeding twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			if !force {
				fmt.Printf("This will add sample data to: %s\n", cfg.DBDSN)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			ctx := NewContext(cmd)
			types := map[string]bool{}
			for _, req := range devFleet {
				types[req.VehicleType] = true
				v, err := wire.VehicleService().CreateVehicle(ctx, req)
				if errors.Is(err, secondary.ErrDuplicateHullNumber) {
					fmt.Printf("  %s exists, skipped\n", req.HullNumber)
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to seed vehicle %s: %w", req.HullNumber, err)
				}
				fmt.Printf("✓ Vehicle %s (%s, %s)\n", v.HullNumber, v.VehicleType, v.Regime)
			}

			for _, req := range devFleet {
				if !types[req.VehicleType] {
					continue
				}
				delete(types, req.VehicleType)
				n, err := wire.ChecklistService().SeedDefaults(ctx, req.VehicleType)
				if err != nil {
					return err
				}
				if n > 0 {
					fmt.Printf("✓ Checklist for %s (%d items)\n", req.VehicleType, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
