package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// DashboardCmd returns the dashboard command group.
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Fleet P2H statistics",
	}

	cmd.AddCommand(dashboardStatsCmd())
	cmd.AddCommand(dashboardMonthlyCmd())
	return cmd
}

func dashboardStatsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report totals per status and vehicles still pending today",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.DashboardAdapter().Stats(NewContext(cmd), from, to)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First operational day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last operational day (YYYY-MM-DD)")
	return cmd
}

func dashboardMonthlyCmd() *cobra.Command {
	var year int
	var vehicleType string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Report counts per month for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = time.Now().In(wire.Config().Location).Year()
			}
			_, err := wire.DashboardAdapter().Monthly(NewContext(cmd), year, vehicleType)
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current year)")
	cmd.Flags().StringVar(&vehicleType, "type", "", "Only this vehicle type")
	return cmd
}

// ExpiryCmd returns the expiry command group.
func ExpiryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expiry",
		Short: "STNK and KIR document expiry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "List active vehicles with documents near or past expiry",
		Long:  "List active vehicles whose STNK or KIR crossed a configured threshold (P2H_EXPIRY_THRESHOLDS).",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.DashboardAdapter().Expiries(NewContext(cmd))
			return err
		},
	})
	return cmd
}
