package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/cli"
	"github.com/PT-IMM-P2H/backend/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "p2h",
		Short:   "P2H - daily pre-operation vehicle inspections",
		Version: version.String(),
		Long: `p2h records P2H (Pemeriksaan Harian) inspections for a mining fleet.

Each vehicle files one checklist report per shift of its operational day.
Configuration is read from .env and P2H_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("user", "", "Acting user ID (default $P2H_USER)")

	// Fleet and checklists
	rootCmd.AddCommand(cli.VehicleCmd())
	rootCmd.AddCommand(cli.ChecklistCmd())

	// Inspections
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.ShiftCmd())

	// Monitoring
	rootCmd.AddCommand(cli.ExpiryCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}
