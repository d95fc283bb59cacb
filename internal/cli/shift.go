package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
	"github.com/PT-IMM-P2H/backend/internal/wire"
)

// ShiftCmd returns the shift command group.
func ShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Show shift windows and the current shift",
	}

	cmd.AddCommand(shiftNowCmd())
	cmd.AddCommand(shiftTableCmd())
	return cmd
}

func shiftNowCmd() *cobra.Command {
	var regimeName string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current shift and operational day",
		RunE: func(cmd *cobra.Command, args []string) error {
			regimes := []shift.Regime{shift.RegimeShift, shift.RegimeLongShift, shift.RegimeNonShift}
			if regimeName != "" {
				r, err := shift.ParseRegime(regimeName)
				if err != nil {
					return err
				}
				regimes = []shift.Regime{r}
			}

			now := (&clock.System{Location: wire.Config().Location}).Now()
			fmt.Printf("Now: %s\n\n", now.Format("2006-01-02 15:04 MST"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "SHIFT TYPE\tSHIFT\tOPERATIONAL DAY\tOPEN")
			for _, r := range regimes {
				s := shift.Resolve(now, r)
				open, reason := shift.IsValidAt(s, now)
				state := "yes"
				if !open {
					state = reason
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r, s, shift.OperationalDate(now, r), state)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&regimeName, "shift-type", "", "Only this shift type")
	return cmd
}

func shiftTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List all shifts with duty and filing hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tSHIFT TYPE\tDUTY\tFILING")
			for _, r := range []shift.Regime{shift.RegimeShift, shift.RegimeLongShift, shift.RegimeNonShift} {
				for _, d := range shift.ShiftsFor(r) {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", int(d.Shift), d.Name, d.Regime, d.Nominal, d.Accepted)
				}
			}
			w.Flush()
			return nil
		},
	}
}
