package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// DashboardAdapter renders fleet statistics and expiry alerts.
type DashboardAdapter struct {
	dashboard primary.DashboardService
	expiry    primary.ExpiryService
	out       io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given services.
func NewDashboardAdapter(dashboard primary.DashboardService, expiry primary.ExpiryService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		dashboard: dashboard,
		expiry:    expiry,
		out:       out,
	}
}

// Stats prints report totals for an optional operational-day range.
func (a *DashboardAdapter) Stats(ctx context.Context, from, to string) (*primary.Statistics, error) {
	s, err := a.dashboard.GetStatistics(ctx, from, to)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Active vehicles:  %d\n", s.TotalVehicles)
	fmt.Fprintf(a.out, "Pending today:    %d\n", s.PendingToday)
	fmt.Fprintf(a.out, "Reports:          %d\n", s.TotalReports)
	fmt.Fprintf(a.out, "  %-9s %d\n", statusLabel(primary.StatusNormal), s.Normal)
	fmt.Fprintf(a.out, "  %-9s %d\n", statusLabel(primary.StatusWarning), s.Warning)
	fmt.Fprintf(a.out, "  %-9s %d\n", statusLabel(primary.StatusAbnormal), s.Abnormal)
	return s, nil
}

// Monthly prints per-month status counts for a year.
func (a *DashboardAdapter) Monthly(ctx context.Context, year int, vehicleType string) (*primary.MonthlyReport, error) {
	m, err := a.dashboard.GetMonthlyReports(ctx, year, vehicleType)
	if err != nil {
		return nil, err
	}

	scope := "all vehicle types"
	if m.VehicleType != "" {
		scope = m.VehicleType
	}
	fmt.Fprintf(a.out, "P2H reports %d (%s)\n\n", m.Year, scope)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "MONTH\tNORMAL\tWARNING\tABNORMAL\t")
	for _, mc := range m.Months {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t\n", time.Month(mc.Month).String()[:3], mc.Normal, mc.Warning, mc.Abnormal)
	}
	w.Flush()
	return m, nil
}

// Expiries prints documents that crossed an alert threshold.
func (a *DashboardAdapter) Expiries(ctx context.Context) ([]*primary.ExpiryAlert, error) {
	alerts, err := a.expiry.CheckExpiries(ctx)
	if err != nil {
		return nil, err
	}

	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No documents near expiry.")
		return alerts, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HULL\tPLATE\tDOCUMENT\tEXPIRES\tREMAINING")
	fmt.Fprintln(w, "----\t-----\t--------\t-------\t---------")
	for _, al := range alerts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			al.HullNumber,
			orDash(al.PlateNumber),
			al.Document,
			al.ExpiryDate,
			daysLabel(al.DaysRemaining),
		)
	}
	w.Flush()
	return alerts, nil
}
