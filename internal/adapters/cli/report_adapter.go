package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// ReportAdapter is a thin adapter that translates CLI operations to P2HService calls.
type ReportAdapter struct {
	service  primary.P2HService
	vehicles primary.VehicleService
	out      io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given services.
func NewReportAdapter(service primary.P2HService, vehicles primary.VehicleService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service:  service,
		vehicles: vehicles,
		out:      out,
	}
}

// Submit files a report and prints the outcome. A rejection is not an error.
func (a *ReportAdapter) Submit(ctx context.Context, req primary.SubmitReportRequest) (*primary.SubmitReportResponse, error) {
	resp, err := a.service.SubmitReport(ctx, req)
	if err != nil {
		return nil, err
	}

	if !resp.Accepted {
		fmt.Fprintf(a.out, "%s P2H rejected: %s\n", red.Sprint("✗"), resp.Reason)
		return resp, nil
	}

	r := resp.Report
	fmt.Fprintf(a.out, "%s P2H report %s accepted\n", green.Sprint("✓"), r.ID)
	fmt.Fprintf(a.out, "  Shift:           %s\n", r.ShiftName)
	fmt.Fprintf(a.out, "  Operational day: %s\n", r.OperationalDay)
	fmt.Fprintf(a.out, "  Overall status:  %s\n", statusLabel(r.OverallStatus))
	return resp, nil
}

// Status prints whether a vehicle, by ID or hull number, can file P2H now.
func (a *ReportAdapter) Status(ctx context.Context, ref string) (*primary.VehicleStatus, error) {
	v, err := ResolveVehicle(ctx, a.vehicles, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	st, err := a.service.GetVehicleStatus(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nVehicle:         %s (%s)\n", st.Vehicle.HullNumber, st.Vehicle.Regime)
	fmt.Fprintf(a.out, "Operational day: %s\n", st.OperationalDay)
	fmt.Fprintf(a.out, "Current shift:   %s\n", st.CurrentShiftName)
	fmt.Fprintf(a.out, "Completed:       %s\n", shiftList(st.ShiftsCompleted))
	if st.CanSubmit {
		fmt.Fprintf(a.out, "Can submit:      %s\n", green.Sprint("yes"))
	} else {
		fmt.Fprintf(a.out, "Can submit:      %s\n", yellow.Sprint("no"))
	}
	if st.CompletedToday {
		fmt.Fprintln(a.out, "All shifts of the day are done.")
	}
	fmt.Fprintln(a.out, st.Message)
	fmt.Fprintln(a.out)

	return st, nil
}

// List lists reports, newest first.
func (a *ReportAdapter) List(ctx context.Context, filters primary.ReportFilters) ([]*primary.Report, error) {
	reports, err := a.service.ListReports(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports found.")
		return reports, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tDAY\tSHIFT\tSTATUS\tSUBMITTED")
	fmt.Fprintln(w, "--\t-------\t---\t-----\t------\t---------")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s %s\n",
			r.ID,
			r.VehicleID,
			r.OperationalDay,
			r.ShiftName,
			statusLabel(r.OverallStatus),
			r.SubmissionDate,
			r.SubmissionTime,
		)
	}
	w.Flush()
	return reports, nil
}

// Show displays a report with its checklist results.
func (a *ReportAdapter) Show(ctx context.Context, reportID string) (*primary.Report, error) {
	r, err := a.service.GetReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	fmt.Fprintf(a.out, "\nReport: %s\n", r.ID)
	fmt.Fprintf(a.out, "Vehicle:   %s\n", r.VehicleID)
	fmt.Fprintf(a.out, "Filed by:  %s\n", r.UserID)
	fmt.Fprintf(a.out, "Shift:     %s on %s\n", r.ShiftName, r.OperationalDay)
	fmt.Fprintf(a.out, "Submitted: %s %s\n", r.SubmissionDate, r.SubmissionTime)
	fmt.Fprintf(a.out, "Status:    %s\n\n", statusLabel(r.OverallStatus))

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ITEM\tSTATUS\tREMARK")
	for _, d := range r.Details {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ChecklistItemID, statusLabel(d.Status), orDash(d.Remark))
	}
	w.Flush()
	fmt.Fprintln(a.out)

	return r, nil
}

func shiftList(codes []int) string {
	if len(codes) == 0 {
		return "none"
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ", ")
}
