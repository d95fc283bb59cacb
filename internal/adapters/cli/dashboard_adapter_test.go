package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

func TestDashboardAdapter_Stats(t *testing.T) {
	dashboard := &mockDashboardService{stats: &primary.Statistics{
		TotalVehicles: 12, TotalReports: 30, Normal: 25, Warning: 3, Abnormal: 2, PendingToday: 4,
	}}
	var out bytes.Buffer
	adapter := NewDashboardAdapter(dashboard, &mockExpiryService{}, &out)

	if _, err := adapter.Stats(context.Background(), "", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := out.String()
	for _, want := range []string{"Active vehicles:  12", "Pending today:    4", "Reports:          30", "ABNORMAL"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDashboardAdapter_Monthly(t *testing.T) {
	months := make([]primary.MonthCount, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	months[2].Normal = 41
	dashboard := &mockDashboardService{monthly: &primary.MonthlyReport{Year: 2026, Months: months}}
	var out bytes.Buffer
	adapter := NewDashboardAdapter(dashboard, &mockExpiryService{}, &out)

	if _, err := adapter.Monthly(context.Background(), 2026, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := out.String()
	for _, want := range []string{"P2H reports 2026 (all vehicle types)", "Jan", "Mar", "41", "Dec"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDashboardAdapter_Expiries(t *testing.T) {
	expiry := &mockExpiryService{alerts: []*primary.ExpiryAlert{
		{HullNumber: "LV-002", Document: "KIR", ExpiryDate: "2026-03-09", DaysRemaining: -1, Threshold: 0},
		{HullNumber: "LV-001", Document: "STNK", ExpiryDate: "2026-03-15", DaysRemaining: 5, Threshold: 7},
	}}
	var out bytes.Buffer
	adapter := NewDashboardAdapter(&mockDashboardService{}, expiry, &out)

	if _, err := adapter.Expiries(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := out.String()
	for _, want := range []string{"LV-002", "expired 1 day(s) ago", "LV-001", "5 day(s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDashboardAdapter_Expiries_None(t *testing.T) {
	var out bytes.Buffer
	adapter := NewDashboardAdapter(&mockDashboardService{}, &mockExpiryService{}, &out)

	if _, err := adapter.Expiries(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "No documents near expiry") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestDashboardAdapter_Error(t *testing.T) {
	adapter := NewDashboardAdapter(&mockDashboardService{err: errors.New("boom")}, &mockExpiryService{}, &bytes.Buffer{})

	if _, err := adapter.Stats(context.Background(), "", ""); err == nil {
		t.Error("expected error")
	}
}

func TestLogAdapter_List(t *testing.T) {
	service := &mockLogService{entries: []*primary.LogEntry{
		{Timestamp: "2026-03-10T08:00:00Z", ActorID: "admin", Action: "update", EntityType: "vehicle", EntityID: "v1", FieldName: "shift_type", OldValue: "SHIFT", NewValue: "NON_SHIFT"},
		{Timestamp: "2026-03-10T07:00:00Z", Action: "create", EntityType: "p2h_report", EntityID: "r1"},
	}}
	var out bytes.Buffer
	adapter := NewLogAdapter(service, &out)

	if _, err := adapter.List(context.Background(), primary.LogFilters{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := out.String()
	for _, want := range []string{`v1.shift_type: "SHIFT" → "NON_SHIFT"`, "system", "create p2h_report r1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}
