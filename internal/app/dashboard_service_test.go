package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

func TestGetStatistics(t *testing.T) {
	vehicles, _, reports := seededRepos()
	vehicles.vehicles["c"] = &secondary.VehicleRecord{ID: "c", HullNumber: "BUS-01", Regime: "NON_SHIFT", IsActive: true}
	vehicles.vehicles["d"] = &secondary.VehicleRecord{ID: "d", HullNumber: "OLD-01", Regime: "SHIFT", IsActive: false}

	// 03:00 on the 11th: rotating vehicles are on the 10th, NON_SHIFT on the 11th.
	clk := at(2026, time.March, 11, 3, 0)
	reports.reports["r1"] = &secondary.ReportRecord{ID: "r1", VehicleID: vehicleLV, Shift: 1, OperationalDay: "2026-03-10", OverallStatus: "NORMAL"}
	reports.reports["r2"] = &secondary.ReportRecord{ID: "r2", VehicleID: "c", Shift: 0, OperationalDay: "2026-03-10", OverallStatus: "ABNORMAL"}
	reports.reports["r3"] = &secondary.ReportRecord{ID: "r3", VehicleID: vehicleDT, Shift: 11, OperationalDay: "2026-03-09", OverallStatus: "WARNING"}

	svc := NewDashboardService(vehicles, reports, clk, nil)

	stats, err := svc.GetStatistics(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := primary.Statistics{
		TotalVehicles: 3,
		TotalReports:  3,
		Normal:        1,
		Warning:       1,
		Abnormal:      1,
		// DT-301 has nothing on the 10th, BUS-01 nothing on the 11th.
		PendingToday: 2,
	}
	if *stats != want {
		t.Errorf("got %+v, want %+v", *stats, want)
	}

	ranged, err := svc.GetStatistics(context.Background(), "2026-03-10", "2026-03-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ranged.TotalReports != 2 || ranged.Warning != 0 {
		t.Errorf("unexpected ranged stats %+v", ranged)
	}
}

func TestGetStatistics_InvalidRange(t *testing.T) {
	vehicles, _, reports := seededRepos()
	svc := NewDashboardService(vehicles, reports, at(2026, time.March, 10, 9, 0), nil)

	tests := []struct {
		name      string
		from, to  string
		wantField string
	}{
		{"bad from", "10-03-2026", "", "from"},
		{"bad to", "", "2026-02-30", "to"},
		{"reversed", "2026-03-10", "2026-03-01", "to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetStatistics(context.Background(), tt.from, tt.to)
			var verr *inspection.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestGetMonthlyReports(t *testing.T) {
	vehicles, _, reports := seededRepos()
	reports.monthly = []*secondary.MonthlyCountRecord{
		{Month: 1, Status: "NORMAL", Count: 40},
		{Month: 1, Status: "ABNORMAL", Count: 2},
		{Month: 3, Status: "WARNING", Count: 5},
	}
	svc := NewDashboardService(vehicles, reports, at(2026, time.March, 10, 9, 0), nil)

	report, err := svc.GetMonthlyReports(context.Background(), 2026, "Light Vehicle")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(report.Months))
	}
	if report.Months[0] != (primary.MonthCount{Month: 1, Normal: 40, Abnormal: 2}) {
		t.Errorf("unexpected January %+v", report.Months[0])
	}
	if report.Months[1] != (primary.MonthCount{Month: 2}) {
		t.Errorf("expected empty February, got %+v", report.Months[1])
	}
	if report.Months[2].Warning != 5 {
		t.Errorf("expected 5 warnings in March, got %d", report.Months[2].Warning)
	}
}

func TestGetMonthlyReports_YearRange(t *testing.T) {
	vehicles, _, reports := seededRepos()
	svc := NewDashboardService(vehicles, reports, at(2026, time.March, 10, 9, 0), nil)

	for _, year := range []int{2019, 2032} {
		_, err := svc.GetMonthlyReports(context.Background(), year, "")
		var verr *inspection.ValidationError
		if !errors.As(err, &verr) || verr.Field != "year" {
			t.Errorf("year %d: expected year validation error, got %v", year, err)
		}
	}

	if _, err := svc.GetMonthlyReports(context.Background(), 2031, ""); err != nil {
		t.Errorf("expected 2031 to be accepted, got %v", err)
	}
}
