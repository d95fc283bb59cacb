package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

func init() {
	// Assertions match plain text.
	color.NoColor = true
}

const testVehicleID = "0b8f6a5e-3a4c-4c36-9a53-8d1e6f2b7c01"

func testVehicle() *primary.Vehicle {
	return &primary.Vehicle{
		ID:          testVehicleID,
		HullNumber:  "LV-012",
		PlateNumber: "KT 1234 AB",
		VehicleType: "Light Vehicle",
		Regime:      "SHIFT",
		IsActive:    true,
	}
}

// mockVehicleService implements primary.VehicleService for testing
type mockVehicleService struct {
	createVehicleFn func(ctx context.Context, req primary.CreateVehicleRequest) (*primary.Vehicle, error)
	listVehiclesFn  func(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error)
	updateVehicleFn func(ctx context.Context, req primary.UpdateVehicleRequest) (*primary.Vehicle, error)

	// Track lookups for verification
	lastGetID   string
	lastGetHull string
}

func (m *mockVehicleService) CreateVehicle(ctx context.Context, req primary.CreateVehicleRequest) (*primary.Vehicle, error) {
	if m.createVehicleFn != nil {
		return m.createVehicleFn(ctx, req)
	}
	v := testVehicle()
	v.HullNumber = req.HullNumber
	return v, nil
}

func (m *mockVehicleService) GetVehicle(ctx context.Context, vehicleID string) (*primary.Vehicle, error) {
	m.lastGetID = vehicleID
	if vehicleID != testVehicleID {
		return nil, fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, vehicleID)
	}
	return testVehicle(), nil
}

func (m *mockVehicleService) GetVehicleByHullNumber(ctx context.Context, hullNumber string) (*primary.Vehicle, error) {
	m.lastGetHull = hullNumber
	if hullNumber != "LV-012" {
		return nil, fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, hullNumber)
	}
	return testVehicle(), nil
}

func (m *mockVehicleService) ListVehicles(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
	if m.listVehiclesFn != nil {
		return m.listVehiclesFn(ctx, filters)
	}
	return []*primary.Vehicle{}, nil
}

func (m *mockVehicleService) UpdateVehicle(ctx context.Context, req primary.UpdateVehicleRequest) (*primary.Vehicle, error) {
	if m.updateVehicleFn != nil {
		return m.updateVehicleFn(ctx, req)
	}
	return testVehicle(), nil
}

// mockExpiryService implements primary.ExpiryService for testing
type mockExpiryService struct {
	alerts   []*primary.ExpiryAlert
	horizons []*primary.DocumentHorizon
	err      error
}

func (m *mockExpiryService) CheckExpiries(ctx context.Context) ([]*primary.ExpiryAlert, error) {
	return m.alerts, m.err
}

func (m *mockExpiryService) GetDocumentHorizons(ctx context.Context, vehicleID string) ([]*primary.DocumentHorizon, error) {
	return m.horizons, m.err
}

// mockP2HService implements primary.P2HService for testing
type mockP2HService struct {
	submitReportFn func(ctx context.Context, req primary.SubmitReportRequest) (*primary.SubmitReportResponse, error)
	status         *primary.VehicleStatus
	reports        []*primary.Report

	lastStatusID string
}

func (m *mockP2HService) SubmitReport(ctx context.Context, req primary.SubmitReportRequest) (*primary.SubmitReportResponse, error) {
	if m.submitReportFn != nil {
		return m.submitReportFn(ctx, req)
	}
	return &primary.SubmitReportResponse{Accepted: false, Reason: "not configured"}, nil
}

func (m *mockP2HService) GetVehicleStatus(ctx context.Context, vehicleID string) (*primary.VehicleStatus, error) {
	m.lastStatusID = vehicleID
	return m.status, nil
}

func (m *mockP2HService) GetVehicleStatusByHullNumber(ctx context.Context, hullNumber string) (*primary.VehicleStatus, error) {
	return m.status, nil
}

func (m *mockP2HService) GetReport(ctx context.Context, reportID string) (*primary.Report, error) {
	for _, r := range m.reports {
		if r.ID == reportID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: report %s", secondary.ErrNotFound, reportID)
}

func (m *mockP2HService) ListReports(ctx context.Context, filters primary.ReportFilters) ([]*primary.Report, error) {
	return m.reports, nil
}

// mockChecklistService implements primary.ChecklistService for testing
type mockChecklistService struct {
	items         []*primary.ChecklistItem
	seeded        int
	err           error
	lastDeactived string
}

func (m *mockChecklistService) ListChecklist(ctx context.Context, vehicleType string) ([]*primary.ChecklistItem, error) {
	return m.items, m.err
}

func (m *mockChecklistService) CreateChecklistItem(ctx context.Context, req primary.CreateChecklistItemRequest) (*primary.ChecklistItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &primary.ChecklistItem{ID: "item-1", VehicleType: req.VehicleType, SectionName: req.SectionName, ItemName: req.ItemName, ItemOrder: req.ItemOrder}, nil
}

func (m *mockChecklistService) DeactivateChecklistItem(ctx context.Context, itemID string) error {
	m.lastDeactived = itemID
	return m.err
}

func (m *mockChecklistService) SeedDefaults(ctx context.Context, vehicleType string) (int, error) {
	return m.seeded, m.err
}

// mockDashboardService implements primary.DashboardService for testing
type mockDashboardService struct {
	stats   *primary.Statistics
	monthly *primary.MonthlyReport
	err     error
}

func (m *mockDashboardService) GetStatistics(ctx context.Context, from, to string) (*primary.Statistics, error) {
	return m.stats, m.err
}

func (m *mockDashboardService) GetMonthlyReports(ctx context.Context, year int, vehicleType string) (*primary.MonthlyReport, error) {
	return m.monthly, m.err
}

// mockLogService implements primary.AuditLogService for testing
type mockLogService struct {
	entries []*primary.LogEntry
}

func (m *mockLogService) ListLogs(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	return m.entries, nil
}
