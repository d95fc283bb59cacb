package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockVehicleRepository implements secondary.VehicleRepository for testing.
type mockVehicleRepository struct {
	vehicles  map[string]*secondary.VehicleRecord
	createErr error
	getErr    error
	listErr   error
	updateErr error
}

func newMockVehicleRepository() *mockVehicleRepository {
	return &mockVehicleRepository{vehicles: make(map[string]*secondary.VehicleRecord)}
}

func (m *mockVehicleRepository) Create(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, v := range m.vehicles {
		if v.HullNumber == vehicle.HullNumber {
			return fmt.Errorf("%w: %s", secondary.ErrDuplicateHullNumber, vehicle.HullNumber)
		}
	}
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id string) (*secondary.VehicleRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if v, ok := m.vehicles[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, id)
}

func (m *mockVehicleRepository) GetByHullNumber(ctx context.Context, hullNumber string) (*secondary.VehicleRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, v := range m.vehicles {
		if v.HullNumber == hullNumber {
			copied := *v
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, hullNumber)
}

func (m *mockVehicleRepository) List(ctx context.Context, filters secondary.VehicleFilters) ([]*secondary.VehicleRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.VehicleRecord
	for _, v := range m.vehicles {
		if filters.Active != nil && v.IsActive != *filters.Active {
			continue
		}
		if filters.VehicleType != "" && v.VehicleType != filters.VehicleType {
			continue
		}
		if filters.Search != "" && !strings.Contains(v.HullNumber+v.PlateNumber+v.Brand, filters.Search) {
			continue
		}
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].HullNumber < result[j].HullNumber })
	return result, nil
}

func (m *mockVehicleRepository) Update(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.vehicles[vehicle.ID]; !ok {
		return fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, vehicle.ID)
	}
	copied := *vehicle
	m.vehicles[vehicle.ID] = &copied
	return nil
}

// mockChecklistRepository implements secondary.ChecklistRepository for testing.
type mockChecklistRepository struct {
	items     map[string]*secondary.ChecklistItemRecord
	createErr error
	getErr    error
	countErr  error
}

func newMockChecklistRepository() *mockChecklistRepository {
	return &mockChecklistRepository{items: make(map[string]*secondary.ChecklistItemRecord)}
}

func (m *mockChecklistRepository) Create(ctx context.Context, item *secondary.ChecklistItemRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockChecklistRepository) ListByVehicleType(ctx context.Context, vehicleType string) ([]*secondary.ChecklistItemRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*secondary.ChecklistItemRecord
	for _, item := range m.items {
		if item.VehicleType == vehicleType && item.IsActive {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SectionName != result[j].SectionName {
			return result[i].SectionName < result[j].SectionName
		}
		return result[i].ItemOrder < result[j].ItemOrder
	})
	return result, nil
}

func (m *mockChecklistRepository) GetByIDs(ctx context.Context, ids []string) ([]*secondary.ChecklistItemRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*secondary.ChecklistItemRecord
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockChecklistRepository) CountByVehicleType(ctx context.Context, vehicleType string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	n := 0
	for _, item := range m.items {
		if item.VehicleType == vehicleType {
			n++
		}
	}
	return n, nil
}

func (m *mockChecklistRepository) Deactivate(ctx context.Context, id string) error {
	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("%w: checklist item %s", secondary.ErrNotFound, id)
	}
	item.IsActive = false
	return nil
}

// mockReportRepository implements secondary.ReportRepository for testing.
// It enforces the (vehicle, operational day, shift) slot like the real stores.
type mockReportRepository struct {
	mu           sync.Mutex
	reports      map[string]*secondary.ReportRecord
	createErr    error
	listErr      error
	hideExisting bool // ListByVehicleAndDay returns nothing, simulating a concurrent writer
	counts       map[string]int
	monthly      []*secondary.MonthlyCountRecord
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{reports: make(map[string]*secondary.ReportRecord)}
}

func (m *mockReportRepository) Create(ctx context.Context, report *secondary.ReportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, r := range m.reports {
		if r.VehicleID == report.VehicleID && r.OperationalDay == report.OperationalDay && r.Shift == report.Shift {
			return secondary.ErrDuplicateShift
		}
	}
	report.CreatedAt = report.SubmittedAt
	m.reports[report.ID] = report
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id string) (*secondary.ReportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.reports[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: report %s", secondary.ErrNotFound, id)
}

func (m *mockReportRepository) List(ctx context.Context, filters secondary.ReportFilters) ([]*secondary.ReportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.ReportRecord
	for _, r := range m.reports {
		if filters.VehicleID != "" && r.VehicleID != filters.VehicleID {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt > result[j].CreatedAt })
	return result, nil
}

func (m *mockReportRepository) ListByVehicleAndDay(ctx context.Context, vehicleID, operationalDay string) ([]*secondary.ReportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.hideExisting {
		return nil, nil
	}
	var result []*secondary.ReportRecord
	for _, r := range m.reports {
		if r.VehicleID == vehicleID && r.OperationalDay == operationalDay {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Shift < result[j].Shift })
	return result, nil
}

func (m *mockReportRepository) GetByVehicleDayShift(ctx context.Context, vehicleID, operationalDay string, shift int) (*secondary.ReportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reports {
		if r.VehicleID == vehicleID && r.OperationalDay == operationalDay && r.Shift == shift {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: report for %s on %s shift %d", secondary.ErrNotFound, vehicleID, operationalDay, shift)
}

func (m *mockReportRepository) CountByStatus(ctx context.Context, from, to string) (map[string]int, error) {
	if m.counts != nil {
		return m.counts, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int)
	for _, r := range m.reports {
		if from != "" && r.OperationalDay < from {
			continue
		}
		if to != "" && r.OperationalDay > to {
			continue
		}
		counts[r.OverallStatus]++
	}
	return counts, nil
}

func (m *mockReportRepository) ListVehicleIDsReportedOn(ctx context.Context, operationalDay string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool)
	var ids []string
	for _, r := range m.reports {
		if r.OperationalDay == operationalDay && !seen[r.VehicleID] {
			seen[r.VehicleID] = true
			ids = append(ids, r.VehicleID)
		}
	}
	return ids, nil
}

func (m *mockReportRepository) MonthlyCounts(ctx context.Context, year int, vehicleType string) ([]*secondary.MonthlyCountRecord, error) {
	return m.monthly, nil
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	creates []string
	updates []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.creates = append(m.creates, entityType+":"+entityID)
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.updates = append(m.updates, fmt.Sprintf("%s:%s:%s:%s->%s", entityType, entityID, fieldName, oldValue, newValue))
	return m.err
}

// ============================================================================
// Fixtures
// ============================================================================

var wita = time.FixedZone("WITA", 8*60*60)

// at returns a fixed clock at the given wall time in WITA.
func at(year int, month time.Month, day, hour, min int) clock.Fixed {
	return clock.Fixed{At: time.Date(year, month, day, hour, min, 0, 0, wita)}
}

const (
	vehicleLV   = "0b8f6a5e-3a4c-4c36-9a53-8d1e6f2b7c01"
	vehicleDT   = "0b8f6a5e-3a4c-4c36-9a53-8d1e6f2b7c02"
	itemTyre    = "5c1d7e2a-8f34-4b6e-a1c9-2e7d9f0b3a11"
	itemBrake   = "5c1d7e2a-8f34-4b6e-a1c9-2e7d9f0b3a12"
	itemDTOnly  = "5c1d7e2a-8f34-4b6e-a1c9-2e7d9f0b3a13"
	itemRetired = "5c1d7e2a-8f34-4b6e-a1c9-2e7d9f0b3a14"
)

func seededRepos() (*mockVehicleRepository, *mockChecklistRepository, *mockReportRepository) {
	vehicles := newMockVehicleRepository()
	vehicles.vehicles[vehicleLV] = &secondary.VehicleRecord{
		ID: vehicleLV, HullNumber: "LV-012", PlateNumber: "KT 1234 AB", VehicleType: "Light Vehicle",
		Regime: "SHIFT", IsActive: true,
	}
	vehicles.vehicles[vehicleDT] = &secondary.VehicleRecord{
		ID: vehicleDT, HullNumber: "DT-301", PlateNumber: "KT 9876 CD", VehicleType: "Dump Truck",
		Regime: "LONG_SHIFT", IsActive: true,
	}

	checklist := newMockChecklistRepository()
	checklist.items[itemTyre] = &secondary.ChecklistItemRecord{ID: itemTyre, VehicleType: "Light Vehicle", SectionName: "Eksterior", ItemName: "Ban", ItemOrder: 1, IsActive: true}
	checklist.items[itemBrake] = &secondary.ChecklistItemRecord{ID: itemBrake, VehicleType: "Light Vehicle", SectionName: "Mesin", ItemName: "Rem", ItemOrder: 1, IsActive: true}
	checklist.items[itemDTOnly] = &secondary.ChecklistItemRecord{ID: itemDTOnly, VehicleType: "Dump Truck", SectionName: "Eksterior", ItemName: "Bak", ItemOrder: 1, IsActive: true}
	checklist.items[itemRetired] = &secondary.ChecklistItemRecord{ID: itemRetired, VehicleType: "Light Vehicle", SectionName: "Kabin", ItemName: "Radio", ItemOrder: 1, IsActive: false}

	return vehicles, checklist, newMockReportRepository()
}
