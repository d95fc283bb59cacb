// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// Errors adapters map storage-specific failures onto.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateShift is returned when a report already exists for the same
	// vehicle, operational day and shift. Storage enforces this at commit time.
	ErrDuplicateShift = errors.New("report already exists for vehicle, operational day and shift")

	// ErrDuplicateHullNumber is returned when a hull number is already registered.
	ErrDuplicateHullNumber = errors.New("hull number already registered")
)

// VehicleRepository defines the secondary port for vehicle persistence.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *VehicleRecord) error

	// GetByID retrieves a vehicle by its ID.
	GetByID(ctx context.Context, id string) (*VehicleRecord, error)

	// GetByHullNumber retrieves a vehicle by its hull number (nomor lambung).
	GetByHullNumber(ctx context.Context, hullNumber string) (*VehicleRecord, error)

	// List retrieves vehicles matching the given filters.
	List(ctx context.Context, filters VehicleFilters) ([]*VehicleRecord, error)

	// Update replaces the mutable fields of an existing vehicle.
	Update(ctx context.Context, vehicle *VehicleRecord) error
}

// VehicleRecord represents a vehicle as stored in persistence.
// Expiry dates are ISO dates (YYYY-MM-DD), empty when unknown.
type VehicleRecord struct {
	ID          string
	HullNumber  string
	HullColor   string
	PlateNumber string
	VehicleType string
	Brand       string
	STNKExpiry  string
	KIRExpiry   string
	Regime      string
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string
}

// VehicleFilters contains filter options for querying vehicles.
type VehicleFilters struct {
	Search      string // matches hull number, plate number or brand
	VehicleType string
	Active      *bool
	Limit       int
	Offset      int
}

// ChecklistRepository defines the secondary port for checklist template persistence.
type ChecklistRepository interface {
	// Create persists a new checklist item.
	Create(ctx context.Context, item *ChecklistItemRecord) error

	// ListByVehicleType returns active items for a vehicle type, ordered by section and order.
	ListByVehicleType(ctx context.Context, vehicleType string) ([]*ChecklistItemRecord, error)

	// GetByIDs returns the items with the given IDs. Missing IDs are simply absent.
	GetByIDs(ctx context.Context, ids []string) ([]*ChecklistItemRecord, error)

	// CountByVehicleType returns how many items exist for a vehicle type.
	CountByVehicleType(ctx context.Context, vehicleType string) (int, error)

	// Deactivate soft-deletes an item so it no longer appears in checklists.
	Deactivate(ctx context.Context, id string) error
}

// ChecklistItemRecord represents a checklist template item as stored in persistence.
type ChecklistItemRecord struct {
	ID          string
	VehicleType string
	SectionName string
	ItemName    string
	ItemOrder   int
	IsActive    bool
	CreatedAt   string
}

// ReportRepository defines the secondary port for P2H report persistence.
type ReportRepository interface {
	// Create persists a report and its details atomically.
	// Returns ErrDuplicateShift if the (vehicle, operational day, shift) slot is taken.
	Create(ctx context.Context, report *ReportRecord) error

	// GetByID retrieves a report with its details.
	GetByID(ctx context.Context, id string) (*ReportRecord, error)

	// List retrieves reports (without details), newest first.
	List(ctx context.Context, filters ReportFilters) ([]*ReportRecord, error)

	// ListByVehicleAndDay returns the reports of a vehicle on one operational day.
	ListByVehicleAndDay(ctx context.Context, vehicleID, operationalDay string) ([]*ReportRecord, error)

	// GetByVehicleDayShift returns the report occupying a (vehicle, day, shift) slot.
	GetByVehicleDayShift(ctx context.Context, vehicleID, operationalDay string, shift int) (*ReportRecord, error)

	// CountByStatus counts reports per overall status with operational day in [from, to].
	// Empty bounds are open.
	CountByStatus(ctx context.Context, from, to string) (map[string]int, error)

	// ListVehicleIDsReportedOn returns the distinct vehicles with a report on an operational day.
	ListVehicleIDsReportedOn(ctx context.Context, operationalDay string) ([]string, error)

	// MonthlyCounts counts reports per month and status for a year.
	// An empty vehicleType counts all vehicles.
	MonthlyCounts(ctx context.Context, year int, vehicleType string) ([]*MonthlyCountRecord, error)
}

// ReportRecord represents a P2H report as stored in persistence.
type ReportRecord struct {
	ID             string
	VehicleID      string
	UserID         string
	Shift          int
	OperationalDay string // YYYY-MM-DD
	SubmissionDate string // calendar date of submission, YYYY-MM-DD
	SubmissionTime string // HH:MM:SS
	SubmittedAt    string // RFC3339 with zone offset
	OverallStatus  string
	CreatedAt      string
	Details        []*ReportDetailRecord
}

// ReportDetailRecord represents one checklist result of a report.
type ReportDetailRecord struct {
	ID              string
	ReportID        string
	ChecklistItemID string
	Outcome         string
	Remark          string
}

// ReportFilters contains filter options for listing reports.
type ReportFilters struct {
	VehicleID string
	Limit     int
	Offset    int
}

// MonthlyCountRecord is one (month, status) bucket.
type MonthlyCountRecord struct {
	Month  int
	Status string
	Count  int
}
