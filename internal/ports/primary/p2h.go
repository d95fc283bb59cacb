package primary

import "context"

// P2HService defines the primary port for P2H inspection operations.
type P2HService interface {
	// SubmitReport evaluates and, when accepted, stores a P2H report.
	// Rejections are returned in the response, not as errors.
	SubmitReport(ctx context.Context, req SubmitReportRequest) (*SubmitReportResponse, error)

	// GetVehicleStatus reports whether a vehicle can submit right now.
	GetVehicleStatus(ctx context.Context, vehicleID string) (*VehicleStatus, error)

	// GetVehicleStatusByHullNumber is GetVehicleStatus keyed by hull number.
	GetVehicleStatusByHullNumber(ctx context.Context, hullNumber string) (*VehicleStatus, error)

	// GetReport retrieves a report with its checklist details.
	GetReport(ctx context.Context, reportID string) (*Report, error)

	// ListReports lists reports, newest first.
	ListReports(ctx context.Context, filters ReportFilters) ([]*Report, error)
}

// SubmitReportRequest contains parameters for submitting a P2H report.
type SubmitReportRequest struct {
	VehicleID   string              `json:"vehicle_id" validate:"required,uuid"`
	UserID      string              `json:"user_id" validate:"required"`
	ShiftNumber *int                `json:"shift_number"` // nil selects the current shift
	Details     []ReportDetailInput `json:"details" validate:"min=1,dive"`
}

// ReportDetailInput is one checklist result in a submission.
type ReportDetailInput struct {
	ChecklistItemID string `json:"checklist_item_id" validate:"required,uuid"`
	Status          string `json:"status" validate:"required,oneof=NORMAL ABNORMAL WARNING"`
	Remark          string `json:"remark"` // required for ABNORMAL and WARNING
}

// SubmitReportResponse contains the result of a submission.
type SubmitReportResponse struct {
	Accepted       bool
	Reason         string // why the submission was rejected
	ShiftNumber    int
	OperationalDay string
	Report         *Report // set when accepted
}

// VehicleStatus is the read-only P2H eligibility of a vehicle.
type VehicleStatus struct {
	Vehicle          *Vehicle
	CanSubmit        bool
	CompletedToday   bool
	CurrentShift     int
	CurrentShiftName string
	ShiftsCompleted  []int
	OperationalDay   string
	Message          string
}

// Report represents a P2H report at the port boundary.
type Report struct {
	ID             string
	VehicleID      string
	UserID         string
	ShiftNumber    int
	ShiftName      string
	OperationalDay string
	SubmissionDate string
	SubmissionTime string
	OverallStatus  string
	CreatedAt      string
	Details        []*ReportDetail
}

// ReportDetail is one checklist result of a stored report.
type ReportDetail struct {
	ID              string
	ChecklistItemID string
	Status          string
	Remark          string
}

// ReportFilters contains filter options for listing reports.
type ReportFilters struct {
	VehicleID string
	Limit     int
	Offset    int
}

// Overall status constants
const (
	StatusNormal   = "NORMAL"
	StatusWarning  = "WARNING"
	StatusAbnormal = "ABNORMAL"
)
