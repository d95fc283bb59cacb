package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

const reportColumns = "id, vehicle_id, user_id, shift, operational_day, submission_date, submission_time, submitted_at, overall_status, created_at"

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create persists a report and its details in one transaction.
// The UNIQUE(vehicle_id, operational_day, shift) constraint decides races.
func (r *ReportRepository) Create(ctx context.Context, report *secondary.ReportRecord) error {
	if report.CreatedAt == "" {
		report.CreatedAt = now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO p2h_reports ("+reportColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		report.ID, report.VehicleID, report.UserID, report.Shift, report.OperationalDay,
		report.SubmissionDate, report.SubmissionTime, report.SubmittedAt, report.OverallStatus, report.CreatedAt,
	)
	if isUniqueViolation(err, "p2h_reports.") {
		return fmt.Errorf("%w: shift %d on %s", secondary.ErrDuplicateShift, report.Shift, report.OperationalDay)
	}
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	for _, d := range report.Details {
		d.ReportID = report.ID
		_, err := tx.ExecContext(ctx,
			"INSERT INTO p2h_details (id, report_id, checklist_item_id, status, remark) VALUES (?, ?, ?, ?, ?)",
			d.ID, d.ReportID, d.ChecklistItemID, d.Outcome, nullString(d.Remark),
		)
		if err != nil {
			return fmt.Errorf("failed to create report detail: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err, "p2h_reports.") {
			return fmt.Errorf("%w: shift %d on %s", secondary.ErrDuplicateShift, report.Shift, report.OperationalDay)
		}
		return fmt.Errorf("failed to commit report: %w", err)
	}

	return nil
}

// GetByID retrieves a report with its details.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*secondary.ReportRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+reportColumns+" FROM p2h_reports WHERE id = ?", id)
	record, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: report %s", secondary.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	details, err := r.getDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Details = details

	return record, nil
}

// List retrieves reports without details, newest first.
func (r *ReportRepository) List(ctx context.Context, filters secondary.ReportFilters) ([]*secondary.ReportRecord, error) {
	query := "SELECT " + reportColumns + " FROM p2h_reports WHERE 1=1"
	args := []any{}

	if filters.VehicleID != "" {
		query += " AND vehicle_id = ?"
		args = append(args, filters.VehicleID)
	}

	query += " ORDER BY created_at DESC, submitted_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filters.Limit, filters.Offset)
	}

	return r.queryReports(ctx, query, args...)
}

// ListByVehicleAndDay returns the reports of a vehicle on one operational day, by shift.
func (r *ReportRepository) ListByVehicleAndDay(ctx context.Context, vehicleID, operationalDay string) ([]*secondary.ReportRecord, error) {
	return r.queryReports(ctx,
		"SELECT "+reportColumns+" FROM p2h_reports WHERE vehicle_id = ? AND operational_day = ? ORDER BY shift",
		vehicleID, operationalDay,
	)
}

// GetByVehicleDayShift returns the report occupying a (vehicle, day, shift) slot.
func (r *ReportRepository) GetByVehicleDayShift(ctx context.Context, vehicleID, operationalDay string, shift int) (*secondary.ReportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportColumns+" FROM p2h_reports WHERE vehicle_id = ? AND operational_day = ? AND shift = ?",
		vehicleID, operationalDay, shift,
	)
	record, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: report for shift %d on %s", secondary.ErrNotFound, shift, operationalDay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return record, nil
}

// CountByStatus counts reports per overall status with operational day in [from, to].
func (r *ReportRepository) CountByStatus(ctx context.Context, from, to string) (map[string]int, error) {
	query := "SELECT overall_status, COUNT(*) FROM p2h_reports WHERE 1=1"
	args := []any{}

	if from != "" {
		query += " AND operational_day >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND operational_day <= ?"
		args = append(args, to)
	}

	query += " GROUP BY overall_status"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan report count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// ListVehicleIDsReportedOn returns the distinct vehicles with a report on an operational day.
func (r *ReportRepository) ListVehicleIDsReportedOn(ctx context.Context, operationalDay string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT vehicle_id FROM p2h_reports WHERE operational_day = ? ORDER BY vehicle_id",
		operationalDay,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reported vehicles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MonthlyCounts counts reports per month and status for a year.
func (r *ReportRepository) MonthlyCounts(ctx context.Context, year int, vehicleType string) ([]*secondary.MonthlyCountRecord, error) {
	query := `SELECT CAST(substr(r.operational_day, 6, 2) AS INTEGER) AS month, r.overall_status, COUNT(*)
		FROM p2h_reports r JOIN vehicles v ON v.id = r.vehicle_id
		WHERE r.operational_day LIKE ?`
	args := []any{fmt.Sprintf("%04d-%%", year)}

	if vehicleType != "" {
		query += " AND v.vehicle_type = ?"
		args = append(args, vehicleType)
	}

	query += " GROUP BY month, r.overall_status ORDER BY month"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly reports: %w", err)
	}
	defer rows.Close()

	var counts []*secondary.MonthlyCountRecord
	for rows.Next() {
		c := &secondary.MonthlyCountRecord{}
		if err := rows.Scan(&c.Month, &c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *ReportRepository) getDetails(ctx context.Context, reportID string) ([]*secondary.ReportDetailRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.report_id, d.checklist_item_id, d.status, d.remark
		FROM p2h_details d LEFT JOIN checklist_items c ON c.id = d.checklist_item_id
		WHERE d.report_id = ?
		ORDER BY c.section_name, c.item_order, d.id`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get report details: %w", err)
	}
	defer rows.Close()

	var details []*secondary.ReportDetailRecord
	for rows.Next() {
		var remark sql.NullString
		d := &secondary.ReportDetailRecord{}
		if err := rows.Scan(&d.ID, &d.ReportID, &d.ChecklistItemID, &d.Outcome, &remark); err != nil {
			return nil, fmt.Errorf("failed to scan report detail: %w", err)
		}
		d.Remark = remark.String
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *ReportRepository) queryReports(ctx context.Context, query string, args ...any) ([]*secondary.ReportRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*secondary.ReportRecord
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, record)
	}
	return reports, rows.Err()
}

func scanReport(row rowScanner) (*secondary.ReportRecord, error) {
	record := &secondary.ReportRecord{}
	err := row.Scan(&record.ID, &record.VehicleID, &record.UserID, &record.Shift, &record.OperationalDay,
		&record.SubmissionDate, &record.SubmissionTime, &record.SubmittedAt, &record.OverallStatus, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Ensure ReportRepository implements the interface
var _ secondary.ReportRepository = (*ReportRepository)(nil)
