package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

const vehicleColumns = "id, hull_number, hull_color, plate_number, vehicle_type, brand, stnk_expiry, kir_expiry, shift_type, is_active, created_at, updated_at"

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new SQLite vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, v *secondary.VehicleRecord) error {
	if v.CreatedAt == "" {
		v.CreatedAt = now()
	}
	if v.UpdatedAt == "" {
		v.UpdatedAt = v.CreatedAt
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles ("+vehicleColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		v.ID, v.HullNumber, nullString(v.HullColor), nullString(v.PlateNumber), v.VehicleType, nullString(v.Brand),
		nullString(v.STNKExpiry), nullString(v.KIRExpiry), v.Regime, v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	if isUniqueViolation(err, "hull_number") {
		return fmt.Errorf("%w: %s", secondary.ErrDuplicateHullNumber, v.HullNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

// GetByID retrieves a vehicle by its ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*secondary.VehicleRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+vehicleColumns+" FROM vehicles WHERE id = ?", id)
	record, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// GetByHullNumber retrieves a vehicle by its hull number.
func (r *VehicleRepository) GetByHullNumber(ctx context.Context, hullNumber string) (*secondary.VehicleRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+vehicleColumns+" FROM vehicles WHERE hull_number = ?", hullNumber)
	record, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: vehicle with hull number %s", secondary.ErrNotFound, hullNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// List retrieves vehicles matching the given filters, ordered by hull number.
func (r *VehicleRepository) List(ctx context.Context, filters secondary.VehicleFilters) ([]*secondary.VehicleRecord, error) {
	query := "SELECT " + vehicleColumns + " FROM vehicles WHERE 1=1"
	args := []any{}

	if filters.Search != "" {
		query += " AND (hull_number LIKE ? OR plate_number LIKE ? OR brand LIKE ?)"
		pattern := "%" + filters.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if filters.VehicleType != "" {
		query += " AND vehicle_type = ?"
		args = append(args, filters.VehicleType)
	}

	if filters.Active != nil {
		query += " AND is_active = ?"
		args = append(args, *filters.Active)
	}

	query += " ORDER BY hull_number"

	if filters.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*secondary.VehicleRecord
	for rows.Next() {
		record, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, record)
	}

	return vehicles, rows.Err()
}

// Update replaces the mutable fields of an existing vehicle.
func (r *VehicleRepository) Update(ctx context.Context, v *secondary.VehicleRecord) error {
	v.UpdatedAt = now()

	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET hull_number = ?, hull_color = ?, plate_number = ?, vehicle_type = ?, brand = ?,
			stnk_expiry = ?, kir_expiry = ?, shift_type = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		v.HullNumber, nullString(v.HullColor), nullString(v.PlateNumber), v.VehicleType, nullString(v.Brand),
		nullString(v.STNKExpiry), nullString(v.KIRExpiry), v.Regime, v.IsActive, v.UpdatedAt, v.ID,
	)
	if isUniqueViolation(err, "hull_number") {
		return fmt.Errorf("%w: %s", secondary.ErrDuplicateHullNumber, v.HullNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: vehicle %s", secondary.ErrNotFound, v.ID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*secondary.VehicleRecord, error) {
	var (
		hullColor   sql.NullString
		plateNumber sql.NullString
		brand       sql.NullString
		stnkExpiry  sql.NullString
		kirExpiry   sql.NullString
	)

	record := &secondary.VehicleRecord{}
	err := row.Scan(&record.ID, &record.HullNumber, &hullColor, &plateNumber, &record.VehicleType, &brand,
		&stnkExpiry, &kirExpiry, &record.Regime, &record.IsActive, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, err
	}

	record.HullColor = hullColor.String
	record.PlateNumber = plateNumber.String
	record.Brand = brand.String
	record.STNKExpiry = stnkExpiry.String
	record.KIRExpiry = kirExpiry.String

	return record, nil
}

// Ensure VehicleRepository implements the interface
var _ secondary.VehicleRepository = (*VehicleRepository)(nil)
