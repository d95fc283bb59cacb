package db

import "fmt"

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// SchemaSQL is the complete schema for fresh SQLite installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the SQLite schema. All repository
// tests load it via GetSchemaSQL(), so a column referenced by repository code
// but missing here fails immediately with "no such column".
//
// Dates are stored as ISO text (YYYY-MM-DD) and timestamps as RFC3339 text
// in both drivers, so operational days compare lexically.
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL and PostgresSchemaSQL here
//  3. Run `go test ./internal/...` to verify alignment
const SchemaSQL = `
-- Vehicles (unit)
CREATE TABLE IF NOT EXISTS vehicles (
	id TEXT PRIMARY KEY,
	hull_number TEXT NOT NULL UNIQUE,
	hull_color TEXT,
	plate_number TEXT,
	vehicle_type TEXT NOT NULL,
	brand TEXT,
	stnk_expiry TEXT,
	kir_expiry TEXT,
	shift_type TEXT NOT NULL CHECK(shift_type IN ('SHIFT', 'LONG_SHIFT', 'NON_SHIFT')) DEFAULT 'SHIFT',
	is_active BOOLEAN NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vehicles_type ON vehicles(vehicle_type);

-- Checklist templates per vehicle type
CREATE TABLE IF NOT EXISTS checklist_items (
	id TEXT PRIMARY KEY,
	vehicle_type TEXT NOT NULL,
	section_name TEXT NOT NULL,
	item_name TEXT NOT NULL,
	item_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_type ON checklist_items(vehicle_type);

-- P2H reports; one per (vehicle, operational day, shift)
CREATE TABLE IF NOT EXISTS p2h_reports (
	id TEXT PRIMARY KEY,
	vehicle_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	shift INTEGER NOT NULL,
	operational_day TEXT NOT NULL,
	submission_date TEXT NOT NULL,
	submission_time TEXT NOT NULL,
	submitted_at TEXT NOT NULL,
	overall_status TEXT NOT NULL CHECK(overall_status IN ('NORMAL', 'WARNING', 'ABNORMAL')),
	created_at TEXT NOT NULL,
	FOREIGN KEY (vehicle_id) REFERENCES vehicles(id),
	UNIQUE (vehicle_id, operational_day, shift)
);

CREATE INDEX IF NOT EXISTS idx_p2h_reports_day ON p2h_reports(operational_day);

CREATE TABLE IF NOT EXISTS p2h_details (
	id TEXT PRIMARY KEY,
	report_id TEXT NOT NULL,
	checklist_item_id TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('NORMAL', 'WARNING', 'ABNORMAL')),
	remark TEXT,
	FOREIGN KEY (report_id) REFERENCES p2h_reports(id) ON DELETE CASCADE,
	FOREIGN KEY (checklist_item_id) REFERENCES checklist_items(id)
);

CREATE INDEX IF NOT EXISTS idx_p2h_details_report ON p2h_details(report_id);

-- Audit log
CREATE TABLE IF NOT EXISTS audit_logs (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	actor_id TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT
);

CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_type, entity_id);
`

// PostgresSchemaSQL is the PostgreSQL rendition of SchemaSQL.
// Keep the two in sync.
const PostgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS vehicles (
	id TEXT PRIMARY KEY,
	hull_number TEXT NOT NULL UNIQUE,
	hull_color TEXT,
	plate_number TEXT,
	vehicle_type TEXT NOT NULL,
	brand TEXT,
	stnk_expiry TEXT,
	kir_expiry TEXT,
	shift_type TEXT NOT NULL CHECK(shift_type IN ('SHIFT', 'LONG_SHIFT', 'NON_SHIFT')) DEFAULT 'SHIFT',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vehicles_type ON vehicles(vehicle_type);

CREATE TABLE IF NOT EXISTS checklist_items (
	id TEXT PRIMARY KEY,
	vehicle_type TEXT NOT NULL,
	section_name TEXT NOT NULL,
	item_name TEXT NOT NULL,
	item_order INTEGER NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checklist_items_type ON checklist_items(vehicle_type);

CREATE TABLE IF NOT EXISTS p2h_reports (
	id TEXT PRIMARY KEY,
	vehicle_id TEXT NOT NULL REFERENCES vehicles(id),
	user_id TEXT NOT NULL,
	shift INTEGER NOT NULL,
	operational_day TEXT NOT NULL,
	submission_date TEXT NOT NULL,
	submission_time TEXT NOT NULL,
	submitted_at TEXT NOT NULL,
	overall_status TEXT NOT NULL CHECK(overall_status IN ('NORMAL', 'WARNING', 'ABNORMAL')),
	created_at TEXT NOT NULL,
	CONSTRAINT uq_p2h_reports_slot UNIQUE (vehicle_id, operational_day, shift)
);

CREATE INDEX IF NOT EXISTS idx_p2h_reports_day ON p2h_reports(operational_day);

CREATE TABLE IF NOT EXISTS p2h_details (
	id TEXT PRIMARY KEY,
	report_id TEXT NOT NULL REFERENCES p2h_reports(id) ON DELETE CASCADE,
	checklist_item_id TEXT NOT NULL REFERENCES checklist_items(id),
	status TEXT NOT NULL CHECK(status IN ('NORMAL', 'WARNING', 'ABNORMAL')),
	remark TEXT
);

CREATE INDEX IF NOT EXISTS idx_p2h_details_report ON p2h_details(report_id);

CREATE TABLE IF NOT EXISTS audit_logs (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	actor_id TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT
);

CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_type, entity_id);
`

// GetSchemaSQL returns the authoritative SQLite schema for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

// SchemaFor returns the schema for a driver.
func SchemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return SchemaSQL, nil
	case DriverPostgres:
		return PostgresSchemaSQL, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", driver)
}
