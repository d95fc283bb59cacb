package db

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(tx *sql.Tx, driver string) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_p2h_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_audit_logs",
		Up:      migrationV2,
	},
}

// LatestVersion is the schema version a fresh install starts at.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

const schemaVersionSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TEXT
)`

// InitSchema creates the schema on a fresh database, or runs pending
// migrations on an existing one.
func InitSchema(database *sql.DB, driver string, log logrus.FieldLogger) error {
	exists, err := schemaVersionExists(database, driver)
	if err != nil {
		return err
	}

	if exists {
		return RunMigrations(database, driver, log)
	}

	// Fresh install - create the current schema directly and mark all
	// migrations as applied
	schema, err := SchemaFor(driver)
	if err != nil {
		return err
	}
	if _, err := database.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := database.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	for _, m := range migrations {
		if _, err := database.Exec(fmt.Sprintf("INSERT INTO schema_version (version, applied_at) VALUES (%d, CURRENT_TIMESTAMP)", m.Version)); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	log.WithField("version", LatestVersion()).Debug("created fresh schema")
	return nil
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB, driver string, log logrus.FieldLogger) error {
	if _, err := database.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	current, err := CurrentVersion(database)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		log.WithFields(logrus.Fields{"version": migration.Version, "name": migration.Name}).Info("running migration")

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx, driver); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec(fmt.Sprintf("INSERT INTO schema_version (version, applied_at) VALUES (%d, CURRENT_TIMESTAMP)", migration.Version))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// CurrentVersion returns the highest applied migration version.
func CurrentVersion(database *sql.DB) (int, error) {
	var version int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}

func schemaVersionExists(database *sql.DB, driver string) (bool, error) {
	var query string
	switch driver {
	case DriverSQLite:
		query = "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'"
	case DriverPostgres:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_name='schema_version'"
	default:
		return false, fmt.Errorf("unsupported database driver %q", driver)
	}

	var count int
	if err := database.QueryRow(query).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return count > 0, nil
}

// migrationV1 creates the vehicle, checklist and report tables.
// CREATE IF NOT EXISTS makes the full schema safe to replay here.
func migrationV1(tx *sql.Tx, driver string) error {
	schema, err := SchemaFor(driver)
	if err != nil {
		return err
	}
	_, err = tx.Exec(schema)
	return err
}

// migrationV2 adds the audit log table.
func migrationV2(tx *sql.Tx, driver string) error {
	_, err := tx.Exec(`
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
		)
	`)
	if err != nil {
		return err
	}
	_, err = tx.Exec("CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs(entity_type, entity_id)")
	return err
}
