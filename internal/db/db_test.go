package db

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenAndInit_FreshSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "p2h.db")

	database, err := OpenAndInit(DriverSQLite, path, quietLogger())
	if err != nil {
		t.Fatalf("OpenAndInit failed: %v", err)
	}
	defer database.Close()

	version, err := CurrentVersion(database)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != LatestVersion() {
		t.Errorf("version = %d, want %d", version, LatestVersion())
	}

	for _, table := range []string{"vehicles", "checklist_items", "p2h_reports", "p2h_details", "audit_logs"} {
		var count int
		err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to inspect %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("table %s missing", table)
		}
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	database, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	for i := 0; i < 2; i++ {
		if err := InitSchema(database, DriverSQLite, quietLogger()); err != nil {
			t.Fatalf("InitSchema run %d failed: %v", i+1, err)
		}
	}

	var rows int
	if err := database.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&rows); err != nil {
		t.Fatalf("failed to count versions: %v", err)
	}
	if rows != len(migrations) {
		t.Errorf("schema_version rows = %d, want %d", rows, len(migrations))
	}
}

func TestRunMigrations_FromVersionOne(t *testing.T) {
	database, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	// Simulate a database created before the audit log existed
	if _, err := database.Exec(schemaVersionSQL); err != nil {
		t.Fatal(err)
	}
	if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (1)"); err != nil {
		t.Fatal(err)
	}

	if err := InitSchema(database, DriverSQLite, quietLogger()); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	version, _ := CurrentVersion(database)
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}
	if _, err := database.Exec("SELECT id FROM audit_logs"); err != nil {
		t.Errorf("audit_logs not created: %v", err)
	}
}

func TestSchemaFor(t *testing.T) {
	if s, err := SchemaFor(DriverSQLite); err != nil || s != SchemaSQL {
		t.Errorf("SchemaFor(sqlite3) = _, %v", err)
	}
	if s, err := SchemaFor(DriverPostgres); err != nil || s != PostgresSchemaSQL {
		t.Errorf("SchemaFor(postgres) = _, %v", err)
	}
	if _, err := SchemaFor("mysql"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open("mysql", "x"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
