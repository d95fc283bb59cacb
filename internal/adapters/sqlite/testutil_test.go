// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/PT-IMM-P2H/backend/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Every pooled connection to :memory: would be a separate database
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedVehicle inserts a test vehicle and returns its ID.
func seedVehicle(t *testing.T, db *sql.DB, id, hullNumber, vehicleType, regime string) string {
	t.Helper()
	if id == "" {
		id = "11111111-1111-1111-1111-111111111111"
	}
	if hullNumber == "" {
		hullNumber = "LV-001"
	}
	if vehicleType == "" {
		vehicleType = "LIGHT_VEHICLE"
	}
	if regime == "" {
		regime = "SHIFT"
	}
	_, err := db.Exec(
		"INSERT INTO vehicles (id, hull_number, vehicle_type, shift_type, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, 1, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')",
		id, hullNumber, vehicleType, regime,
	)
	if err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return id
}

// seedChecklistItem inserts a test checklist item and returns its ID.
func seedChecklistItem(t *testing.T, db *sql.DB, id, vehicleType, section string, order int) string {
	t.Helper()
	if vehicleType == "" {
		vehicleType = "LIGHT_VEHICLE"
	}
	if section == "" {
		section = "Exterior"
	}
	_, err := db.Exec(
		"INSERT INTO checklist_items (id, vehicle_type, section_name, item_name, item_order, is_active, created_at) VALUES (?, ?, ?, ?, ?, 1, '2024-01-01T00:00:00Z')",
		id, vehicleType, section, "Item "+id, order,
	)
	if err != nil {
		t.Fatalf("failed to seed checklist item: %v", err)
	}
	return id
}
