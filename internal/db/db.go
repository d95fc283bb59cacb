// Package db opens the P2H database and keeps its schema current.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// sqliteParams are appended to file DSNs. Foreign keys and the busy timeout
// are per-connection settings in SQLite, so they must ride on the DSN.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

// Open returns a database connection for driver and dsn, creating the
// parent directory of a SQLite file when needed.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		return openSQLite(dsn)
	case DriverPostgres:
		database, err := sql.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := database.Ping(); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return database, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func openSQLite(dsn string) (*sql.DB, error) {
	memory := dsn == ":memory:" || strings.Contains(dsn, "mode=memory")

	if !memory {
		path := strings.TrimPrefix(dsn, "file:")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + sqliteParams
		} else {
			dsn += "?" + sqliteParams
		}
	}

	database, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each in-memory connection is its own database.
	if memory {
		database.SetMaxOpenConns(1)
	}

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return database, nil
}

// OpenAndInit opens the database and brings the schema up to date.
func OpenAndInit(driver, dsn string, log logrus.FieldLogger) (*sql.DB, error) {
	database, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := InitSchema(database, driver, log); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return database, nil
}

// DefaultPath returns the default SQLite database path (~/.p2h/p2h.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".p2h", "p2h.db"), nil
}
