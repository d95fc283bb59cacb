// Package postgres contains PostgreSQL implementations of repository interfaces.
package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

// Constraint names from PostgresSchemaSQL.
const (
	constraintHullNumber = "vehicles_hull_number_key"
	constraintReportSlot = "uq_p2h_reports_slot"
)

// isUniqueViolation reports whether err is a unique_violation on constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// argList tracks positional $n placeholders while a query is assembled.
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

type rowScanner interface {
	Scan(dest ...any) error
}
