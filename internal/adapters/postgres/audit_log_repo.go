package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// AuditLogRepository implements secondary.AuditLogRepository with PostgreSQL.
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new PostgreSQL audit log repository.
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create persists a new audit log entry.
func (r *AuditLogRepository) Create(ctx context.Context, log *secondary.AuditLogRecord) error {
	if log.Timestamp == "" {
		log.Timestamp = now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, timestamp, actor_id, entity_type, entity_id, action, field_name, old_value, new_value) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		log.ID, log.Timestamp, nullString(log.ActorID), log.EntityType, log.EntityID, log.Action,
		nullString(log.FieldName), nullString(log.OldValue), nullString(log.NewValue),
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List retrieves log entries matching the given filters, newest first.
func (r *AuditLogRepository) List(ctx context.Context, filters secondary.AuditLogFilters) ([]*secondary.AuditLogRecord, error) {
	query := `SELECT id, timestamp, actor_id, entity_type, entity_id, action, field_name, old_value, new_value FROM audit_logs WHERE 1=1`
	args := &argList{}

	if filters.EntityType != "" {
		query += " AND entity_type = " + args.add(filters.EntityType)
	}
	if filters.EntityID != "" {
		query += " AND entity_id = " + args.add(filters.EntityID)
	}
	if filters.ActorID != "" {
		query += " AND actor_id = " + args.add(filters.ActorID)
	}

	query += " ORDER BY timestamp DESC, id"

	if filters.Limit > 0 {
		query += " LIMIT " + args.add(filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.AuditLogRecord
	for rows.Next() {
		var actorID, fieldName, oldValue, newValue sql.NullString
		record := &secondary.AuditLogRecord{}
		if err := rows.Scan(&record.ID, &record.Timestamp, &actorID, &record.EntityType, &record.EntityID,
			&record.Action, &fieldName, &oldValue, &newValue); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		record.ActorID = actorID.String
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		logs = append(logs, record)
	}
	return logs, rows.Err()
}

var _ secondary.AuditLogRepository = (*AuditLogRepository)(nil)
