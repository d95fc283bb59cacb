package primary

import "context"

// AuditLogService defines the primary port for reading the audit trail.
type AuditLogService interface {
	// ListLogs retrieves audit entries matching the given filters, newest first.
	ListLogs(ctx context.Context, filters LogFilters) ([]*LogEntry, error)
}

// LogEntry represents an audit log entry at the port boundary.
type LogEntry struct {
	ID         string
	Timestamp  string
	ActorID    string
	EntityType string // vehicle, checklist_item, p2h_report
	EntityID   string
	Action     string // 'create', 'update'
	FieldName  string // For updates only
	OldValue   string
	NewValue   string
}

// LogFilters contains filter options for querying logs.
type LogFilters struct {
	EntityType string
	EntityID   string
	ActorID    string
	Limit      int
}
