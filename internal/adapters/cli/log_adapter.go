package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// LogAdapter prints the audit trail.
type LogAdapter struct {
	service primary.AuditLogService
	out     io.Writer
}

// NewLogAdapter creates a new LogAdapter with the given service.
func NewLogAdapter(service primary.AuditLogService, out io.Writer) *LogAdapter {
	return &LogAdapter{service: service, out: out}
}

// List prints audit entries, newest first.
func (a *LogAdapter) List(ctx context.Context, filters primary.LogFilters) ([]*primary.LogEntry, error) {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No log entries found.")
		return entries, nil
	}

	for _, e := range entries {
		actor := e.ActorID
		if actor == "" {
			actor = "system"
		}
		switch e.Action {
		case "update":
			fmt.Fprintf(a.out, "%s  %-10s %s %s %s: %q → %q\n",
				e.Timestamp, actor, e.Action, e.EntityType, e.EntityID+"."+e.FieldName, e.OldValue, e.NewValue)
		default:
			fmt.Fprintf(a.out, "%s  %-10s %s %s %s\n", e.Timestamp, actor, e.Action, e.EntityType, e.EntityID)
		}
	}
	return entries, nil
}
