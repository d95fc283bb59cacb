package app

import (
	"context"
	"errors"
	"testing"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// mockAuditLogRepository implements secondary.AuditLogRepository for testing.
type mockAuditLogRepository struct {
	logs        []*secondary.AuditLogRecord
	lastFilters secondary.AuditLogFilters
	listErr     error
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *secondary.AuditLogRecord) error {
	m.logs = append(m.logs, log)
	return nil
}

func (m *mockAuditLogRepository) List(ctx context.Context, filters secondary.AuditLogFilters) ([]*secondary.AuditLogRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.AuditLogRecord
	for _, l := range m.logs {
		if filters.EntityType != "" && l.EntityType != filters.EntityType {
			continue
		}
		if filters.EntityID != "" && l.EntityID != filters.EntityID {
			continue
		}
		result = append(result, l)
	}
	return result, nil
}

func TestListLogs(t *testing.T) {
	repo := &mockAuditLogRepository{logs: []*secondary.AuditLogRecord{
		{ID: "1", EntityType: "vehicle", EntityID: vehicleLV, Action: "update", FieldName: "shift_type", OldValue: "SHIFT", NewValue: "NON_SHIFT"},
		{ID: "2", EntityType: "p2h_report", EntityID: "r1", Action: "create"},
	}}
	svc := NewLogService(repo)

	entries, err := svc.ListLogs(context.Background(), primary.LogFilters{EntityType: "vehicle"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].FieldName != "shift_type" || entries[0].NewValue != "NON_SHIFT" {
		t.Errorf("unexpected entry %+v", entries[0])
	}
	if repo.lastFilters.Limit != defaultLogLimit {
		t.Errorf("expected default limit %d, got %d", defaultLogLimit, repo.lastFilters.Limit)
	}
}

func TestListLogs_Error(t *testing.T) {
	svc := NewLogService(&mockAuditLogRepository{listErr: errors.New("boom")})

	if _, err := svc.ListLogs(context.Background(), primary.LogFilters{Limit: 5}); err == nil {
		t.Error("expected error")
	}
}
