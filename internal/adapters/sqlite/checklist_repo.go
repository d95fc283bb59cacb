package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

const checklistColumns = "id, vehicle_type, section_name, item_name, item_order, is_active, created_at"

// ChecklistRepository implements secondary.ChecklistRepository with SQLite.
type ChecklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new SQLite checklist repository.
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Create persists a new checklist item.
func (r *ChecklistRepository) Create(ctx context.Context, item *secondary.ChecklistItemRecord) error {
	if item.CreatedAt == "" {
		item.CreatedAt = now()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO checklist_items ("+checklistColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.VehicleType, item.SectionName, item.ItemName, item.ItemOrder, item.IsActive, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create checklist item: %w", err)
	}
	return nil
}

// ListByVehicleType returns active items for a vehicle type, ordered by section and order.
func (r *ChecklistRepository) ListByVehicleType(ctx context.Context, vehicleType string) ([]*secondary.ChecklistItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+checklistColumns+" FROM checklist_items WHERE vehicle_type = ? AND is_active = 1 ORDER BY section_name, item_order",
		vehicleType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	return scanChecklistItems(rows)
}

// GetByIDs returns the items with the given IDs, active or not.
func (r *ChecklistRepository) GetByIDs(ctx context.Context, ids []string) ([]*secondary.ChecklistItemRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+checklistColumns+" FROM checklist_items WHERE id IN ("+placeholders(len(ids))+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist items: %w", err)
	}
	defer rows.Close()

	return scanChecklistItems(rows)
}

// CountByVehicleType returns how many items exist for a vehicle type.
func (r *ChecklistRepository) CountByVehicleType(ctx context.Context, vehicleType string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM checklist_items WHERE vehicle_type = ?", vehicleType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checklist items: %w", err)
	}
	return count, nil
}

// Deactivate soft-deletes a checklist item.
func (r *ChecklistRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE checklist_items SET is_active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to deactivate checklist item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: checklist item %s", secondary.ErrNotFound, id)
	}
	return nil
}

func scanChecklistItems(rows *sql.Rows) ([]*secondary.ChecklistItemRecord, error) {
	var items []*secondary.ChecklistItemRecord
	for rows.Next() {
		item := &secondary.ChecklistItemRecord{}
		if err := rows.Scan(&item.ID, &item.VehicleType, &item.SectionName, &item.ItemName, &item.ItemOrder, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Ensure ChecklistRepository implements the interface
var _ secondary.ChecklistRepository = (*ChecklistRepository)(nil)
