package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// ChecklistAdapter is a thin adapter that translates CLI operations to ChecklistService calls.
type ChecklistAdapter struct {
	service primary.ChecklistService
	out     io.Writer
}

// NewChecklistAdapter creates a new ChecklistAdapter with the given service.
func NewChecklistAdapter(service primary.ChecklistService, out io.Writer) *ChecklistAdapter {
	return &ChecklistAdapter{
		service: service,
		out:     out,
	}
}

// List prints a vehicle type's checklist grouped by section.
func (a *ChecklistAdapter) List(ctx context.Context, vehicleType string) ([]*primary.ChecklistItem, error) {
	items, err := a.service.ListChecklist(ctx, vehicleType)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		fmt.Fprintf(a.out, "No checklist items for %q.\n\n", vehicleType)
		fmt.Fprintln(a.out, "Install the default checklist:")
		fmt.Fprintf(a.out, "  p2h checklist seed %q\n", vehicleType)
		return items, nil
	}

	section := ""
	for _, item := range items {
		if item.SectionName != section {
			if section != "" {
				fmt.Fprintln(a.out)
			}
			section = item.SectionName
			fmt.Fprintf(a.out, "%s\n", section)
		}
		fmt.Fprintf(a.out, "  %2d. %s  [%s]\n", item.ItemOrder, item.ItemName, item.ID)
	}
	return items, nil
}

// Add creates a checklist item.
func (a *ChecklistAdapter) Add(ctx context.Context, req primary.CreateChecklistItemRequest) (*primary.ChecklistItem, error) {
	item, err := a.service.CreateChecklistItem(ctx, req)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "✓ Added %q to %s / %s\n", item.ItemName, item.VehicleType, item.SectionName)
	fmt.Fprintf(a.out, "  ID: %s\n", item.ID)
	return item, nil
}

// Remove deactivates a checklist item.
func (a *ChecklistAdapter) Remove(ctx context.Context, itemID string) error {
	if err := a.service.DeactivateChecklistItem(ctx, itemID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Checklist item %s deactivated\n", itemID)
	return nil
}

// Seed installs the default checklist for a vehicle type.
func (a *ChecklistAdapter) Seed(ctx context.Context, vehicleType string) (int, error) {
	n, err := a.service.SeedDefaults(ctx, vehicleType)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		fmt.Fprintf(a.out, "%s already has a checklist, nothing seeded.\n", vehicleType)
		return 0, nil
	}
	fmt.Fprintf(a.out, "✓ Seeded %d checklist items for %s\n", n, vehicleType)
	return n, nil
}
