package primary

import "context"

// ChecklistService defines the primary port for checklist template operations.
type ChecklistService interface {
	// ListChecklist returns the active checklist for a vehicle type.
	ListChecklist(ctx context.Context, vehicleType string) ([]*ChecklistItem, error)

	// CreateChecklistItem adds an item to a vehicle type's checklist.
	CreateChecklistItem(ctx context.Context, req CreateChecklistItemRequest) (*ChecklistItem, error)

	// DeactivateChecklistItem removes an item from future checklists.
	// Existing reports keep referencing it.
	DeactivateChecklistItem(ctx context.Context, itemID string) error

	// SeedDefaults installs the default checklist for a vehicle type if it has none.
	// Returns the number of items created.
	SeedDefaults(ctx context.Context, vehicleType string) (int, error)
}

// CreateChecklistItemRequest contains parameters for creating a checklist item.
type CreateChecklistItemRequest struct {
	VehicleType string `json:"vehicle_type" validate:"required,max=50"`
	SectionName string `json:"section_name" validate:"required,max=100"`
	ItemName    string `json:"item_name" validate:"required,max=200"`
	ItemOrder   int    `json:"item_order" validate:"gte=0"`
}

// ChecklistItem represents a checklist template item at the port boundary.
type ChecklistItem struct {
	ID          string
	VehicleType string
	SectionName string
	ItemName    string
	ItemOrder   int
}
