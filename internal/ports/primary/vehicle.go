package primary

import "context"

// VehicleService defines the primary port for vehicle operations.
type VehicleService interface {
	// CreateVehicle registers a new vehicle.
	CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error)

	// GetVehicle retrieves a vehicle by ID.
	GetVehicle(ctx context.Context, vehicleID string) (*Vehicle, error)

	// GetVehicleByHullNumber retrieves a vehicle by hull number.
	GetVehicleByHullNumber(ctx context.Context, hullNumber string) (*Vehicle, error)

	// ListVehicles lists vehicles with optional filters.
	ListVehicles(ctx context.Context, filters VehicleFilters) ([]*Vehicle, error)

	// UpdateVehicle applies the non-nil fields of the request.
	UpdateVehicle(ctx context.Context, req UpdateVehicleRequest) (*Vehicle, error)
}

// CreateVehicleRequest contains parameters for registering a vehicle.
type CreateVehicleRequest struct {
	HullNumber  string `json:"no_lambung" validate:"required,max=20"`
	HullColor   string `json:"warna_no_lambung" validate:"max=20"`
	PlateNumber string `json:"plat_nomor" validate:"max=20"`
	VehicleType string `json:"vehicle_type" validate:"required,max=50"`
	Brand       string `json:"merk" validate:"max=50"`
	STNKExpiry  string `json:"stnk_expired" validate:"omitempty,datetime=2006-01-02"`
	KIRExpiry   string `json:"kir_expired" validate:"omitempty,datetime=2006-01-02"`
	Regime      string `json:"shift_type" validate:"omitempty,oneof=SHIFT LONG_SHIFT NON_SHIFT"`
}

// UpdateVehicleRequest contains parameters for updating a vehicle.
// Nil fields are left unchanged; an empty expiry string clears the date.
type UpdateVehicleRequest struct {
	VehicleID   string  `json:"id" validate:"required"`
	HullNumber  *string `json:"no_lambung" validate:"omitempty,min=1,max=20"`
	HullColor   *string `json:"warna_no_lambung" validate:"omitempty,max=20"`
	PlateNumber *string `json:"plat_nomor" validate:"omitempty,max=20"`
	VehicleType *string `json:"vehicle_type" validate:"omitempty,min=1,max=50"`
	Brand       *string `json:"merk" validate:"omitempty,max=50"`
	STNKExpiry  *string `json:"stnk_expired" validate:"omitempty,datetime=2006-01-02"`
	KIRExpiry   *string `json:"kir_expired" validate:"omitempty,datetime=2006-01-02"`
	Regime      *string `json:"shift_type" validate:"omitempty,oneof=SHIFT LONG_SHIFT NON_SHIFT"`
	IsActive    *bool   `json:"is_active"`
}

// Vehicle represents a vehicle at the port boundary.
type Vehicle struct {
	ID          string
	HullNumber  string
	HullColor   string
	PlateNumber string
	VehicleType string
	Brand       string
	STNKExpiry  string
	KIRExpiry   string
	Regime      string
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string
}

// VehicleFilters contains filter options for listing vehicles.
type VehicleFilters struct {
	Search      string
	VehicleType string
	Active      *bool
	Limit       int
	Offset      int
}
