package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

// VehicleAdapter is a thin adapter that translates CLI operations to VehicleService calls.
type VehicleAdapter struct {
	service primary.VehicleService
	expiry  primary.ExpiryService
	out     io.Writer
}

// NewVehicleAdapter creates a new VehicleAdapter with the given services.
func NewVehicleAdapter(service primary.VehicleService, expiry primary.ExpiryService, out io.Writer) *VehicleAdapter {
	return &VehicleAdapter{
		service: service,
		expiry:  expiry,
		out:     out,
	}
}

// Create registers a vehicle.
func (a *VehicleAdapter) Create(ctx context.Context, req primary.CreateVehicleRequest) (*primary.Vehicle, error) {
	v, err := a.service.CreateVehicle(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Registered vehicle %s\n", v.HullNumber)
	fmt.Fprintf(a.out, "  ID:         %s\n", v.ID)
	fmt.Fprintf(a.out, "  Type:       %s\n", v.VehicleType)
	fmt.Fprintf(a.out, "  Shift type: %s\n", v.Regime)
	return v, nil
}

// List lists vehicles matching filters.
func (a *VehicleAdapter) List(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
	vehicles, err := a.service.ListVehicles(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "No vehicles found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Register your first vehicle:")
		fmt.Fprintln(a.out, `  p2h vehicle create LV-012 --type "Light Vehicle" --plate "KT 1234 AB"`)
		return vehicles, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HULL\tPLATE\tTYPE\tSHIFT TYPE\tACTIVE")
	fmt.Fprintln(w, "----\t-----\t----\t----------\t------")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.HullNumber,
			orDash(v.PlateNumber),
			v.VehicleType,
			v.Regime,
			activeLabel(v.IsActive),
		)
	}
	w.Flush()
	return vehicles, nil
}

// Show displays a vehicle and how far its documents are from expiring.
func (a *VehicleAdapter) Show(ctx context.Context, ref string) (*primary.Vehicle, error) {
	v, err := ResolveVehicle(ctx, a.service, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	fmt.Fprintf(a.out, "\nVehicle: %s\n", v.HullNumber)
	fmt.Fprintf(a.out, "ID:         %s\n", v.ID)
	fmt.Fprintf(a.out, "Hull color: %s\n", orDash(v.HullColor))
	fmt.Fprintf(a.out, "Plate:      %s\n", orDash(v.PlateNumber))
	fmt.Fprintf(a.out, "Type:       %s\n", v.VehicleType)
	fmt.Fprintf(a.out, "Brand:      %s\n", orDash(v.Brand))
	fmt.Fprintf(a.out, "Shift type: %s\n", v.Regime)
	fmt.Fprintf(a.out, "Active:     %s\n", activeLabel(v.IsActive))

	if a.expiry != nil {
		horizons, err := a.expiry.GetDocumentHorizons(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute document expiry: %w", err)
		}
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DOCUMENT\tEXPIRES\tREMAINING")
		for _, h := range horizons {
			fmt.Fprintf(w, "%s\t%s\t%s\n", h.Document, orDash(h.ExpiryDate), daysLabel(h.DaysRemaining))
		}
		w.Flush()
	}
	fmt.Fprintln(a.out)

	return v, nil
}

// Update applies field changes to a vehicle identified by ID or hull number.
func (a *VehicleAdapter) Update(ctx context.Context, ref string, req primary.UpdateVehicleRequest) (*primary.Vehicle, error) {
	current, err := ResolveVehicle(ctx, a.service, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	req.VehicleID = current.ID

	v, err := a.service.UpdateVehicle(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Vehicle %s updated\n", v.HullNumber)
	return v, nil
}
