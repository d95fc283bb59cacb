package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

func TestVehicleAdapter_Create(t *testing.T) {
	var out bytes.Buffer
	adapter := NewVehicleAdapter(&mockVehicleService{}, nil, &out)

	v, err := adapter.Create(context.Background(), primary.CreateVehicleRequest{HullNumber: "LV-099", VehicleType: "Light Vehicle"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.HullNumber != "LV-099" {
		t.Errorf("unexpected vehicle %+v", v)
	}
	if !strings.Contains(out.String(), "✓ Registered vehicle LV-099") {
		t.Errorf("expected success message, got: %s", out.String())
	}
}

func TestVehicleAdapter_List_Empty(t *testing.T) {
	var out bytes.Buffer
	adapter := NewVehicleAdapter(&mockVehicleService{}, nil, &out)

	vehicles, err := adapter.List(context.Background(), primary.VehicleFilters{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(vehicles) != 0 {
		t.Errorf("expected 0 vehicles, got %d", len(vehicles))
	}
	if !strings.Contains(out.String(), "No vehicles found") {
		t.Errorf("expected empty message, got: %s", out.String())
	}
}

func TestVehicleAdapter_List_WithVehicles(t *testing.T) {
	inactive := testVehicle()
	inactive.HullNumber = "DT-301"
	inactive.PlateNumber = ""
	inactive.IsActive = false

	service := &mockVehicleService{
		listVehiclesFn: func(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
			return []*primary.Vehicle{testVehicle(), inactive}, nil
		},
	}
	var out bytes.Buffer
	adapter := NewVehicleAdapter(service, nil, &out)

	if _, err := adapter.List(context.Background(), primary.VehicleFilters{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	for _, want := range []string{"HULL", "SHIFT TYPE", "LV-012", "KT 1234 AB", "DT-301", "no"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestVehicleAdapter_List_Error(t *testing.T) {
	service := &mockVehicleService{
		listVehiclesFn: func(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
			return nil, errors.New("database error")
		},
	}
	adapter := NewVehicleAdapter(service, nil, &bytes.Buffer{})

	_, err := adapter.List(context.Background(), primary.VehicleFilters{})
	if err == nil || !strings.Contains(err.Error(), "failed to list vehicles") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestVehicleAdapter_Show(t *testing.T) {
	service := &mockVehicleService{}
	expiry := &mockExpiryService{horizons: []*primary.DocumentHorizon{
		{Document: "STNK", ExpiryDate: "2026-03-12", DaysRemaining: 2},
		{Document: "KIR", DaysRemaining: 999},
	}}
	var out bytes.Buffer
	adapter := NewVehicleAdapter(service, expiry, &out)

	if _, err := adapter.Show(context.Background(), "LV-012"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.lastGetHull != "LV-012" || service.lastGetID != "" {
		t.Errorf("expected lookup by hull number, got id=%q hull=%q", service.lastGetID, service.lastGetHull)
	}

	output := out.String()
	for _, want := range []string{"Vehicle: LV-012", "STNK", "2026-03-12", "2 day(s)", "KIR"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestVehicleAdapter_Show_ByID(t *testing.T) {
	service := &mockVehicleService{}
	adapter := NewVehicleAdapter(service, nil, &bytes.Buffer{})

	if _, err := adapter.Show(context.Background(), testVehicleID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.lastGetID != testVehicleID {
		t.Errorf("expected lookup by ID, got %q", service.lastGetID)
	}
}

func TestVehicleAdapter_Show_NotFound(t *testing.T) {
	adapter := NewVehicleAdapter(&mockVehicleService{}, nil, &bytes.Buffer{})

	_, err := adapter.Show(context.Background(), "XX-404")
	if !errors.Is(err, secondary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestVehicleAdapter_Update(t *testing.T) {
	var got primary.UpdateVehicleRequest
	service := &mockVehicleService{
		updateVehicleFn: func(ctx context.Context, req primary.UpdateVehicleRequest) (*primary.Vehicle, error) {
			got = req
			return testVehicle(), nil
		},
	}
	var out bytes.Buffer
	adapter := NewVehicleAdapter(service, nil, &out)

	regime := "NON_SHIFT"
	if _, err := adapter.Update(context.Background(), "LV-012", primary.UpdateVehicleRequest{Regime: &regime}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.VehicleID != testVehicleID {
		t.Errorf("expected hull number resolved to ID, got %q", got.VehicleID)
	}
	if !strings.Contains(out.String(), "✓ Vehicle LV-012 updated") {
		t.Errorf("expected success message, got: %s", out.String())
	}
}
