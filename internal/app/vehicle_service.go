package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// VehicleServiceImpl implements the VehicleService interface.
type VehicleServiceImpl struct {
	vehicleRepo secondary.VehicleRepository
	logWriter   secondary.LogWriter
	log         logrus.FieldLogger
}

// NewVehicleService creates a new VehicleService with injected dependencies.
func NewVehicleService(vehicleRepo secondary.VehicleRepository, logWriter secondary.LogWriter, log logrus.FieldLogger) *VehicleServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &VehicleServiceImpl{
		vehicleRepo: vehicleRepo,
		logWriter:   logWriter,
		log:         log.WithField("module", "vehicle"),
	}
}

// CreateVehicle registers a new vehicle. The regime defaults to SHIFT.
func (s *VehicleServiceImpl) CreateVehicle(ctx context.Context, req primary.CreateVehicleRequest) (*primary.Vehicle, error) {
	req.HullNumber = strings.TrimSpace(req.HullNumber)
	req.VehicleType = strings.TrimSpace(req.VehicleType)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	regime, err := shift.ParseRegime(req.Regime)
	if err != nil {
		return nil, &inspection.ValidationError{Field: "shift_type", Message: err.Error()}
	}

	record := &secondary.VehicleRecord{
		ID:          uuid.NewString(),
		HullNumber:  req.HullNumber,
		HullColor:   req.HullColor,
		PlateNumber: req.PlateNumber,
		VehicleType: req.VehicleType,
		Brand:       req.Brand,
		STNKExpiry:  req.STNKExpiry,
		KIRExpiry:   req.KIRExpiry,
		Regime:      string(regime),
		IsActive:    true,
	}

	if err := s.vehicleRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.audit(ctx, func(w secondary.LogWriter) error { return w.LogCreate(ctx, "vehicle", record.ID) })
	s.log.WithFields(logrus.Fields{"vehicle_id": record.ID, "hull_number": record.HullNumber}).Info("vehicle created")

	return recordToVehicle(record), nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *VehicleServiceImpl) GetVehicle(ctx context.Context, vehicleID string) (*primary.Vehicle, error) {
	record, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return recordToVehicle(record), nil
}

// GetVehicleByHullNumber retrieves a vehicle by hull number.
func (s *VehicleServiceImpl) GetVehicleByHullNumber(ctx context.Context, hullNumber string) (*primary.Vehicle, error) {
	record, err := s.vehicleRepo.GetByHullNumber(ctx, strings.TrimSpace(hullNumber))
	if err != nil {
		return nil, err
	}
	return recordToVehicle(record), nil
}

// ListVehicles lists vehicles with optional filters.
func (s *VehicleServiceImpl) ListVehicles(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
	records, err := s.vehicleRepo.List(ctx, secondary.VehicleFilters{
		Search:      filters.Search,
		VehicleType: filters.VehicleType,
		Active:      filters.Active,
		Limit:       filters.Limit,
		Offset:      filters.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*primary.Vehicle, len(records))
	for i, r := range records {
		vehicles[i] = recordToVehicle(r)
	}
	return vehicles, nil
}

// UpdateVehicle applies the non-nil fields of the request. Changing the
// regime takes effect for the next submission.
func (s *VehicleServiceImpl) UpdateVehicle(ctx context.Context, req primary.UpdateVehicleRequest) (*primary.Vehicle, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.HullNumber != nil && strings.TrimSpace(*req.HullNumber) == "" {
		return nil, &inspection.ValidationError{Field: "no_lambung", Message: "must not be empty"}
	}
	if req.VehicleType != nil && strings.TrimSpace(*req.VehicleType) == "" {
		return nil, &inspection.ValidationError{Field: "vehicle_type", Message: "must not be empty"}
	}
	if req.Regime != nil && strings.TrimSpace(*req.Regime) == "" {
		return nil, &inspection.ValidationError{Field: "shift_type", Message: "must not be empty"}
	}

	record, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	type change struct{ field, old, new string }
	var changes []change
	set := func(field string, dst *string, v *string) {
		if v == nil {
			return
		}
		nv := strings.TrimSpace(*v)
		if nv != *dst {
			changes = append(changes, change{field, *dst, nv})
			*dst = nv
		}
	}

	set("hull_number", &record.HullNumber, req.HullNumber)
	set("hull_color", &record.HullColor, req.HullColor)
	set("plate_number", &record.PlateNumber, req.PlateNumber)
	set("vehicle_type", &record.VehicleType, req.VehicleType)
	set("brand", &record.Brand, req.Brand)
	set("stnk_expiry", &record.STNKExpiry, req.STNKExpiry)
	set("kir_expiry", &record.KIRExpiry, req.KIRExpiry)
	set("shift_type", &record.Regime, req.Regime)
	if req.IsActive != nil && *req.IsActive != record.IsActive {
		changes = append(changes, change{"is_active", strconv.FormatBool(record.IsActive), strconv.FormatBool(*req.IsActive)})
		record.IsActive = *req.IsActive
	}

	if len(changes) == 0 {
		return recordToVehicle(record), nil
	}

	if err := s.vehicleRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	for _, c := range changes {
		c := c
		s.audit(ctx, func(w secondary.LogWriter) error {
			return w.LogUpdate(ctx, "vehicle", record.ID, c.field, c.old, c.new)
		})
	}
	s.log.WithFields(logrus.Fields{"vehicle_id": record.ID, "changes": len(changes)}).Info("vehicle updated")

	return recordToVehicle(record), nil
}

func (s *VehicleServiceImpl) audit(ctx context.Context, write func(secondary.LogWriter) error) {
	if s.logWriter == nil {
		return
	}
	if err := write(s.logWriter); err != nil {
		s.log.WithError(err).Warn("failed to write audit log")
	}
}

func recordToVehicle(r *secondary.VehicleRecord) *primary.Vehicle {
	return &primary.Vehicle{
		ID:          r.ID,
		HullNumber:  r.HullNumber,
		HullColor:   r.HullColor,
		PlateNumber: r.PlateNumber,
		VehicleType: r.VehicleType,
		Brand:       r.Brand,
		STNKExpiry:  r.STNKExpiry,
		KIRExpiry:   r.KIRExpiry,
		Regime:      r.Regime,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure VehicleServiceImpl implements the interface
var _ primary.VehicleService = (*VehicleServiceImpl)(nil)
