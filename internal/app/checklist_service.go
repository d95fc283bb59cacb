package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// defaultChecklist is installed for a vehicle type that has no items yet.
var defaultChecklist = []struct {
	section string
	items   []string
}{
	{"Eksterior", []string{
		"Kondisi ban dan tekanan angin",
		"Baut roda lengkap dan kencang",
		"Lampu utama, sein dan rem berfungsi",
		"Kaca dan spion bersih, tidak retak",
	}},
	{"Keselamatan", []string{
		"APAR tersedia dan belum kedaluwarsa",
		"Sabuk pengaman berfungsi",
		"Klakson dan alarm mundur berfungsi",
		"Buggy whip / bendera terpasang",
	}},
	{"Mesin", []string{
		"Level oli mesin",
		"Level air radiator",
		"Tidak ada kebocoran oli atau bahan bakar",
		"Fungsi rem dan rem tangan",
	}},
	{"Kabin", []string{
		"Indikator panel dan gauge normal",
		"Radio komunikasi berfungsi",
		"Kebersihan kabin",
	}},
}

// ChecklistServiceImpl implements the ChecklistService interface.
type ChecklistServiceImpl struct {
	checklistRepo secondary.ChecklistRepository
	logWriter     secondary.LogWriter
	log           logrus.FieldLogger
}

// NewChecklistService creates a new ChecklistService with injected dependencies.
func NewChecklistService(checklistRepo secondary.ChecklistRepository, logWriter secondary.LogWriter, log logrus.FieldLogger) *ChecklistServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &ChecklistServiceImpl{
		checklistRepo: checklistRepo,
		logWriter:     logWriter,
		log:           log.WithField("module", "checklist"),
	}
}

// ListChecklist returns the active checklist for a vehicle type.
func (s *ChecklistServiceImpl) ListChecklist(ctx context.Context, vehicleType string) ([]*primary.ChecklistItem, error) {
	records, err := s.checklistRepo.ListByVehicleType(ctx, strings.TrimSpace(vehicleType))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}

	items := make([]*primary.ChecklistItem, len(records))
	for i, r := range records {
		items[i] = recordToChecklistItem(r)
	}
	return items, nil
}

// CreateChecklistItem adds an item to a vehicle type's checklist.
func (s *ChecklistServiceImpl) CreateChecklistItem(ctx context.Context, req primary.CreateChecklistItemRequest) (*primary.ChecklistItem, error) {
	req.VehicleType = strings.TrimSpace(req.VehicleType)
	req.SectionName = strings.TrimSpace(req.SectionName)
	req.ItemName = strings.TrimSpace(req.ItemName)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	record := &secondary.ChecklistItemRecord{
		ID:          uuid.NewString(),
		VehicleType: req.VehicleType,
		SectionName: req.SectionName,
		ItemName:    req.ItemName,
		ItemOrder:   req.ItemOrder,
		IsActive:    true,
	}
	if err := s.checklistRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}

	if s.logWriter != nil {
		if err := s.logWriter.LogCreate(ctx, "checklist_item", record.ID); err != nil {
			s.log.WithError(err).Warn("failed to write audit log")
		}
	}

	return recordToChecklistItem(record), nil
}

// DeactivateChecklistItem removes an item from future checklists.
func (s *ChecklistServiceImpl) DeactivateChecklistItem(ctx context.Context, itemID string) error {
	if err := s.checklistRepo.Deactivate(ctx, itemID); err != nil {
		return err
	}
	if s.logWriter != nil {
		if err := s.logWriter.LogUpdate(ctx, "checklist_item", itemID, "is_active", "true", "false"); err != nil {
			s.log.WithError(err).Warn("failed to write audit log")
		}
	}
	return nil
}

// SeedDefaults installs the default checklist for a vehicle type if it has none.
func (s *ChecklistServiceImpl) SeedDefaults(ctx context.Context, vehicleType string) (int, error) {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		return 0, fmt.Errorf("vehicle type is required")
	}

	existing, err := s.checklistRepo.CountByVehicleType(ctx, vehicleType)
	if err != nil {
		return 0, fmt.Errorf("failed to count checklist items: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	created := 0
	for _, section := range defaultChecklist {
		for i, name := range section.items {
			record := &secondary.ChecklistItemRecord{
				ID:          uuid.NewString(),
				VehicleType: vehicleType,
				SectionName: section.section,
				ItemName:    name,
				ItemOrder:   i + 1,
				IsActive:    true,
			}
			if err := s.checklistRepo.Create(ctx, record); err != nil {
				return created, fmt.Errorf("failed to seed checklist item: %w", err)
			}
			created++
		}
	}

	s.log.WithFields(logrus.Fields{"vehicle_type": vehicleType, "items": created}).Info("seeded default checklist")
	return created, nil
}

func recordToChecklistItem(r *secondary.ChecklistItemRecord) *primary.ChecklistItem {
	return &primary.ChecklistItem{
		ID:          r.ID,
		VehicleType: r.VehicleType,
		SectionName: r.SectionName,
		ItemName:    r.ItemName,
		ItemOrder:   r.ItemOrder,
	}
}

// Ensure ChecklistServiceImpl implements the interface
var _ primary.ChecklistService = (*ChecklistServiceImpl)(nil)
