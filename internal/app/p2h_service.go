package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
	"github.com/PT-IMM-P2H/backend/internal/core/submission"
	"github.com/PT-IMM-P2H/backend/internal/ctxutil"
	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// P2HServiceImpl implements the P2HService interface.
type P2HServiceImpl struct {
	vehicleRepo   secondary.VehicleRepository
	checklistRepo secondary.ChecklistRepository
	reportRepo    secondary.ReportRepository
	logWriter     secondary.LogWriter
	clock         clock.Clock
	log           logrus.FieldLogger
}

// NewP2HService creates a new P2HService with injected dependencies.
func NewP2HService(
	vehicleRepo secondary.VehicleRepository,
	checklistRepo secondary.ChecklistRepository,
	reportRepo secondary.ReportRepository,
	logWriter secondary.LogWriter,
	clk clock.Clock,
	log logrus.FieldLogger,
) *P2HServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &P2HServiceImpl{
		vehicleRepo:   vehicleRepo,
		checklistRepo: checklistRepo,
		reportRepo:    reportRepo,
		logWriter:     logWriter,
		clock:         clk,
		log:           log.WithField("module", "p2h"),
	}
}

// SubmitReport evaluates and, when accepted, stores a P2H report.
func (s *P2HServiceImpl) SubmitReport(ctx context.Context, req primary.SubmitReportRequest) (*primary.SubmitReportResponse, error) {
	if req.UserID == "" {
		req.UserID = ctxutil.ActorFromContext(ctx)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	entries := make([]inspection.Entry, len(req.Details))
	for i, d := range req.Details {
		entries[i] = inspection.Entry{
			ChecklistItemID: d.ChecklistItemID,
			Outcome:         inspection.Outcome(d.Status),
			Remark:          d.Remark,
		}
	}
	if err := inspection.ValidateEntries(entries); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}
	regime, err := shift.ParseRegime(vehicle.Regime)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s has invalid shift type: %w", vehicle.HullNumber, err)
	}

	if err := s.checkItems(ctx, vehicle, entries); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	day := shift.OperationalDate(now, regime)

	if !vehicle.IsActive {
		return s.rejected(vehicle, shift.Resolve(now, regime), day, fmt.Sprintf("vehicle %s is inactive", vehicle.HullNumber)), nil
	}

	priors, err := s.priorReports(ctx, vehicle.ID, day)
	if err != nil {
		return nil, err
	}

	var claimed *shift.Shift
	if req.ShiftNumber != nil {
		c := shift.Shift(*req.ShiftNumber)
		claimed = &c
	}

	decision, err := submission.Evaluate(submission.SubmitContext{
		VehicleID:    vehicle.ID,
		Regime:       regime,
		Now:          now,
		ClaimedShift: claimed,
		PriorReports: priors,
	})
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return s.rejected(vehicle, decision.Shift, decision.OperationalDay, decision.Reason), nil
	}

	overall, err := inspection.Aggregate(inspection.Outcomes(entries))
	if err != nil {
		return nil, err
	}

	record := &secondary.ReportRecord{
		ID:             uuid.NewString(),
		VehicleID:      vehicle.ID,
		UserID:         req.UserID,
		Shift:          int(decision.Shift),
		OperationalDay: decision.OperationalDay.String(),
		SubmissionDate: civil.DateOf(now).String(),
		SubmissionTime: now.Format("15:04:05"),
		SubmittedAt:    now.Format(time.RFC3339),
		OverallStatus:  string(overall),
	}
	for _, e := range entries {
		record.Details = append(record.Details, &secondary.ReportDetailRecord{
			ID:              uuid.NewString(),
			ChecklistItemID: e.ChecklistItemID,
			Outcome:         string(e.Outcome),
			Remark:          e.Remark,
		})
	}

	if err := s.reportRepo.Create(ctx, record); err != nil {
		if errors.Is(err, secondary.ErrDuplicateShift) {
			// Lost a race with a concurrent submission for the same slot
			return s.rejected(vehicle, decision.Shift, decision.OperationalDay,
				s.raceReason(ctx, vehicle.ID, decision.Shift, decision.OperationalDay)), nil
		}
		logging.LogError(s.log, "p2h", "SubmitReport", "persist report", logrus.Fields{"vehicle_id": vehicle.ID}, err)
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	if s.logWriter != nil {
		if err := s.logWriter.LogCreate(ctx, "p2h_report", record.ID); err != nil {
			s.log.WithError(err).WithField("report_id", record.ID).Warn("failed to write audit log")
		}
	}

	s.log.WithFields(logrus.Fields{
		"report_id":       record.ID,
		"vehicle":         vehicle.HullNumber,
		"shift":           record.Shift,
		"operational_day": record.OperationalDay,
		"status":          record.OverallStatus,
	}).Info("p2h report accepted")

	return &primary.SubmitReportResponse{
		Accepted:       true,
		ShiftNumber:    record.Shift,
		OperationalDay: record.OperationalDay,
		Report:         recordToReport(record),
	}, nil
}

// GetVehicleStatus reports whether a vehicle can submit right now.
func (s *P2HServiceImpl) GetVehicleStatus(ctx context.Context, vehicleID string) (*primary.VehicleStatus, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}
	return s.statusFor(ctx, vehicle)
}

// GetVehicleStatusByHullNumber reports the P2H status of the vehicle with a hull number.
func (s *P2HServiceImpl) GetVehicleStatusByHullNumber(ctx context.Context, hullNumber string) (*primary.VehicleStatus, error) {
	vehicle, err := s.vehicleRepo.GetByHullNumber(ctx, hullNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}
	return s.statusFor(ctx, vehicle)
}

func (s *P2HServiceImpl) statusFor(ctx context.Context, vehicle *secondary.VehicleRecord) (*primary.VehicleStatus, error) {
	regime, err := shift.ParseRegime(vehicle.Regime)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s has invalid shift type: %w", vehicle.HullNumber, err)
	}

	now := s.clock.Now()
	day := shift.OperationalDate(now, regime)

	priors, err := s.priorReports(ctx, vehicle.ID, day)
	if err != nil {
		return nil, err
	}

	st := submission.EvaluateStatus(submission.StatusContext{
		VehicleID:    vehicle.ID,
		Regime:       regime,
		Now:          now,
		PriorReports: priors,
	})

	completed := make([]int, len(st.CompletedShifts))
	for i, c := range st.CompletedShifts {
		completed[i] = int(c)
	}

	status := &primary.VehicleStatus{
		Vehicle:          recordToVehicle(vehicle),
		CanSubmit:        st.CanSubmit,
		CompletedToday:   st.CompletedToday,
		CurrentShift:     int(st.CurrentShift),
		CurrentShiftName: st.CurrentShift.String(),
		ShiftsCompleted:  completed,
		OperationalDay:   st.OperationalDay.String(),
		Message:          st.Reason,
	}

	switch {
	case !vehicle.IsActive:
		status.CanSubmit = false
		status.Message = fmt.Sprintf("vehicle %s is inactive", vehicle.HullNumber)
	case st.CanSubmit:
		status.Message = fmt.Sprintf("%s is open for P2H on %s", st.CurrentShift, st.OperationalDay)
	}

	return status, nil
}

// GetReport retrieves a report with its checklist details.
func (s *P2HServiceImpl) GetReport(ctx context.Context, reportID string) (*primary.Report, error) {
	record, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return recordToReport(record), nil
}

// ListReports lists reports, newest first.
func (s *P2HServiceImpl) ListReports(ctx context.Context, filters primary.ReportFilters) ([]*primary.Report, error) {
	records, err := s.reportRepo.List(ctx, secondary.ReportFilters{
		VehicleID: filters.VehicleID,
		Limit:     filters.Limit,
		Offset:    filters.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*primary.Report, len(records))
	for i, r := range records {
		reports[i] = recordToReport(r)
	}
	return reports, nil
}

// checkItems verifies every submitted item exists, is active, belongs to the
// vehicle's type and appears once.
func (s *P2HServiceImpl) checkItems(ctx context.Context, vehicle *secondary.VehicleRecord, entries []inspection.Entry) error {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if first, dup := seen[e.ChecklistItemID]; dup {
			return &inspection.ValidationError{
				Field:   fmt.Sprintf("details[%d].checklist_item_id", i),
				Message: fmt.Sprintf("duplicates details[%d]", first),
			}
		}
		seen[e.ChecklistItemID] = i
		ids = append(ids, e.ChecklistItemID)
	}

	items, err := s.checklistRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load checklist items: %w", err)
	}
	byID := make(map[string]*secondary.ChecklistItemRecord, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for i, e := range entries {
		field := fmt.Sprintf("details[%d].checklist_item_id", i)
		item, ok := byID[e.ChecklistItemID]
		switch {
		case !ok:
			return &inspection.ValidationError{Field: field, Message: "checklist item not found"}
		case !item.IsActive:
			return &inspection.ValidationError{Field: field, Message: "checklist item is no longer active"}
		case item.VehicleType != vehicle.VehicleType:
			return &inspection.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("checklist item is for %s, vehicle is %s", item.VehicleType, vehicle.VehicleType),
			}
		}
	}
	return nil
}

func (s *P2HServiceImpl) priorReports(ctx context.Context, vehicleID string, day civil.Date) ([]submission.PriorReport, error) {
	records, err := s.reportRepo.ListByVehicleAndDay(ctx, vehicleID, day.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load reports: %w", err)
	}

	priors := make([]submission.PriorReport, 0, len(records))
	for _, r := range records {
		p, err := recordToPrior(r)
		if err != nil {
			return nil, err
		}
		priors = append(priors, p)
	}
	return priors, nil
}

// raceReason names the report that won a concurrent submission.
func (s *P2HServiceImpl) raceReason(ctx context.Context, vehicleID string, sh shift.Shift, day civil.Date) string {
	var filedAt time.Time
	winner, err := s.reportRepo.GetByVehicleDayShift(ctx, vehicleID, day.String(), int(sh))
	if err == nil {
		filedAt, _ = time.Parse(time.RFC3339, winner.SubmittedAt)
	} else {
		s.log.WithError(err).Warn("failed to load winning report")
	}
	return submission.AlreadyCompletedReason(sh, day, filedAt)
}

func (s *P2HServiceImpl) rejected(vehicle *secondary.VehicleRecord, sh shift.Shift, day civil.Date, reason string) *primary.SubmitReportResponse {
	s.log.WithFields(logrus.Fields{
		"vehicle":         vehicle.HullNumber,
		"shift":           int(sh),
		"operational_day": day.String(),
	}).Warn("p2h submission rejected: " + reason)

	return &primary.SubmitReportResponse{
		Accepted:       false,
		Reason:         reason,
		ShiftNumber:    int(sh),
		OperationalDay: day.String(),
	}
}

func recordToPrior(r *secondary.ReportRecord) (submission.PriorReport, error) {
	day, err := civil.ParseDate(r.OperationalDay)
	if err != nil {
		return submission.PriorReport{}, fmt.Errorf("report %s has invalid operational day %q: %w", r.ID, r.OperationalDay, err)
	}
	submittedAt, _ := time.Parse(time.RFC3339, r.SubmittedAt)
	return submission.PriorReport{
		ReportID:       r.ID,
		Shift:          shift.Shift(r.Shift),
		OperationalDay: day,
		SubmittedAt:    submittedAt,
	}, nil
}

func recordToReport(r *secondary.ReportRecord) *primary.Report {
	report := &primary.Report{
		ID:             r.ID,
		VehicleID:      r.VehicleID,
		UserID:         r.UserID,
		ShiftNumber:    r.Shift,
		ShiftName:      shift.Shift(r.Shift).String(),
		OperationalDay: r.OperationalDay,
		SubmissionDate: r.SubmissionDate,
		SubmissionTime: r.SubmissionTime,
		OverallStatus:  r.OverallStatus,
		CreatedAt:      r.CreatedAt,
	}
	for _, d := range r.Details {
		report.Details = append(report.Details, &primary.ReportDetail{
			ID:              d.ID,
			ChecklistItemID: d.ChecklistItemID,
			Status:          d.Outcome,
			Remark:          d.Remark,
		})
	}
	return report
}

// Ensure P2HServiceImpl implements the interface
var _ primary.P2HService = (*P2HServiceImpl)(nil)
