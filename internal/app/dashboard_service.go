package app

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// minReportYear is the first year with P2H data.
const minReportYear = 2020

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	vehicleRepo secondary.VehicleRepository
	reportRepo  secondary.ReportRepository
	clock       clock.Clock
	log         logrus.FieldLogger
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(vehicleRepo secondary.VehicleRepository, reportRepo secondary.ReportRepository, clk clock.Clock, log logrus.FieldLogger) *DashboardServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &DashboardServiceImpl{
		vehicleRepo: vehicleRepo,
		reportRepo:  reportRepo,
		clock:       clk,
		log:         log.WithField("module", "dashboard"),
	}
}

// GetStatistics returns vehicle and report totals for an optional operational-day range.
// PendingToday counts active vehicles without a report on their own current
// operational day, which differs between regimes before 05:00.
func (s *DashboardServiceImpl) GetStatistics(ctx context.Context, from, to string) (*primary.Statistics, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	active := true
	vehicles, err := s.vehicleRepo.List(ctx, secondary.VehicleFilters{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	counts, err := s.reportRepo.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	stats := &primary.Statistics{
		TotalVehicles: len(vehicles),
		Normal:        counts[primary.StatusNormal],
		Warning:       counts[primary.StatusWarning],
		Abnormal:      counts[primary.StatusAbnormal],
	}
	stats.TotalReports = stats.Normal + stats.Warning + stats.Abnormal

	now := s.clock.Now()
	reported := map[civil.Date]map[string]bool{}
	for _, v := range vehicles {
		regime, err := shift.ParseRegime(v.Regime)
		if err != nil {
			s.log.WithError(err).WithField("vehicle", v.HullNumber).Warn("skipping vehicle with invalid shift type")
			continue
		}
		day := shift.OperationalDate(now, regime)

		ids, ok := reported[day]
		if !ok {
			list, err := s.reportRepo.ListVehicleIDsReportedOn(ctx, day.String())
			if err != nil {
				return nil, fmt.Errorf("failed to list reported vehicles: %w", err)
			}
			ids = make(map[string]bool, len(list))
			for _, id := range list {
				ids[id] = true
			}
			reported[day] = ids
		}
		if !ids[v.ID] {
			stats.PendingToday++
		}
	}

	return stats, nil
}

// GetMonthlyReports returns per-month status counts for a year.
func (s *DashboardServiceImpl) GetMonthlyReports(ctx context.Context, year int, vehicleType string) (*primary.MonthlyReport, error) {
	maxYear := s.clock.Now().Year() + 5
	if year < minReportYear || year > maxYear {
		return nil, &inspection.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("must be between %d and %d", minReportYear, maxYear),
		}
	}

	vehicleType = strings.TrimSpace(vehicleType)
	records, err := s.reportRepo.MonthlyCounts(ctx, year, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("failed to count monthly reports: %w", err)
	}

	report := &primary.MonthlyReport{
		Year:        year,
		VehicleType: vehicleType,
		Months:      make([]primary.MonthCount, 12),
	}
	for i := range report.Months {
		report.Months[i].Month = i + 1
	}

	for _, r := range records {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		m := &report.Months[r.Month-1]
		switch r.Status {
		case primary.StatusNormal:
			m.Normal += r.Count
		case primary.StatusWarning:
			m.Warning += r.Count
		case primary.StatusAbnormal:
			m.Abnormal += r.Count
		}
	}

	return report, nil
}

func validateRange(from, to string) error {
	var fromDate, toDate civil.Date
	var err error
	if from != "" {
		if fromDate, err = civil.ParseDate(from); err != nil {
			return &inspection.ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD form"}
		}
	}
	if to != "" {
		if toDate, err = civil.ParseDate(to); err != nil {
			return &inspection.ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD form"}
		}
	}
	if from != "" && to != "" && toDate.Before(fromDate) {
		return &inspection.ValidationError{Field: "to", Message: "must not be before from"}
	}
	return nil
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
