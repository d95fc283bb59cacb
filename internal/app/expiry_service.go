package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"

	"github.com/PT-IMM-P2H/backend/internal/clock"
	"github.com/PT-IMM-P2H/backend/internal/core/expiry"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
	"github.com/PT-IMM-P2H/backend/internal/logging"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
	"github.com/PT-IMM-P2H/backend/internal/ports/secondary"
)

// ExpiryServiceImpl implements the ExpiryService interface.
type ExpiryServiceImpl struct {
	vehicleRepo secondary.VehicleRepository
	thresholds  []int
	clock       clock.Clock
	log         logrus.FieldLogger
}

// NewExpiryService creates a new ExpiryService alerting at the given day thresholds.
func NewExpiryService(vehicleRepo secondary.VehicleRepository, thresholds []int, clk clock.Clock, log logrus.FieldLogger) *ExpiryServiceImpl {
	if log == nil {
		log = logging.Discard()
	}
	return &ExpiryServiceImpl{
		vehicleRepo: vehicleRepo,
		thresholds:  append([]int(nil), thresholds...),
		clock:       clk,
		log:         log.WithField("module", "expiry"),
	}
}

// CheckExpiries returns an alert for every active vehicle document within a threshold,
// most urgent first.
func (s *ExpiryServiceImpl) CheckExpiries(ctx context.Context) ([]*primary.ExpiryAlert, error) {
	active := true
	vehicles, err := s.vehicleRepo.List(ctx, secondary.VehicleFilters{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	now := s.clock.Now()
	alerts := []*primary.ExpiryAlert{}
	for _, v := range vehicles {
		regime, err := shift.ParseRegime(v.Regime)
		if err != nil {
			s.log.WithError(err).WithField("vehicle", v.HullNumber).Warn("skipping vehicle with invalid shift type")
			continue
		}

		for _, h := range s.horizons(v, regime, now) {
			threshold, hit := expiry.MatchThreshold(h.DaysRemaining, s.thresholds)
			if !hit {
				continue
			}
			alerts = append(alerts, &primary.ExpiryAlert{
				VehicleID:     v.ID,
				HullNumber:    v.HullNumber,
				PlateNumber:   v.PlateNumber,
				Document:      h.Document,
				ExpiryDate:    h.ExpiryDate,
				DaysRemaining: h.DaysRemaining,
				Threshold:     threshold,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].DaysRemaining != alerts[j].DaysRemaining {
			return alerts[i].DaysRemaining < alerts[j].DaysRemaining
		}
		return alerts[i].HullNumber < alerts[j].HullNumber
	})

	s.log.WithFields(logrus.Fields{"vehicles": len(vehicles), "alerts": len(alerts)}).Info("expiry check completed")
	return alerts, nil
}

// GetDocumentHorizons returns the remaining days of each document of a vehicle.
func (s *ExpiryServiceImpl) GetDocumentHorizons(ctx context.Context, vehicleID string) ([]*primary.DocumentHorizon, error) {
	v, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	regime, err := shift.ParseRegime(v.Regime)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s has invalid shift type: %w", v.HullNumber, err)
	}
	return s.horizons(v, regime, s.clock.Now()), nil
}

func (s *ExpiryServiceImpl) horizons(v *secondary.VehicleRecord, regime shift.Regime, now time.Time) []*primary.DocumentHorizon {
	docs := []struct {
		doc  expiry.Document
		date string
	}{
		{expiry.DocumentSTNK, v.STNKExpiry},
		{expiry.DocumentKIR, v.KIRExpiry},
	}

	out := make([]*primary.DocumentHorizon, 0, len(docs))
	for _, d := range docs {
		date, err := parseExpiry(d.date)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{"vehicle": v.HullNumber, "document": d.doc}).Warn("ignoring unparseable expiry date")
			date = nil
		}
		out = append(out, &primary.DocumentHorizon{
			Document:      string(d.doc),
			ExpiryDate:    d.date,
			DaysRemaining: expiry.DaysUntil(date, regime, now),
		})
	}
	return out
}

func parseExpiry(value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Ensure ExpiryServiceImpl implements the interface
var _ primary.ExpiryService = (*ExpiryServiceImpl)(nil)
