package expiry

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/PT-IMM-P2H/backend/internal/core/shift"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	today := civil.DateOf(now)
	plus3 := today.AddDays(3)
	minus1 := today.AddDays(-1)

	tests := []struct {
		name   string
		expiry *civil.Date
		regime shift.Regime
		now    time.Time
		want   int
	}{
		{"no expiry date", nil, shift.RegimeShift, now, NoExpiry},
		{"three days ahead", &plus3, shift.RegimeShift, now, 3},
		{"expired yesterday", &minus1, shift.RegimeNonShift, now, -1},
		{"expires today", &today, shift.RegimeShift, now, 0},
		{
			// 02:00 still belongs to the 9th for rotating vehicles.
			"rotating regime before day boundary", &plus3, shift.RegimeShift,
			time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC), 4,
		},
		{
			"fixed hours regime before 05:00", &plus3, shift.RegimeNonShift,
			time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC), 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.expiry, tt.regime, tt.now); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchThreshold(t *testing.T) {
	thresholds := []int{7, 3, 0}

	tests := []struct {
		days      int
		want      int
		wantMatch bool
	}{
		{NoExpiry, 0, false},
		{8, 0, false},
		{7, 7, true},
		{5, 7, true},
		{3, 3, true},
		{1, 3, true},
		{0, 0, true},
		{-12, 0, true},
	}

	for _, tt := range tests {
		got, ok := MatchThreshold(tt.days, thresholds)
		if ok != tt.wantMatch || got != tt.want {
			t.Errorf("MatchThreshold(%d) = (%d, %v), want (%d, %v)", tt.days, got, ok, tt.want, tt.wantMatch)
		}
	}
}

func TestMatchThreshold_DoesNotReorderInput(t *testing.T) {
	thresholds := []int{7, 3, 0}
	MatchThreshold(2, thresholds)
	if thresholds[0] != 7 || thresholds[2] != 0 {
		t.Errorf("input slice was modified: %v", thresholds)
	}
}
