// Package expiry computes how far vehicle documents (STNK, KIR) are from expiring.
package expiry

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/PT-IMM-P2H/backend/internal/core/shift"
)

// NoExpiry is returned for documents without an expiry date.
// It sits above every alert threshold, so callers need no special case.
const NoExpiry = 999

// Document identifies a date-bound vehicle document.
type Document string

// Documents.
const (
	DocumentSTNK Document = "STNK" // vehicle registration
	DocumentKIR  Document = "KIR"  // roadworthiness certificate
)

// DaysUntil returns the days from the vehicle's current operational day to expiry.
// Already expired documents yield negative values; nothing is clamped.
func DaysUntil(expiry *civil.Date, regime shift.Regime, now time.Time) int {
	if expiry == nil {
		return NoExpiry
	}
	return expiry.DaysSince(shift.OperationalDate(now, regime))
}

// MatchThreshold returns the tightest threshold that days has crossed.
// With thresholds 7, 3, 0: 5 days matches 7, 2 matches 3, -1 matches 0.
func MatchThreshold(days int, thresholds []int) (int, bool) {
	sorted := append([]int(nil), thresholds...)
	sort.Ints(sorted)
	for _, t := range sorted {
		if days <= t {
			return t, true
		}
	}
	return 0, false
}
