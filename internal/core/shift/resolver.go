package shift

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// RotatingDayStartHour is the hour at which the operational day of
// SHIFT and LONG_SHIFT vehicles begins.
const RotatingDayStartHour = 5

// Resolve returns the shift a moment belongs to under the given regime.
//
// A nominal-window match wins over a tolerance-only match, so 14:30
// resolves to Shift 1 even though Shift 2's accepted window opens at 14:00.
// The exception is the tail of an overnight shift after the operational day
// has started: at 06:30 the day shift's accepted window is open, so Shift 1
// (or Long Shift 1) is returned and the evening's night-shift slot stays free.
// NON_SHIFT has a single shift and always resolves to it; whether it may
// still be filed is a separate question answered by IsValidAt.
func Resolve(t time.Time, regime Regime) Shift {
	hour := t.Hour()
	defs := ShiftsFor(regime)
	dayStart := DayStartHour(regime)

	for _, d := range defs {
		if d.Nominal.Contains(hour) && !carriedOver(d, hour, dayStart) {
			return d.Shift
		}
	}
	for _, d := range defs {
		if d.Accepted.Contains(hour) && !carriedOver(d, hour, dayStart) {
			return d.Shift
		}
	}
	for _, d := range defs {
		if d.Accepted.Contains(hour) {
			return d.Shift
		}
	}
	return defs[0].Shift
}

// carriedOver reports whether hour falls in the part of a midnight-crossing
// shift that lies after the operational day boundary.
func carriedOver(d Definition, hour, dayStart int) bool {
	w := d.Nominal
	return w.Start >= w.End && hour < w.End && hour >= dayStart
}

// IsValidAt checks whether shift s may be filed at time t.
// The reason is a user-facing message and is empty when valid.
func IsValidAt(s Shift, t time.Time) (bool, string) {
	d, ok := Lookup(s)
	if !ok {
		return false, fmt.Sprintf("unknown shift code %d", int(s))
	}

	if d.Accepted.Contains(t.Hour()) {
		return true, ""
	}

	if d.Shift == NonShift {
		return false, fmt.Sprintf("%s can only be filed before %02d:00 (current time %s)",
			d.Name, d.Accepted.End, t.Format("15:04"))
	}
	return false, fmt.Sprintf("%s can only be filed between %02d:00 and %02d:00 (current time %s)",
		d.Name, d.Accepted.Start, d.Accepted.End, t.Format("15:04"))
}

// OperationalDate returns the calendar date a moment is attributed to.
// SHIFT and LONG_SHIFT days start at 05:00, so 02:00 belongs to the
// previous date. NON_SHIFT days start at midnight.
// The date is taken in t's own location.
func OperationalDate(t time.Time, regime Regime) civil.Date {
	d := civil.DateOf(t)
	if t.Hour() < DayStartHour(regime) {
		return d.AddDays(-1)
	}
	return d
}

// DayStartHour returns the hour at which the regime's operational day begins.
func DayStartHour(regime Regime) int {
	if regime.normalize() == RegimeNonShift {
		return 0
	}
	return RotatingDayStartHour
}
