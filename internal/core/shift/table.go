// Package shift contains the pure shift-window and operational-day logic.
// The shift table below is the single source of truth for both resolution
// and validation; nothing else in the module encodes shift hours.
package shift

import (
	"fmt"
	"strconv"
)

// Shift is a shift code as stamped on a report.
type Shift int

// Shift codes.
const (
	NonShift   Shift = 0
	Shift1     Shift = 1
	Shift2     Shift = 2
	Shift3     Shift = 3
	LongShift1 Shift = 11
	LongShift2 Shift = 12
)

// String returns the human name of the shift ("Shift 1", "Long Shift 2", ...).
func (s Shift) String() string {
	if d, ok := Lookup(s); ok {
		return d.Name
	}
	return "Shift " + strconv.Itoa(int(s))
}

// Regime is the operating regime of a vehicle.
type Regime string

// Regimes.
const (
	// RegimeShift is the rotating three-crew regime (shifts 1, 2, 3).
	RegimeShift Regime = "SHIFT"
	// RegimeLongShift is the two-crew regime (shifts 11, 12).
	RegimeLongShift Regime = "LONG_SHIFT"
	// RegimeNonShift is the fixed daytime-hours regime (shift 0).
	RegimeNonShift Regime = "NON_SHIFT"
)

// IsValid returns true if the regime is a recognized value.
func (r Regime) IsValid() bool {
	switch r {
	case RegimeShift, RegimeLongShift, RegimeNonShift:
		return true
	}
	return false
}

// ParseRegime parses a regime name. Empty input yields RegimeShift,
// the default for new vehicles.
func ParseRegime(s string) (Regime, error) {
	if s == "" {
		return RegimeShift, nil
	}
	r := Regime(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown regime %q (expected SHIFT, LONG_SHIFT or NON_SHIFT)", s)
	}
	return r, nil
}

// normalize maps unrecognized regimes onto the vehicle default.
func (r Regime) normalize() Regime {
	if r.IsValid() {
		return r
	}
	return RegimeShift
}

// Window is a half-open [Start, End) range of whole hours.
// When Start >= End the window wraps past midnight.
type Window struct {
	Start int
	End   int
}

// Contains reports whether hour (0-23) falls inside the window.
func (w Window) Contains(hour int) bool {
	if w.Start < w.End {
		return hour >= w.Start && hour < w.End
	}
	return hour >= w.Start || hour < w.End
}

// String formats the window as "HH:00-HH:00".
func (w Window) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.Start, w.End)
}

// Definition describes one shift: its nominal duty hours and the accepted
// filing window, which opens one hour before the nominal start.
type Definition struct {
	Shift    Shift
	Name     string
	Regime   Regime
	Nominal  Window
	Accepted Window
}

// table is ordered by regime, then by nominal start within the operational day.
var table = []Definition{
	{Shift: Shift1, Name: "Shift 1", Regime: RegimeShift, Nominal: Window{7, 15}, Accepted: Window{6, 15}},
	{Shift: Shift2, Name: "Shift 2", Regime: RegimeShift, Nominal: Window{15, 23}, Accepted: Window{14, 23}},
	{Shift: Shift3, Name: "Shift 3", Regime: RegimeShift, Nominal: Window{23, 7}, Accepted: Window{22, 7}},
	{Shift: LongShift1, Name: "Long Shift 1", Regime: RegimeLongShift, Nominal: Window{7, 19}, Accepted: Window{6, 19}},
	{Shift: LongShift2, Name: "Long Shift 2", Regime: RegimeLongShift, Nominal: Window{19, 7}, Accepted: Window{18, 7}},
	{Shift: NonShift, Name: "Non-Shift", Regime: RegimeNonShift, Nominal: Window{7, 16}, Accepted: Window{0, 16}},
}

// Lookup returns the definition for a shift code.
func Lookup(s Shift) (Definition, bool) {
	for _, d := range table {
		if d.Shift == s {
			return d, true
		}
	}
	return Definition{}, false
}

// ShiftsFor returns the shift definitions used by a regime, in table order.
func ShiftsFor(regime Regime) []Definition {
	regime = regime.normalize()
	var defs []Definition
	for _, d := range table {
		if d.Regime == regime {
			defs = append(defs, d)
		}
	}
	return defs
}

// Codes returns the shift codes used by a regime.
func Codes(regime Regime) []Shift {
	defs := ShiftsFor(regime)
	codes := make([]Shift, len(defs))
	for i, d := range defs {
		codes[i] = d.Shift
	}
	return codes
}

// BelongsTo reports whether shift s is part of the regime's table.
func BelongsTo(s Shift, regime Regime) bool {
	d, ok := Lookup(s)
	return ok && d.Regime == regime.normalize()
}
