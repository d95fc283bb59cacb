// Package submission contains the pure gatekeeping logic for P2H submissions.
// Guards evaluate a proposed submission against the vehicle's regime and the
// reports already accepted for its operational day, without side effects.
package submission

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/PT-IMM-P2H/backend/internal/core/inspection"
	"github.com/PT-IMM-P2H/backend/internal/core/shift"
)

// PriorReport contains minimal info about an accepted report for guard evaluation.
type PriorReport struct {
	ReportID       string
	Shift          shift.Shift
	OperationalDay civil.Date
	SubmittedAt    time.Time
}

// SubmitContext provides context for the submission guard.
type SubmitContext struct {
	VehicleID    string
	Regime       shift.Regime
	Now          time.Time
	ClaimedShift *shift.Shift // nil means "use the current shift"
	PriorReports []PriorReport
}

// Decision is the outcome of evaluating a submission.
// When Allowed, Shift and OperationalDay are what the new report is stamped with.
type Decision struct {
	Allowed        bool
	Reason         string
	Shift          shift.Shift
	OperationalDay civil.Date
}

// Evaluate decides whether a submission is accepted.
// Rules:
// - A claimed shift must be a known code (validation error otherwise)
// - A claimed shift must belong to the vehicle's regime
// - The effective shift must be inside its accepted window now
// - No accepted report may exist for the same operational day and shift
//
// Rejections are returned as a Decision, never as an error.
func Evaluate(ctx SubmitContext) (Decision, error) {
	day := shift.OperationalDate(ctx.Now, ctx.Regime)

	effective := shift.Resolve(ctx.Now, ctx.Regime)
	if ctx.ClaimedShift != nil {
		claimed := *ctx.ClaimedShift
		if _, ok := shift.Lookup(claimed); !ok {
			return Decision{}, &inspection.ValidationError{
				Field:   "shift_number",
				Message: fmt.Sprintf("unknown shift code %d", int(claimed)),
			}
		}
		if !shift.BelongsTo(claimed, ctx.Regime) {
			return reject(day, claimed, fmt.Sprintf("%s is not used by %s vehicles (expected %s)",
				claimed, ctx.Regime, joinCodes(shift.Codes(ctx.Regime)))), nil
		}
		effective = claimed
	}

	if valid, reason := shift.IsValidAt(effective, ctx.Now); !valid {
		return reject(day, effective, reason), nil
	}

	if prior, done := findCompleted(ctx.PriorReports, day, effective); done {
		return reject(day, effective, AlreadyCompletedReason(effective, day, prior.SubmittedAt)), nil
	}

	return Decision{Allowed: true, Shift: effective, OperationalDay: day}, nil
}

// AlreadyCompletedReason formats the rejection for a shift that already has a report.
// A zero filedAt omits the filing time.
func AlreadyCompletedReason(s shift.Shift, day civil.Date, filedAt time.Time) string {
	if filedAt.IsZero() {
		return fmt.Sprintf("%s already completed for %s", s, day)
	}
	return fmt.Sprintf("%s already completed for %s (filed at %s)", s, day, filedAt.Format("15:04"))
}

// StatusContext provides context for the read-only eligibility query.
type StatusContext struct {
	VehicleID    string
	Regime       shift.Regime
	Now          time.Time
	PriorReports []PriorReport
}

// Status describes a vehicle's P2H eligibility at a moment.
type Status struct {
	CanSubmit       bool
	CurrentShift    shift.Shift
	CompletedShifts []shift.Shift
	CompletedToday  bool
	OperationalDay  civil.Date
	Reason          string // why CanSubmit is false, empty otherwise
}

// EvaluateStatus computes which shifts are done and whether the current one is open.
// CompletedToday is true once every shift of the regime has a report.
func EvaluateStatus(ctx StatusContext) Status {
	day := shift.OperationalDate(ctx.Now, ctx.Regime)
	current := shift.Resolve(ctx.Now, ctx.Regime)

	seen := make(map[shift.Shift]bool)
	completed := []shift.Shift{}
	for _, r := range ctx.PriorReports {
		if r.OperationalDay != day || seen[r.Shift] {
			continue
		}
		seen[r.Shift] = true
		completed = append(completed, r.Shift)
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i] < completed[j] })

	allDone := true
	for _, code := range shift.Codes(ctx.Regime) {
		if !seen[code] {
			allDone = false
			break
		}
	}

	status := Status{
		CurrentShift:    current,
		CompletedShifts: completed,
		CompletedToday:  allDone,
		OperationalDay:  day,
	}

	if valid, reason := shift.IsValidAt(current, ctx.Now); !valid {
		status.Reason = reason
		return status
	}
	if prior, done := findCompleted(ctx.PriorReports, day, current); done {
		status.Reason = AlreadyCompletedReason(current, day, prior.SubmittedAt)
		return status
	}

	status.CanSubmit = true
	return status
}

func findCompleted(reports []PriorReport, day civil.Date, s shift.Shift) (PriorReport, bool) {
	for _, r := range reports {
		if r.OperationalDay == day && r.Shift == s {
			return r, true
		}
	}
	return PriorReport{}, false
}

func reject(day civil.Date, s shift.Shift, reason string) Decision {
	return Decision{Allowed: false, Reason: reason, Shift: s, OperationalDay: day}
}

func joinCodes(codes []shift.Shift) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%d", int(c))
	}
	return strings.Join(parts, ", ")
}
