// Package inspection contains the pure checklist-outcome rules:
// remark validation and reduction into an overall report status.
package inspection

import (
	"fmt"
	"strings"
)

// Outcome is the result recorded for one checklist item, and also the
// overall status of a report.
type Outcome string

// Outcomes, least severe first.
const (
	OutcomeNormal   Outcome = "NORMAL"
	OutcomeWarning  Outcome = "WARNING"
	OutcomeAbnormal Outcome = "ABNORMAL"
)

// IsValid returns true if the outcome is a recognized value.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeNormal, OutcomeWarning, OutcomeAbnormal:
		return true
	}
	return false
}

// RequiresRemark reports whether an entry with this outcome must carry a remark.
func (o Outcome) RequiresRemark() bool {
	return o == OutcomeAbnormal || o == OutcomeWarning
}

func (o Outcome) severity() int {
	switch o {
	case OutcomeAbnormal:
		return 2
	case OutcomeWarning:
		return 1
	}
	return 0
}

// Entry is one checklist result as submitted.
type Entry struct {
	ChecklistItemID string
	Outcome         Outcome
	Remark          string
}

// ValidationError is a caller error tied to a specific field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEntries checks the checklist rules that must hold before aggregation:
// at least one entry, recognized outcomes, and a non-blank remark on every
// ABNORMAL or WARNING entry.
func ValidateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return &ValidationError{Field: "details", Message: "at least one checklist item is required"}
	}
	for i, e := range entries {
		if !e.Outcome.IsValid() {
			return &ValidationError{
				Field:   fmt.Sprintf("details[%d].status", i),
				Message: fmt.Sprintf("unknown outcome %q", e.Outcome),
			}
		}
		if e.Outcome.RequiresRemark() && strings.TrimSpace(e.Remark) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("details[%d].remark", i),
				Message: fmt.Sprintf("a remark is required for %s items", e.Outcome),
			}
		}
	}
	return nil
}

// Aggregate reduces item outcomes to the overall report status.
// ABNORMAL beats WARNING beats NORMAL. An empty list is a validation failure.
// Remarks are assumed to have been checked by ValidateEntries.
func Aggregate(outcomes []Outcome) (Outcome, error) {
	if len(outcomes) == 0 {
		return "", &ValidationError{Field: "details", Message: "at least one checklist item is required"}
	}

	overall := OutcomeNormal
	for _, o := range outcomes {
		if o.severity() > overall.severity() {
			overall = o
		}
	}
	return overall, nil
}

// Outcomes extracts the outcome of every entry.
func Outcomes(entries []Entry) []Outcome {
	out := make([]Outcome, len(entries))
	for i, e := range entries {
		out[i] = e.Outcome
	}
	return out
}
