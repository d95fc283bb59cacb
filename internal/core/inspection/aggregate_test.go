package inspection

import (
	"errors"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []Outcome
		want     Outcome
	}{
		{"all normal", []Outcome{OutcomeNormal, OutcomeNormal}, OutcomeNormal},
		{"warning beats normal", []Outcome{OutcomeNormal, OutcomeWarning, OutcomeNormal}, OutcomeWarning},
		{"abnormal beats warning", []Outcome{OutcomeNormal, OutcomeAbnormal, OutcomeWarning}, OutcomeAbnormal},
		{"abnormal first", []Outcome{OutcomeAbnormal, OutcomeWarning}, OutcomeAbnormal},
		{"single warning", []Outcome{OutcomeWarning}, OutcomeWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.outcomes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Aggregate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	if err == nil {
		t.Fatal("expected validation error for empty outcomes")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "details" {
		t.Errorf("Field = %q, want details", verr.Field)
	}
}

func TestValidateEntries(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		wantField string
	}{
		{
			name:    "normal without remark",
			entries: []Entry{{ChecklistItemID: "a", Outcome: OutcomeNormal}},
		},
		{
			name: "abnormal with remark",
			entries: []Entry{
				{ChecklistItemID: "a", Outcome: OutcomeNormal},
				{ChecklistItemID: "b", Outcome: OutcomeAbnormal, Remark: "rem lemah"},
			},
		},
		{
			name:      "empty list",
			entries:   nil,
			wantField: "details",
		},
		{
			name: "abnormal without remark",
			entries: []Entry{
				{ChecklistItemID: "a", Outcome: OutcomeNormal},
				{ChecklistItemID: "b", Outcome: OutcomeAbnormal},
			},
			wantField: "details[1].remark",
		},
		{
			name:      "warning with blank remark",
			entries:   []Entry{{ChecklistItemID: "a", Outcome: OutcomeWarning, Remark: "   "}},
			wantField: "details[0].remark",
		},
		{
			name:      "unknown outcome",
			entries:   []Entry{{ChecklistItemID: "a", Outcome: Outcome("BROKEN")}},
			wantField: "details[0].status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntries(tt.entries)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "details[0].remark", Message: "a remark is required for WARNING items"}
	if got := err.Error(); got != "details[0].remark: a remark is required for WARNING items" {
		t.Errorf("got %q", got)
	}

	bare := &ValidationError{Message: "bad"}
	if got := bare.Error(); got != "bad" {
		t.Errorf("got %q", got)
	}
}
