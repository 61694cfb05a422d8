package validation

import (
	"testing"
	"time"
)

type stageProbe struct {
	Stage string `validate:"required,sleepstage"`
}

type sensorProbe struct {
	Kind string `validate:"required,sensorkind"`
}

type rangeProbe struct {
	StartAt time.Time `validate:"required"`
	EndAt   time.Time `validate:"required,gtefield=StartAt"`
}

func TestValidateSleepStage(t *testing.T) {
	tests := []struct {
		stage string
		valid bool
	}{
		{"LIGHT", true},
		{"deep", true},
		{"rem", true},
		{"CORE", true},
		{"wake", true},
		{"3", true},
		{"NAPPING", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			errs := Validate(stageProbe{Stage: tt.stage})
			if tt.valid && errs != nil {
				t.Errorf("stage %q: expected valid, got %v", tt.stage, errs)
			}
			if !tt.valid && errs == nil {
				t.Errorf("stage %q: expected field errors", tt.stage)
			}
		})
	}
}

func TestValidateSensorKind(t *testing.T) {
	tests := []struct {
		kind  string
		valid bool
	}{
		{"HEART_RATE", true},
		{"hrv", true},
		{"SPO2", true},
		{"respiratory_rate", true},
		{"STEPS", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			errs := Validate(sensorProbe{Kind: tt.kind})
			if tt.valid && errs != nil {
				t.Errorf("kind %q: expected valid, got %v", tt.kind, errs)
			}
			if !tt.valid && errs == nil {
				t.Errorf("kind %q: expected field errors", tt.kind)
			}
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	base := time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC)

	if errs := Validate(rangeProbe{StartAt: base, EndAt: base.Add(time.Hour)}); errs != nil {
		t.Errorf("expected valid range, got %v", errs)
	}
	// Zero-length intervals are allowed, gtefield is inclusive.
	if errs := Validate(rangeProbe{StartAt: base, EndAt: base}); errs != nil {
		t.Errorf("expected zero-length range to pass, got %v", errs)
	}

	errs := Validate(rangeProbe{StartAt: base, EndAt: base.Add(-time.Minute)})
	if len(errs) != 1 {
		t.Fatalf("expected 1 field error, got %v", errs)
	}
	if errs[0].Field != "end_at" {
		t.Errorf("field = %q, want end_at", errs[0].Field)
	}
	if errs[0].Message != "must not be before start_at" {
		t.Errorf("message = %q", errs[0].Message)
	}
}
