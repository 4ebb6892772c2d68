package controller

import (
	"errors"
	"testing"
)

func TestDefaultSpeedCurve(t *testing.T) {
	c := DefaultSpeedCurve()
	cases := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"flat", 0, 1},
		{"below_range", -10, 1},
		{"midpoint", 40, 0.5},
		{"thirty", 30, 0.68359375},
		{"cutoff", 80, 0},
		{"past_cutoff", 89, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Evaluate(tc.angle); !near(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestKeyframeCurveLinearTangents(t *testing.T) {
	slope := -1.0 / 60
	c, err := NewKeyframeCurve(
		Keyframe{Time: 60, Value: 0, InTangent: slope, OutTangent: slope},
		Keyframe{Time: 0, Value: 1, InTangent: slope, OutTangent: slope},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, angle := range []float64{0, 15, 30, 45, 60} {
		want := 1 - angle/60
		if got := c.Evaluate(angle); !near(got, want) {
			t.Fatalf("angle %v: expected %v, got %v", angle, want, got)
		}
	}
	if keys := c.Keys(); keys[0].Time != 0 {
		t.Fatalf("expected keys sorted by time, got %v", keys)
	}
}

func TestNewKeyframeCurveErrors(t *testing.T) {
	if _, err := NewKeyframeCurve(); !errors.Is(err, ErrCurveKeys) {
		t.Fatalf("expected ErrCurveKeys for empty curve, got %v", err)
	}
	if _, err := NewKeyframeCurve(Keyframe{Time: 1}, Keyframe{Time: 1}); !errors.Is(err, ErrCurveKeys) {
		t.Fatalf("expected ErrCurveKeys for duplicate times, got %v", err)
	}
}
