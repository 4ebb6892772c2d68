package prefabs

import (
	"errors"
	"math"
	"testing"
)

func TestBakeScriptCurve(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		step   float64
		checks map[float64]float64
	}{
		{
			name:   "linear",
			src:    `multiplier := 1.0 - angle / 80.0`,
			step:   10,
			checks: map[float64]float64{0: 1, 35: 0.5625, 80: 0, 90: -0.125},
		},
		{
			name:   "integer_result",
			src:    `multiplier := 1`,
			step:   0,
			checks: map[float64]float64{0: 1, 45: 1},
		},
		{
			name: "uses_math",
			src: `math := import("math")
multiplier := math.cos(angle * math.pi / 180.0)`,
			step:   1,
			checks: map[float64]float64{0: 1, 60: 0.5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			curve, err := BakeScriptCurve([]byte(tc.src), tc.step)
			if err != nil {
				t.Fatalf("bake: %v", err)
			}
			for angle, want := range tc.checks {
				if got := curve.Evaluate(angle); math.Abs(got-want) > 1e-9 {
					t.Fatalf("angle %v: expected %v, got %v", angle, want, got)
				}
			}
			keys := curve.Keys()
			if keys[0].Time != 0 || keys[len(keys)-1].Time != 90 {
				t.Fatalf("expected samples over [0, 90], got %v..%v", keys[0].Time, keys[len(keys)-1].Time)
			}
		})
	}
}

func TestBakeScriptCurveErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		step float64
	}{
		{"syntax", `multiplier := (`, 10},
		{"undefined_multiplier", `x := angle`, 10},
		{"runtime", `multiplier := angle / "flat"`, 10},
		{"nan", `math := import("math")
multiplier := math.nan()`, 10},
		{"step_too_fine", `multiplier := 1.0`, 1e-9},
		{"step_just_below_min", `multiplier := 1.0`, 0.49},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BakeScriptCurve([]byte(tc.src), tc.step); !errors.Is(err, ErrCurveScript) {
				t.Fatalf("expected ErrCurveScript, got %v", err)
			}
		})
	}

	if _, err := BakeScriptCurve([]byte(`multiplier := 1.0`), 0.5); err != nil {
		t.Fatalf("expected the minimum step to be accepted, got %v", err)
	}
}

func TestEmbeddedEaseOutScript(t *testing.T) {
	src, err := LoadScript("ease_out.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	curve, err := BakeScriptCurve(src, 5)
	if err != nil {
		t.Fatalf("bake: %v", err)
	}
	for angle, want := range map[float64]float64{0: 1, 10: 1, 45: 0.75, 80: 0, 90: 0} {
		if got := curve.Evaluate(angle); math.Abs(got-want) > 1e-9 {
			t.Fatalf("angle %v: expected %v, got %v", angle, want, got)
		}
	}

	// Reachable through every path form the loader accepts.
	for _, name := range []string{"scripts/ease_out.tengo", "prefabs/scripts/ease_out.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
	}
}
