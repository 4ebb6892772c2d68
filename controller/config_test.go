package controller

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"default_is_valid", func(c *Config) {}, nil},
		{"single_horizontal_ray", func(c *Config) { c.HorizontalRays = 1 }, ErrRayCount},
		{"too_many_vertical_rays", func(c *Config) { c.VerticalRays = MaxVerticalRays + 1 }, ErrRayCount},
		{"zero_skin", func(c *Config) { c.SkinWidth = 0 }, ErrSkinWidth},
		{"huge_skin", func(c *Config) { c.SkinWidth = 0.5 }, ErrSkinWidth},
		{"shallow_max_slope", func(c *Config) { c.MaxSlope = 10 }, ErrSlopeAngle},
		{"steep_downward_slope", func(c *Config) { c.MaxDownwardSlope = 85 }, ErrSlopeAngle},
		{"zero_probe", func(c *Config) { c.DownwardProbeLength = 0 }, ErrProbeLength},
		{"nil_curve", func(c *Config) { c.SpeedCurve = nil }, ErrNilCurve},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidateReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizontalRays = 1
	cfg.SkinWidth = 1
	err := cfg.Validate()
	if !errors.Is(err, ErrRayCount) || !errors.Is(err, ErrSkinWidth) {
		t.Fatalf("expected both ray count and skin errors, got %v", err)
	}
}

func TestConfigValidateFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkinWidth = 0.3
	if err := cfg.ValidateFor(cp.BB{L: 0, B: 0, R: 0.5, T: 2}); !errors.Is(err, ErrSkinTooLarge) {
		t.Fatalf("expected ErrSkinTooLarge, got %v", err)
	}
	if err := cfg.ValidateFor(cp.BB{L: 0, B: 0, R: 1, T: 2}); err != nil {
		t.Fatalf("expected body to fit skin, got %v", err)
	}
}

func TestConfigMasks(t *testing.T) {
	cfg := testConfig()
	solid, oneWay := cfg.SolidMask, cfg.OneWayMask

	cases := []struct {
		name   string
		ignore bool
		got    func(c Config) LayerMask
		want   LayerMask
	}{
		{"first_horizontal", false, func(c Config) LayerMask { return c.horizontalMask(true) }, solid | oneWay},
		{"other_horizontal", false, func(c Config) LayerMask { return c.horizontalMask(false) }, solid},
		{"first_horizontal_ignoring", true, func(c Config) LayerMask { return c.horizontalMask(true) }, solid},
		{"vertical_up", false, func(c Config) LayerMask { return c.verticalMask(true) }, solid},
		{"vertical_down", false, func(c Config) LayerMask { return c.verticalMask(false) }, solid | oneWay},
		{"vertical_down_ignoring", true, func(c Config) LayerMask { return c.verticalMask(false) }, solid},
		{"downward", false, func(c Config) LayerMask { return c.downwardMask() }, solid | oneWay},
		{"downward_ignoring", true, func(c Config) LayerMask { return c.downwardMask() }, solid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.IgnoreOneWay = tc.ignore
			if got := tc.got(c); got != tc.want {
				t.Fatalf("expected mask %b, got %b", tc.want, got)
			}
		})
	}
}

func TestConfigSurface(t *testing.T) {
	cfg := testConfig()
	cfg.SolidMask = cfg.SolidMask.With(LayerOneWay.Mask())
	if got := cfg.Surface(LayerOneWay); got != SurfaceOneWay {
		t.Fatalf("expected one-way to win over solid, got %v", got)
	}
	if got := cfg.Surface(LayerDefault); got != SurfaceSolid {
		t.Fatalf("expected solid, got %v", got)
	}
	if got := cfg.Surface(LayerGround); got != SurfaceNone {
		t.Fatalf("expected none, got %v", got)
	}
}
