package controller

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

const (
	MinRays           = 2
	MaxHorizontalRays = 40
	MaxVerticalRays   = 60

	MinSkinWidth = 0.001
	MaxSkinWidth = 0.3

	MinSlopeAngle = 30.0
	MaxSlopeAngle = 80.0

	DefaultSkinWidth           = 0.003
	DefaultDownwardProbeLength = 0.1
)

var (
	ErrRayCount     = errors.New("controller: ray count out of range")
	ErrSkinWidth    = errors.New("controller: skin width out of range")
	ErrSlopeAngle   = errors.New("controller: slope angle out of range")
	ErrProbeLength  = errors.New("controller: downward probe length must be positive")
	ErrNilCurve     = errors.New("controller: speed curve is nil")
	ErrSkinTooLarge = errors.New("controller: skin width inverts body bounds")
	ErrNilRaycaster = errors.New("controller: raycaster is nil")
	ErrNilBody      = errors.New("controller: body is nil")
)

// Config holds the tuning of a Controller.
type Config struct {
	// HorizontalRays is the number of rays fired sideways, spread over the
	// body's height. At least MinRays.
	HorizontalRays int
	// VerticalRays is the number of rays fired up or down, spread over the
	// body's width. At least MinRays.
	VerticalRays int
	// SkinWidth insets ray origins from the body's edges.
	SkinWidth float64
	// MaxSlope is the steepest walkable slope in degrees.
	MaxSlope float64
	// MaxDownwardSlope is the steepest slope the body sticks to while
	// walking down it.
	MaxDownwardSlope float64
	// DownwardProbeLength is how far below the body downward slopes are
	// searched for.
	DownwardProbeLength float64
	// SpeedCurve scales displacement on a slope by the slope angle.
	SpeedCurve Curve

	SolidMask    LayerMask
	OneWayMask   LayerMask
	IgnoreOneWay bool
}

func DefaultConfig() Config {
	return Config{
		HorizontalRays:      4,
		VerticalRays:        4,
		SkinWidth:           DefaultSkinWidth,
		MaxSlope:            45,
		MaxDownwardSlope:    50,
		DownwardProbeLength: DefaultDownwardProbeLength,
		SpeedCurve:          DefaultSpeedCurve(),
		SolidMask:           Layers(LayerDefault, LayerGround),
		OneWayMask:          LayerOneWay.Mask(),
	}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error
	if c.HorizontalRays < MinRays || c.HorizontalRays > MaxHorizontalRays {
		errs = append(errs, fmt.Errorf("%w: horizontal rays %d not in [%d, %d]", ErrRayCount, c.HorizontalRays, MinRays, MaxHorizontalRays))
	}
	if c.VerticalRays < MinRays || c.VerticalRays > MaxVerticalRays {
		errs = append(errs, fmt.Errorf("%w: vertical rays %d not in [%d, %d]", ErrRayCount, c.VerticalRays, MinRays, MaxVerticalRays))
	}
	if c.SkinWidth < MinSkinWidth || c.SkinWidth > MaxSkinWidth {
		errs = append(errs, fmt.Errorf("%w: %g not in [%g, %g]", ErrSkinWidth, c.SkinWidth, MinSkinWidth, MaxSkinWidth))
	}
	if c.MaxSlope < MinSlopeAngle || c.MaxSlope > MaxSlopeAngle {
		errs = append(errs, fmt.Errorf("%w: max slope %g not in [%g, %g]", ErrSlopeAngle, c.MaxSlope, MinSlopeAngle, MaxSlopeAngle))
	}
	if c.MaxDownwardSlope < MinSlopeAngle || c.MaxDownwardSlope > MaxSlopeAngle {
		errs = append(errs, fmt.Errorf("%w: max downward slope %g not in [%g, %g]", ErrSlopeAngle, c.MaxDownwardSlope, MinSlopeAngle, MaxSlopeAngle))
	}
	if c.DownwardProbeLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrProbeLength, c.DownwardProbeLength))
	}
	if c.SpeedCurve == nil {
		errs = append(errs, ErrNilCurve)
	}
	return errors.Join(errs...)
}

// ValidateFor validates c and checks that the skin leaves a non-empty ray
// box inside bounds.
func (c Config) ValidateFor(bounds cp.BB) error {
	if err := c.Validate(); err != nil {
		return err
	}
	w := bounds.R - bounds.L
	h := bounds.T - bounds.B
	if 2*c.SkinWidth >= w || 2*c.SkinWidth >= h {
		return fmt.Errorf("%w: skin %g for body %gx%g", ErrSkinTooLarge, c.SkinWidth, w, h)
	}
	return nil
}
