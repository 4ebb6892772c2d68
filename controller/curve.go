package controller

import (
	"errors"
	"fmt"
	"sort"
)

var ErrCurveKeys = errors.New("controller: curve needs keyframes with distinct times")

// Curve maps a slope angle in degrees to a displacement multiplier.
type Curve interface {
	Evaluate(angle float64) float64
}

// CurveFunc adapts a function to the Curve interface.
type CurveFunc func(angle float64) float64

func (f CurveFunc) Evaluate(angle float64) float64 {
	return f(angle)
}

// Keyframe is one control point of a KeyframeCurve. Tangents are slopes
// (value per degree) entering and leaving the key.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// KeyframeCurve interpolates keyframes with cubic Hermite segments and holds
// the first/last value outside the key range.
type KeyframeCurve struct {
	keys []Keyframe
}

func NewKeyframeCurve(keys ...Keyframe) (*KeyframeCurve, error) {
	if len(keys) == 0 {
		return nil, ErrCurveKeys
	}
	sorted := append([]Keyframe(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("%w: duplicate time %g", ErrCurveKeys, sorted[i].Time)
		}
	}
	return &KeyframeCurve{keys: sorted}, nil
}

// DefaultSpeedCurve eases from full speed on flat ground to a standstill at 80°.
func DefaultSpeedCurve() *KeyframeCurve {
	return &KeyframeCurve{keys: []Keyframe{
		{Time: 0, Value: 1},
		{Time: 80, Value: 0},
	}}
}

func (c *KeyframeCurve) Keys() []Keyframe {
	if c == nil {
		return nil
	}
	return append([]Keyframe(nil), c.keys...)
}

func (c *KeyframeCurve) Evaluate(t float64) float64 {
	if c == nil || len(c.keys) == 0 {
		return 1
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]
	dt := b.Time - a.Time
	s := (t - a.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*a.Value + h10*dt*a.OutTangent + h01*b.Value + h11*dt*b.InTangent
}
