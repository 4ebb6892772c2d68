package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

var (
	Up    = cp.Vector{X: 0, Y: 1}
	Down  = cp.Vector{X: 0, Y: -1}
	Right = cp.Vector{X: 1, Y: 0}
	Left  = cp.Vector{X: -1, Y: 0}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1 for negative values and 1 otherwise, so zero counts as
// positive.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleDeg returns the unsigned angle between a and b in degrees, in [0, 180].
// Zero-length inputs yield 0.
func AngleDeg(a, b cp.Vector) float64 {
	denom := a.Length() * b.Length()
	if denom < 1e-15 {
		return 0
	}
	return RadToDeg(math.Acos(Clamp(a.Dot(b)/denom, -1, 1)))
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
