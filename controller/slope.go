package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/common"
)

// Accepted band for the angle between a one-way platform's hit normal and
// its rotation.
const (
	oneWayMinAngle = 89.8
	oneWayMaxAngle = 90.2
)

type SlopeClass int

const (
	SlopeWalkable SlopeClass = iota
	SlopeTooSteep
)

func (c SlopeClass) String() string {
	if c == SlopeWalkable {
		return "walkable"
	}
	return "too steep"
}

// SlopeAngle is the angle in degrees between normal and up, in [0, 180].
func SlopeAngle(normal cp.Vector) float64 {
	return common.AngleDeg(common.Up, normal)
}

func ClassifySlope(normal cp.Vector, maxAngle float64) SlopeClass {
	if SlopeAngle(normal) > maxAngle {
		return SlopeTooSteep
	}
	return SlopeWalkable
}

// SlopeRise is how far the body climbs while covering dx along a slope of
// the given angle.
func SlopeRise(angle, dx float64) float64 {
	return math.Tan(common.DegToRad(angle)) * math.Abs(dx)
}

// foldRotation maps a rotation in degrees into [0, 180] the way a Z euler
// angle in [0, 360) is folded for the one-way check.
func foldRotation(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r > 180 {
		r -= 180
	}
	return r
}

// oneWayFacing reports whether a one-way platform hit comes from the side the
// platform blocks.
func oneWayFacing(hit Hit) bool {
	diff := math.Abs(common.AngleDeg(common.Right, hit.Normal) - foldRotation(hit.Rotation))
	return diff >= oneWayMinAngle && diff <= oneWayMaxAngle
}
