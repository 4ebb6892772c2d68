package controller

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/common"
)

// sweepHorizontal fans rays up the leading side of the body. The bottom ray
// may climb slopes and one-way platforms; any other hit is a wall.
func (f *frame) sweepHorizontal() {
	right := f.delta.X > 0
	dir, start := common.Left, f.origins.BottomLeft
	if right {
		dir, start = common.Right, f.origins.BottomRight
	}
	length := rayLength(f.delta.X, f.cfg.SkinWidth, right)

	for i := 0; i < f.cfg.HorizontalRays; i++ {
		origin := start
		origin.Y += f.spacing.Vertical * float64(i)

		hit, ok := f.cast(RayHorizontal, origin, dir, length, f.cfg.horizontalMask(i == 0))
		if !ok {
			continue
		}
		if i == 0 {
			f.firstHorizontalContact(hit, right)
			continue
		}
		f.blockHorizontal(right)
	}
}

func (f *frame) blockHorizontal(right bool) {
	f.delta.X = 0
	if right {
		f.c.state.Right = true
	} else {
		f.c.state.Left = true
	}
}

func (f *frame) firstHorizontalContact(hit Hit, right bool) {
	if f.cfg.Surface(hit.Layer) == SurfaceOneWay && !oneWayFacing(hit) {
		return
	}
	if f.climbSlope(hit) {
		f.blockHorizontal(right)
	}
}

// climbSlope lifts the body onto a walkable slope. It reports true when the
// slope is too steep and must be treated as a wall.
func (f *frame) climbSlope(hit Hit) bool {
	angle := SlopeAngle(hit.Normal)
	if angle > f.cfg.MaxSlope {
		return true
	}

	// Rising faster than the slope would lift us, e.g. mid-jump.
	rise := SlopeRise(angle, f.delta.X)
	if common.Sign(f.delta.Y) == common.Sign(rise) && math.Abs(f.delta.Y) > math.Abs(rise) {
		return false
	}

	f.delta = f.delta.Mult(f.cfg.SpeedCurve.Evaluate(angle))
	f.delta.Y = SlopeRise(angle, f.delta.X)
	f.c.state.Below = true

	if f.delta.X == 0 {
		return false
	}

	// Check the raised position too so a steeper slope or wall right after
	// this one is not walked into.
	right := f.delta.X > 0
	dir, origin := common.Left, f.origins.BottomLeft
	if right {
		dir, origin = common.Right, f.origins.BottomRight
	}
	origin = origin.Add(cp.Vector{Y: f.delta.Y})
	length := rayLength(f.delta.X, f.cfg.SkinWidth, right)

	confirm, ok := f.cast(RaySlopeConfirm, origin, dir, length, f.cfg.SolidMask)
	if !ok {
		return false
	}
	f.delta.X = confirm.Point.X - origin.X
	if right {
		f.delta.X -= f.cfg.SkinWidth
	} else {
		f.delta.X += f.cfg.SkinWidth
	}
	return false
}
