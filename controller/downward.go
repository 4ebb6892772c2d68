package controller

import "github.com/milk9111/raycontroller/common"

// stickToDownwardSlope keeps a grounded body glued to a slope it is walking
// down instead of stepping off into the air.
func (f *frame) stickToDownwardSlope() {
	// The trailing corner is the one still touching a descending slope.
	origin := f.origins.BottomRight
	if f.delta.X > 0 {
		origin = f.origins.BottomLeft
	}
	origin.X += f.delta.X

	hit, ok := f.cast(RayDownwardSlope, origin, common.Down, f.cfg.DownwardProbeLength, f.cfg.downwardMask())
	if !ok {
		return
	}
	if ClassifySlope(hit.Normal, f.cfg.MaxDownwardSlope) == SlopeTooSteep {
		return
	}
	if common.Sign(f.delta.X) != common.Sign(hit.Normal.X) {
		return
	}
	f.delta.Y = hit.Point.Y - origin.Y - f.cfg.SkinWidth
}
