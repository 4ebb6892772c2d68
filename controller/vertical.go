package controller

import "github.com/milk9111/raycontroller/common"

// sweepVertical fans rays along the leading edge, shifted by the already
// resolved horizontal displacement.
func (f *frame) sweepVertical() {
	up := f.delta.Y > 0
	dir, start := common.Down, f.origins.BottomRight
	if up {
		dir, start = common.Up, f.origins.TopRight
	}
	mask := f.cfg.verticalMask(up)
	skin := f.cfg.SkinWidth

	for i := 0; i < f.cfg.VerticalRays; i++ {
		length := rayLength(f.delta.Y, skin, up)
		origin := start
		origin.X += f.delta.X - f.spacing.Horizontal*float64(i)

		hit, ok := f.cast(RayVertical, origin, dir, length, mask)
		if !ok {
			continue
		}

		// Already inside a one-way platform: let the whole move through.
		if f.cfg.Surface(hit.Layer) == SurfaceOneWay && hit.Distance == 0 {
			f.delta.Y = f.initial.Y
			f.c.state.Below = false
			return
		}

		f.delta.Y = hit.Point.Y - origin.Y
		if up {
			f.delta.Y -= skin
			f.c.state.Above = true
		} else {
			f.delta.Y += skin
			f.c.state.Below = true
		}

		if ClassifySlope(hit.Normal, f.cfg.MaxSlope) == SlopeTooSteep {
			f.c.state.Below = false
		}
	}

	if f.delta.Y < 0 {
		f.guardJaggedCorner(mask)
	}
}

// guardJaggedCorner catches geometry narrower than the ray spacing: two
// probes along the bottom edge that both land on upward-facing surfaces
// stop the fall.
func (f *frame) guardJaggedCorner(mask LayerMask) {
	width := f.origins.Width()

	left, okLeft := f.cast(RayCornerProbe, f.origins.BottomLeft.Add(f.delta), common.Right, width, mask)
	right, okRight := f.cast(RayCornerProbe, f.origins.BottomRight.Add(f.delta), common.Left, width, mask)
	if !okLeft || !okRight {
		return
	}
	if common.Sign(left.Normal.Y) == common.Sign(right.Normal.Y) && left.Normal.Y > 0 {
		f.delta.Y = 0
	}
}
