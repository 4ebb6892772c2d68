package controller

import (
	"math"

	"github.com/jakecoffman/cp"
)

// segmentWorld is a deterministic Raycaster over line segments. Normals face
// the side the ray comes from.
type segmentWorld struct {
	segments []testSegment
}

type testSegment struct {
	a, b     cp.Vector
	layer    Layer
	rotation float64
}

func (w *segmentWorld) add(a, b cp.Vector, layer Layer) *segmentWorld {
	return w.addRotated(a, b, layer, 0)
}

func (w *segmentWorld) addRotated(a, b cp.Vector, layer Layer, rotation float64) *segmentWorld {
	w.segments = append(w.segments, testSegment{a: a, b: b, layer: layer, rotation: rotation})
	return w
}

func cross(a, b cp.Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (w *segmentWorld) Raycast(origin, dir cp.Vector, maxDistance float64, mask LayerMask) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, s := range w.segments {
		if !mask.Has(s.layer) {
			continue
		}
		e := s.b.Sub(s.a)
		den := cross(dir, e)
		if math.Abs(den) < 1e-12 {
			continue
		}
		q := s.a.Sub(origin)
		t := cross(q, e) / den
		u := cross(q, dir) / den
		if t < -1e-12 || t > maxDistance || u < 0 || u > 1 {
			continue
		}
		if t < 0 {
			t = 0
		}
		if t >= best.Distance {
			continue
		}
		n := cp.Vector{X: -e.Y, Y: e.X}.Normalize()
		if n.Dot(dir) > 0 {
			n = n.Neg()
		}
		best = Hit{
			Point:    origin.Add(dir.Mult(t)),
			Normal:   n,
			Distance: t,
			Layer:    s.layer,
			Rotation: s.rotation,
		}
		found = true
	}
	return best, found
}

// box is a Body backed by a plain AABB.
type box struct {
	bb    cp.BB
	syncs int
	moved []cp.Vector
}

func newBox(l, b, r, t float64) *box {
	return &box{bb: cp.BB{L: l, B: b, R: r, T: t}}
}

func (b *box) Bounds() cp.BB {
	return b.bb
}

func (b *box) Translate(d cp.Vector) {
	b.bb = cp.BB{L: b.bb.L + d.X, B: b.bb.B + d.Y, R: b.bb.R + d.X, T: b.bb.T + d.Y}
	b.moved = append(b.moved, d)
}

func (b *box) SyncTransforms() {
	b.syncs++
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.HorizontalRays = 4
	cfg.VerticalRays = 4
	cfg.SkinWidth = 0.01
	cfg.MaxSlope = 45
	cfg.MaxDownwardSlope = 50
	cfg.SolidMask = LayerDefault.Mask()
	cfg.OneWayMask = LayerOneWay.Mask()
	return cfg
}

// slopeEnd returns the far end of a segment starting at start, rising at
// angle degrees over the horizontal run.
func slopeEnd(start cp.Vector, angle, run float64) cp.Vector {
	return cp.Vector{X: start.X + run, Y: start.Y + run*math.Tan(angle*math.Pi/180)}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}
