package controller

import "github.com/jakecoffman/cp"

// RayKind tags the sweep a traced ray belongs to.
type RayKind int

const (
	RayHorizontal RayKind = iota
	RaySlopeConfirm
	RayVertical
	RayCornerProbe
	RayDownwardSlope
)

func (k RayKind) String() string {
	switch k {
	case RayHorizontal:
		return "horizontal"
	case RaySlopeConfirm:
		return "slope-confirm"
	case RayVertical:
		return "vertical"
	case RayCornerProbe:
		return "corner-probe"
	case RayDownwardSlope:
		return "downward-slope"
	default:
		return "unknown"
	}
}

// Ray is one query issued during a move.
type Ray struct {
	Kind      RayKind
	Origin    cp.Vector
	Direction cp.Vector
	Length    float64
	Mask      LayerMask
	Hit       Hit
	HitOK     bool
}

// End is the point where the ray stopped: the hit point or its full length.
func (r Ray) End() cp.Vector {
	if r.HitOK {
		return r.Hit.Point
	}
	return r.Origin.Add(r.Direction.Mult(r.Length))
}

// TraceFunc observes every ray a Controller casts.
type TraceFunc func(Ray)

// RayRecorder collects traced rays, typically for debug drawing.
type RayRecorder struct {
	Rays []Ray
}

func (r *RayRecorder) Record(ray Ray) {
	r.Rays = append(r.Rays, ray)
}

func (r *RayRecorder) Reset() {
	r.Rays = r.Rays[:0]
}
