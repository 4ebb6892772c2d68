package controller

import "github.com/jakecoffman/cp"

// Hit describes the nearest surface struck by a ray.
type Hit struct {
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
	Layer    Layer
	// Rotation is the struck object's rotation about Z in degrees.
	Rotation float64
}

// Raycaster answers single ray queries against the world. A ray whose
// origin starts inside geometry reports a hit at distance 0.
type Raycaster interface {
	Raycast(origin, direction cp.Vector, maxDistance float64, mask LayerMask) (Hit, bool)
}

// RaycasterFunc adapts a function to the Raycaster interface.
type RaycasterFunc func(origin, direction cp.Vector, maxDistance float64, mask LayerMask) (Hit, bool)

func (f RaycasterFunc) Raycast(origin, direction cp.Vector, maxDistance float64, mask LayerMask) (Hit, bool) {
	return f(origin, direction, maxDistance, mask)
}

// Body is the host side of a controlled rectangle.
type Body interface {
	// Bounds returns the world-space AABB of the body.
	Bounds() cp.BB
	// Translate moves the body by delta.
	Translate(delta cp.Vector)
	// SyncTransforms flushes pending transform changes so Bounds is current.
	SyncTransforms()
}
