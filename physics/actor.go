package physics

import "github.com/jakecoffman/cp"

// Actor is a kinematic box moved by a controller. Position is the centre of
// the collider before Offset is applied.
type Actor struct {
	Position cp.Vector
	Width    float64
	Height   float64
	Offset   cp.Vector

	bounds   cp.BB
	teleport *cp.Vector
}

func NewActor(position cp.Vector, width, height float64) *Actor {
	a := &Actor{Position: position, Width: width, Height: height}
	a.SyncTransforms()
	return a
}

// Bounds returns the collider box as of the last sync or translation.
func (a *Actor) Bounds() cp.BB {
	if a == nil {
		return cp.BB{}
	}
	return a.bounds
}

func (a *Actor) Translate(d cp.Vector) {
	if a == nil {
		return
	}
	a.Position = a.Position.Add(d)
	a.bounds = a.bounds.Offset(d)
}

// Teleport moves the actor on the next SyncTransforms.
func (a *Actor) Teleport(position cp.Vector) {
	if a == nil {
		return
	}
	a.teleport = &position
}

// SyncTransforms applies a pending teleport and rebuilds the collider box
// from Position, size and Offset, so direct edits to those fields are
// picked up.
func (a *Actor) SyncTransforms() {
	if a == nil {
		return
	}
	if a.teleport != nil {
		a.Position = *a.teleport
		a.teleport = nil
	}
	a.bounds = cp.NewBBForExtents(a.Position.Add(a.Offset), a.Width/2, a.Height/2)
}

// Feet is the bottom centre of the collider.
func (a *Actor) Feet() cp.Vector {
	if a == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: (a.bounds.L + a.bounds.R) / 2, Y: a.bounds.B}
}
