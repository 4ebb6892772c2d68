package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/common"
	"github.com/milk9111/raycontroller/controller"
)

var (
	ErrEmptyShape  = errors.New("physics: shape has no area")
	ErrPolygonSize = errors.New("physics: polygon needs at least 3 vertices")
)

// ShapeInfo is stored in the UserData of every static shape.
type ShapeInfo struct {
	Layer controller.Layer
	// Rotation of the object about Z in degrees. Only one-way platforms
	// care about it.
	Rotation float64
}

// World owns a Chipmunk space of static collision shapes and answers the
// controller's ray queries against it.
type World struct {
	space  *cp.Space
	shapes []*cp.Shape
}

// NewWorld creates an empty world. Nothing is ever stepped; the space is
// only used for its shapes and spatial index.
func NewWorld() *World {
	return &World{space: cp.NewSpace()}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Shapes returns the static shapes in insertion order.
func (w *World) Shapes() []*cp.Shape {
	if w == nil {
		return nil
	}
	return w.shapes
}

func (w *World) add(shape *cp.Shape, info ShapeInfo) *cp.Shape {
	shape.UserData = info
	shape.Filter = cp.NewShapeFilter(cp.NO_GROUP, uint(info.Layer.Mask()), cp.ALL_CATEGORIES)
	shape.SetFriction(0.8)
	w.space.AddShape(shape)
	w.shapes = append(w.shapes, shape)
	return shape
}

// AddBox adds an axis-aligned solid box.
func (w *World) AddBox(bb cp.BB, layer controller.Layer) (*cp.Shape, error) {
	if bb.R <= bb.L || bb.T <= bb.B {
		return nil, fmt.Errorf("%w: box %v", ErrEmptyShape, bb)
	}
	return w.add(cp.NewBox2(w.space.StaticBody, bb, 0), ShapeInfo{Layer: layer}), nil
}

// AddSegment adds a zero-thickness line from a to b.
func (w *World) AddSegment(a, b cp.Vector, layer controller.Layer) (*cp.Shape, error) {
	if a.Equal(b) {
		return nil, fmt.Errorf("%w: segment %v-%v", ErrEmptyShape, a, b)
	}
	return w.add(cp.NewSegment(w.space.StaticBody, a, b, 0), ShapeInfo{Layer: layer}), nil
}

// AddSlope adds a right triangle whose base starts at foot and runs run
// units along X (negative runs to the left) while rising rise units. The
// vertical side is at the far end of the run.
func (w *World) AddSlope(foot cp.Vector, run, rise float64, layer controller.Layer) (*cp.Shape, error) {
	if run == 0 || rise == 0 {
		return nil, fmt.Errorf("%w: slope run %g rise %g", ErrEmptyShape, run, rise)
	}
	verts := []cp.Vector{
		foot,
		{X: foot.X + run, Y: foot.Y},
		{X: foot.X + run, Y: foot.Y + rise},
	}
	return w.AddPolygon(verts, layer)
}

// AddSlopeAngle is AddSlope with the rise given as an angle in degrees.
func (w *World) AddSlopeAngle(foot cp.Vector, run, angle float64, layer controller.Layer) (*cp.Shape, error) {
	return w.AddSlope(foot, run, math.Abs(run)*math.Tan(common.DegToRad(angle)), layer)
}

// AddPolygon adds a convex polygon. Vertices may be in either winding; the
// hull is rebuilt by Chipmunk.
func (w *World) AddPolygon(verts []cp.Vector, layer controller.Layer) (*cp.Shape, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrPolygonSize, len(verts))
	}
	shape := cp.NewPolyShape(w.space.StaticBody, len(verts), verts, cp.NewTransformIdentity(), 0)
	return w.add(shape, ShapeInfo{Layer: layer}), nil
}

// AddPlatform adds a box of the given size centred on center and rotated by
// rotation degrees. The rotation is reported with every hit so one-way
// platforms can be filtered by orientation.
func (w *World) AddPlatform(center cp.Vector, width, height, rotation float64, layer controller.Layer) (*cp.Shape, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: platform %gx%g", ErrEmptyShape, width, height)
	}
	hw, hh := width/2, height/2
	verts := []cp.Vector{
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: -hh},
	}
	transform := cp.NewTransformRigid(center, common.DegToRad(rotation))
	shape := cp.NewPolyShape(w.space.StaticBody, len(verts), verts, transform, 0)
	return w.add(shape, ShapeInfo{Layer: layer, Rotation: rotation}), nil
}

func queryFilter(mask controller.LayerMask) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
}

// Raycast implements controller.Raycaster. A ray starting inside or on a
// shape reports that shape at distance 0 with the normal facing back along
// the ray.
func (w *World) Raycast(origin, dir cp.Vector, maxDistance float64, mask controller.LayerMask) (controller.Hit, bool) {
	if w == nil || w.space == nil || maxDistance <= 0 || mask == controller.MaskNone {
		return controller.Hit{}, false
	}
	end := origin.Add(dir.Mult(maxDistance))
	info := w.space.SegmentQueryFirst(origin, end, 0, queryFilter(mask))
	if info.Shape == nil {
		return controller.Hit{}, false
	}

	hit := controller.Hit{
		Point:    origin.Lerp(end, info.Alpha),
		Normal:   info.Normal,
		Distance: info.Alpha * maxDistance,
	}
	if info.Alpha == 0 {
		hit.Normal = dir.Neg()
	}
	if si, ok := info.Shape.UserData.(ShapeInfo); ok {
		hit.Layer = si.Layer
		hit.Rotation = si.Rotation
	}
	return hit, true
}

// Inside reports whether p lies strictly inside a shape on mask.
func (w *World) Inside(p cp.Vector, mask controller.LayerMask) (ShapeInfo, bool) {
	if w == nil || w.space == nil {
		return ShapeInfo{}, false
	}
	info := w.space.PointQueryNearest(p, 0, queryFilter(mask))
	if info.Shape == nil || info.Distance >= 0 {
		return ShapeInfo{}, false
	}
	si, _ := info.Shape.UserData.(ShapeInfo)
	return si, true
}

// Overlaps returns the info of every shape on mask whose bounding box
// intersects bb.
func (w *World) Overlaps(bb cp.BB, mask controller.LayerMask) []ShapeInfo {
	if w == nil || w.space == nil {
		return nil
	}
	var out []ShapeInfo
	w.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, data interface{}) {
		if si, ok := shape.UserData.(ShapeInfo); ok {
			out = append(out, si)
		}
	}, nil)
	return out
}
