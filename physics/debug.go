package physics

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/controller"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	debugNormalLength   = 0.25
)

var (
	colorSolid   = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	colorOneWay  = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 0.9}
	colorRayMiss = color.NRGBA{R: 120, G: 120, B: 120, A: 200}
	colorRayHit  = color.NRGBA{R: 255, G: 60, B: 60, A: 230}
	colorNormal  = color.NRGBA{R: 255, G: 220, B: 40, A: 230}
)

// Camera maps y-up world units to y-down screen pixels.
type Camera struct {
	X, Y         float64
	Scale        float64
	ScreenHeight float64
}

func (c Camera) ToScreen(v cp.Vector) (float64, float64) {
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	return (v.X - c.X) * scale, c.ScreenHeight - (v.Y-c.Y)*scale
}

// DrawWorld draws every static shape, one-way layers in a separate colour.
func DrawWorld(screen *ebiten.Image, w *World, cam Camera, oneWay controller.LayerMask) {
	if screen == nil || w == nil || w.space == nil {
		return
	}
	cp.DrawSpace(w.space, &debugDrawer{screen: screen, cam: cam, oneWay: oneWay})
}

// DrawRays draws traced rays: the swept part of each ray, its hit point and
// the surface normal there.
func DrawRays(screen *ebiten.Image, rays []controller.Ray, cam Camera) {
	if screen == nil {
		return
	}
	d := &debugDrawer{screen: screen, cam: cam}
	for _, r := range rays {
		if !r.HitOK {
			d.line(r.Origin, r.End(), colorRayMiss)
			continue
		}
		d.line(r.Origin, r.Hit.Point, colorRayHit)
		d.line(r.Hit.Point, r.Hit.Point.Add(r.Hit.Normal.Mult(debugNormalLength)), colorNormal)
	}
}

// DrawBounds outlines bb.
func DrawBounds(screen *ebiten.Image, bb cp.BB, cam Camera, clr color.Color) {
	if screen == nil {
		return
	}
	d := &debugDrawer{screen: screen, cam: cam}
	corners := []cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
	}
	for i := range corners {
		d.line(corners[i], corners[(i+1)%len(corners)], clr)
	}
}

type debugDrawer struct {
	screen *ebiten.Image
	cam    Camera
	oneWay controller.LayerMask
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.line(pos, end, toNRGBA(fill))
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, toNRGBA(fill))
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, toNRGBA(fill))
	if radius > 0 {
		d.drawCircle(a, radius, fill)
		d.drawCircle(b, radius, fill)
	}
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.polygon(verts[:count], toNRGBA(fill))
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2 / d.scale()
	c := toNRGBA(fill)
	d.line(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, c)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return colorSolid
}

// ShapeColor picks the fill passed to the Draw* methods, which is what
// actually gets stroked.
func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if si, ok := shape.UserData.(ShapeInfo); ok && d.oneWay.Has(si.Layer) {
		return colorOneWay
	}
	return colorSolid
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) scale() float64 {
	if d.cam.Scale <= 0 {
		return 1
	}
	return d.cam.Scale
}

func (d *debugDrawer) line(a, b cp.Vector, clr color.Color) {
	x1, y1 := d.cam.ToScreen(a)
	x2, y2 := d.cam.ToScreen(b)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, clr)
}

func (d *debugDrawer) polygon(verts []cp.Vector, clr color.Color) {
	for i := 0; i < len(verts); i++ {
		d.line(verts[i], verts[(i+1)%len(verts)], clr)
	}
}

func (d *debugDrawer) drawCircle(center cp.Vector, radius float64, fill cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.polygon(points, toNRGBA(fill))
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
