package controller

import "github.com/jakecoffman/cp"

// RayOrigins are the corners of the body's bounds inset by the skin width.
type RayOrigins struct {
	TopLeft     cp.Vector
	TopRight    cp.Vector
	BottomLeft  cp.Vector
	BottomRight cp.Vector
}

// NewRayOrigins shrinks bounds by skin on every side and returns its corners.
func NewRayOrigins(bounds cp.BB, skin float64) RayOrigins {
	minX, minY := bounds.L+skin, bounds.B+skin
	maxX, maxY := bounds.R-skin, bounds.T-skin
	return RayOrigins{
		TopLeft:     cp.Vector{X: minX, Y: maxY},
		TopRight:    cp.Vector{X: maxX, Y: maxY},
		BottomLeft:  cp.Vector{X: minX, Y: minY},
		BottomRight: cp.Vector{X: maxX, Y: minY},
	}
}

func (o RayOrigins) Width() float64 {
	return o.TopRight.X - o.BottomLeft.X
}

func (o RayOrigins) Height() float64 {
	return o.TopRight.Y - o.BottomLeft.Y
}

// RaySpacing is the gap between neighbouring parallel rays.
type RaySpacing struct {
	// Horizontal separates the vertical rays along the body's width.
	Horizontal float64
	// Vertical separates the horizontal rays along the body's height.
	Vertical float64
}

// NewRaySpacing spreads the rays evenly from one corner to the other. Both
// counts must be at least MinRays.
func NewRaySpacing(o RayOrigins, horizontalRays, verticalRays int) RaySpacing {
	return RaySpacing{
		Horizontal: o.Width() / float64(verticalRays-1),
		Vertical:   o.Height() / float64(horizontalRays-1),
	}
}
