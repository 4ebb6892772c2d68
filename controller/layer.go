package controller

// Layer is a collision layer index in [0, 31].
type Layer uint8

// LayerMask is a set of layers, one bit per Layer.
type LayerMask uint32

const (
	LayerDefault Layer = 0
	LayerGround  Layer = 3
	LayerOneWay  Layer = 8

	MaxLayer Layer = 31
)

const (
	MaskNone LayerMask = 0
	MaskAll  LayerMask = ^LayerMask(0)
)

// Mask returns the single-bit mask for l. Layers above MaxLayer map to
// MaskNone.
func (l Layer) Mask() LayerMask {
	if l > MaxLayer {
		return MaskNone
	}
	return LayerMask(1) << l
}

// Layers builds a mask containing every given layer.
func Layers(ls ...Layer) LayerMask {
	var m LayerMask
	for _, l := range ls {
		m |= l.Mask()
	}
	return m
}

func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

func (m LayerMask) With(other LayerMask) LayerMask {
	return m | other
}

func (m LayerMask) Without(other LayerMask) LayerMask {
	return m &^ other
}

// Surface is how the controller treats geometry on a given layer.
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceSolid
	SurfaceOneWay
)

func (s Surface) String() string {
	switch s {
	case SurfaceSolid:
		return "solid"
	case SurfaceOneWay:
		return "one-way"
	default:
		return "none"
	}
}

// Surface classifies l against the configured masks. One-way wins when a
// layer appears in both.
func (c Config) Surface(l Layer) Surface {
	switch {
	case c.OneWayMask.Has(l):
		return SurfaceOneWay
	case c.SolidMask.Has(l):
		return SurfaceSolid
	default:
		return SurfaceNone
	}
}

func (c Config) horizontalMask(first bool) LayerMask {
	mask := c.SolidMask
	if first {
		mask = mask.With(c.OneWayMask)
	}
	if c.IgnoreOneWay {
		mask = mask.Without(c.OneWayMask)
	}
	return mask
}

func (c Config) verticalMask(up bool) LayerMask {
	if up || c.IgnoreOneWay {
		return c.SolidMask
	}
	return c.SolidMask.With(c.OneWayMask)
}

func (c Config) downwardMask() LayerMask {
	if c.IgnoreOneWay {
		return c.SolidMask
	}
	return c.SolidMask.With(c.OneWayMask)
}
