package prefabs

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/controller"
	"github.com/milk9111/raycontroller/physics"
)

var ErrBodySize = errors.New("prefabs: body needs a positive width and height")

// Config converts s into a validated controller.Config, filling unset fields
// from controller.DefaultConfig.
func (s ControllerSpec) Config() (controller.Config, error) {
	cfg := controller.DefaultConfig()
	if s.HorizontalRays != 0 {
		cfg.HorizontalRays = s.HorizontalRays
	}
	if s.VerticalRays != 0 {
		cfg.VerticalRays = s.VerticalRays
	}
	if s.SkinWidth != 0 {
		cfg.SkinWidth = s.SkinWidth
	}
	if s.MaxSlope != 0 {
		cfg.MaxSlope = s.MaxSlope
	}
	if s.MaxDownwardSlope != 0 {
		cfg.MaxDownwardSlope = s.MaxDownwardSlope
	}
	if s.DownwardProbe != 0 {
		cfg.DownwardProbeLength = s.DownwardProbe
	}
	cfg.IgnoreOneWay = s.IgnoreOneWay
	if s.SolidLayers != nil {
		cfg.SolidMask = s.SolidLayers.LayerMask
	}
	if s.OneWayLayers != nil {
		cfg.OneWayMask = s.OneWayLayers.LayerMask
	}

	if s.SpeedCurve != nil {
		curve, err := s.SpeedCurve.Curve()
		if err != nil {
			return controller.Config{}, err
		}
		cfg.SpeedCurve = curve
	}

	if err := cfg.Validate(); err != nil {
		return controller.Config{}, fmt.Errorf("prefabs: controller %q: %w", s.Name, err)
	}
	return cfg, nil
}

// Curve builds the speed curve. A script takes precedence over keys.
func (c CurveSpec) Curve() (controller.Curve, error) {
	if c.Script != "" {
		src, err := LoadScript(c.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", c.Script, err)
		}
		curve, err := BakeScriptCurve(src, c.Step)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", c.Script, err)
		}
		return curve, nil
	}
	if len(c.Keys) == 0 {
		return controller.DefaultSpeedCurve(), nil
	}
	keys := make([]controller.Keyframe, 0, len(c.Keys))
	for _, k := range c.Keys {
		keys = append(keys, controller.Keyframe{Time: k.Time, Value: k.Value, InTangent: k.In, OutTangent: k.Out})
	}
	curve, err := controller.NewKeyframeCurve(keys...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: speed curve: %w", err)
	}
	return curve, nil
}

// SpecFromConfig is the inverse of ControllerSpec.Config. Keyframe curves
// are exported as keys; other curves are dropped.
func SpecFromConfig(name string, cfg controller.Config) ControllerSpec {
	spec := ControllerSpec{
		Name:             name,
		HorizontalRays:   cfg.HorizontalRays,
		VerticalRays:     cfg.VerticalRays,
		SkinWidth:        cfg.SkinWidth,
		MaxSlope:         cfg.MaxSlope,
		MaxDownwardSlope: cfg.MaxDownwardSlope,
		DownwardProbe:    cfg.DownwardProbeLength,
		IgnoreOneWay:     cfg.IgnoreOneWay,
		SolidLayers:      &LayerMaskSpec{LayerMask: cfg.SolidMask},
		OneWayLayers:     &LayerMaskSpec{LayerMask: cfg.OneWayMask},
	}
	if kc, ok := cfg.SpeedCurve.(*controller.KeyframeCurve); ok {
		curve := &CurveSpec{}
		for _, k := range kc.Keys() {
			curve.Keys = append(curve.Keys, KeyframeSpec{Time: k.Time, Value: k.Value, In: k.InTangent, Out: k.OutTangent})
		}
		spec.SpeedCurve = curve
	}
	return spec
}

func layerOr(name string, fallback controller.Layer) (controller.Layer, error) {
	if name == "" {
		return fallback, nil
	}
	return ParseLayer(name)
}

// BuildLevel creates the static world of a level and an actor at its spawn.
func BuildLevel(spec LevelSpec) (*physics.World, *physics.Actor, error) {
	if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
		return nil, nil, fmt.Errorf("%w: level %q body %gx%g", ErrBodySize, spec.Name, spec.Body.Width, spec.Body.Height)
	}

	w := physics.NewWorld()
	wrap := func(kind string, i int, err error) error {
		return fmt.Errorf("prefabs: level %q %s %d: %w", spec.Name, kind, i, err)
	}

	for i, b := range spec.Boxes {
		l, err := layerOr(b.Layer, controller.LayerGround)
		if err != nil {
			return nil, nil, wrap("box", i, err)
		}
		bb := cp.BB{L: b.Min.X, B: b.Min.Y, R: b.Max.X, T: b.Max.Y}
		if _, err := w.AddBox(bb, l); err != nil {
			return nil, nil, wrap("box", i, err)
		}
	}
	for i, s := range spec.Slopes {
		l, err := layerOr(s.Layer, controller.LayerGround)
		if err != nil {
			return nil, nil, wrap("slope", i, err)
		}
		if _, err := w.AddSlopeAngle(s.Foot.Vector(), s.Run, s.Angle, l); err != nil {
			return nil, nil, wrap("slope", i, err)
		}
	}
	for i, s := range spec.Segments {
		l, err := layerOr(s.Layer, controller.LayerGround)
		if err != nil {
			return nil, nil, wrap("segment", i, err)
		}
		if _, err := w.AddSegment(s.A.Vector(), s.B.Vector(), l); err != nil {
			return nil, nil, wrap("segment", i, err)
		}
	}
	for i, p := range spec.Polygons {
		l, err := layerOr(p.Layer, controller.LayerGround)
		if err != nil {
			return nil, nil, wrap("polygon", i, err)
		}
		verts := make([]cp.Vector, 0, len(p.Points))
		for _, v := range p.Points {
			verts = append(verts, v.Vector())
		}
		if _, err := w.AddPolygon(verts, l); err != nil {
			return nil, nil, wrap("polygon", i, err)
		}
	}
	for i, p := range spec.Platforms {
		l, err := layerOr(p.Layer, controller.LayerOneWay)
		if err != nil {
			return nil, nil, wrap("platform", i, err)
		}
		if _, err := w.AddPlatform(p.Center.Vector(), p.Width, p.Height, p.Rotation, l); err != nil {
			return nil, nil, wrap("platform", i, err)
		}
	}

	actor := physics.NewActor(spec.Spawn.Vector(), spec.Body.Width, spec.Body.Height)
	actor.Offset = cp.Vector{X: spec.Body.OffsetX, Y: spec.Body.OffsetY}
	actor.SyncTransforms()

	if hits := w.Overlaps(actor.Bounds(), controller.MaskAll.Without(controller.LayerOneWay.Mask())); len(hits) > 0 {
		log.Printf("prefabs: level %q spawn %v overlaps %d shape(s)", spec.Name, spec.Spawn, len(hits))
	}
	return w, actor, nil
}

// LoadLevel loads and builds a level by name or path.
func LoadLevel(name string) (LevelSpec, *physics.World, *physics.Actor, error) {
	spec, err := LoadLevelSpec(LevelPath(name))
	if err != nil {
		return LevelSpec{}, nil, nil, err
	}
	w, a, err := BuildLevel(spec)
	if err != nil {
		return LevelSpec{}, nil, nil, err
	}
	return spec, w, a, nil
}
