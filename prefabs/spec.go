package prefabs

import (
	"fmt"
	"strconv"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/raycontroller/controller"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ControllerSpec is the YAML form of controller.Config. Zero numbers fall
// back to the defaults.
type ControllerSpec struct {
	Name             string         `yaml:"name"`
	HorizontalRays   int            `yaml:"horizontal_rays"`
	VerticalRays     int            `yaml:"vertical_rays"`
	SkinWidth        float64        `yaml:"skin_width"`
	MaxSlope         float64        `yaml:"max_slope"`
	MaxDownwardSlope float64        `yaml:"max_downward_slope"`
	DownwardProbe    float64        `yaml:"downward_probe"`
	IgnoreOneWay     bool           `yaml:"ignore_one_way"`
	SolidLayers      *LayerMaskSpec `yaml:"solid_layers,omitempty"`
	OneWayLayers     *LayerMaskSpec `yaml:"one_way_layers,omitempty"`
	SpeedCurve       *CurveSpec     `yaml:"speed_curve,omitempty"`
}

func LoadControllerSpec(filename string) (ControllerSpec, error) {
	return LoadSpec[ControllerSpec](filename)
}

// CurveSpec describes the slope speed curve either as keyframes or as a
// tengo script sampled every Step degrees.
type CurveSpec struct {
	Keys   []KeyframeSpec `yaml:"keys,omitempty"`
	Script string         `yaml:"script,omitempty"`
	Step   float64        `yaml:"step,omitempty"`
}

type KeyframeSpec struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
	In    float64 `yaml:"in,omitempty"`
	Out   float64 `yaml:"out,omitempty"`
}

// LayerMaskSpec is a list of layer names or numbers.
type LayerMaskSpec struct {
	controller.LayerMask
}

func (m *LayerMaskSpec) UnmarshalYAML(value *yaml.Node) error {
	var items []string
	switch value.Kind {
	case yaml.ScalarNode:
		items = []string{value.Value}
	case yaml.SequenceNode:
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("layer mask entries must be scalars (line %d)", n.Line)
			}
			items = append(items, n.Value)
		}
	default:
		return fmt.Errorf("layer mask must be a name or a list (line %d)", value.Line)
	}

	var mask controller.LayerMask
	for _, item := range items {
		l, err := ParseLayer(item)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		mask |= l.Mask()
	}
	m.LayerMask = mask
	return nil
}

func (m LayerMaskSpec) MarshalYAML() (interface{}, error) {
	return MaskNames(m.LayerMask), nil
}

// LevelSpec is a sandbox level made of static shapes in world units, y up.
type LevelSpec struct {
	Name      string         `yaml:"name"`
	Spawn     VecSpec        `yaml:"spawn"`
	Body      BodySpec       `yaml:"body"`
	Gravity   float64        `yaml:"gravity"`
	Boxes     []BoxSpec      `yaml:"boxes"`
	Slopes    []SlopeSpec    `yaml:"slopes"`
	Segments  []SegmentSpec  `yaml:"segments"`
	Polygons  []PolygonSpec  `yaml:"polygons"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

func LoadLevelSpec(filename string) (LevelSpec, error) {
	return LoadSpec[LevelSpec](filename)
}

type BodySpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type BoxSpec struct {
	Min   VecSpec `yaml:"min"`
	Max   VecSpec `yaml:"max"`
	Layer string  `yaml:"layer"`
}

// SlopeSpec is a right triangle. A negative run rises to the left.
type SlopeSpec struct {
	Foot  VecSpec `yaml:"foot"`
	Run   float64 `yaml:"run"`
	Angle float64 `yaml:"angle"`
	Layer string  `yaml:"layer"`
}

type SegmentSpec struct {
	A     VecSpec `yaml:"a"`
	B     VecSpec `yaml:"b"`
	Layer string  `yaml:"layer"`
}

type PolygonSpec struct {
	Points []VecSpec `yaml:"points"`
	Layer  string    `yaml:"layer"`
}

type PlatformSpec struct {
	Center   VecSpec `yaml:"center"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation"`
	Layer    string  `yaml:"layer"`
}

// VecSpec reads either `[x, y]` or `{x: .., y: ..}`.
type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v *VecSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("vector needs 2 components, got %d (line %d)", len(value.Content), value.Line)
		}
		x, err := strconv.ParseFloat(value.Content[0].Value, 64)
		if err != nil {
			return fmt.Errorf("vector x (line %d): %w", value.Line, err)
		}
		y, err := strconv.ParseFloat(value.Content[1].Value, 64)
		if err != nil {
			return fmt.Errorf("vector y (line %d): %w", value.Line, err)
		}
		v.X, v.Y = x, y
		return nil
	case yaml.MappingNode:
		type plain VecSpec
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*v = VecSpec(p)
		return nil
	default:
		return fmt.Errorf("vector must be [x, y] or {x, y} (line %d)", value.Line)
	}
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
