package prefabs

import (
	"errors"
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/raycontroller/controller"
)

const (
	defaultCurveStep = 5.0
	minCurveStep     = 0.5
	curveMaxAngle    = 90.0
)

var ErrCurveScript = errors.New("prefabs: curve script")

// BakeScriptCurve runs a tengo script once per sample angle in [0, 90] and
// turns the results into a piecewise linear keyframe curve. The script
// reads `angle` (degrees) and must define `multiplier`. The math module is
// importable. A step of zero means every 5 degrees; steps finer than half a
// degree are rejected.
func BakeScriptCurve(src []byte, step float64) (*controller.KeyframeCurve, error) {
	if step <= 0 {
		step = defaultCurveStep
	}
	if step < minCurveStep {
		return nil, fmt.Errorf("%w: step %g is below %g degrees", ErrCurveScript, step, minCurveStep)
	}

	script := tengo.NewScript(src)
	if err := script.Add("angle", 0.0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCurveScript, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: compile: %v", ErrCurveScript, err)
	}

	var keys []controller.Keyframe
	for a := 0.0; ; a += step {
		if a > curveMaxAngle {
			a = curveMaxAngle
		}
		if err := compiled.Set("angle", a); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCurveScript, err)
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("%w: angle %g: %v", ErrCurveScript, a, err)
		}
		if !compiled.IsDefined("multiplier") {
			return nil, fmt.Errorf("%w: multiplier is not defined", ErrCurveScript)
		}
		v := compiled.Get("multiplier").Float()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: multiplier at angle %g is %g", ErrCurveScript, a, v)
		}
		keys = append(keys, controller.Keyframe{Time: a, Value: v})
		if a >= curveMaxAngle {
			break
		}
	}

	linearTangents(keys)
	return controller.NewKeyframeCurve(keys...)
}

// linearTangents sets each key's tangents to the slopes of its neighbouring
// segments so the Hermite interpolation between samples is a straight line.
func linearTangents(keys []controller.Keyframe) {
	for i := 1; i < len(keys); i++ {
		slope := (keys[i].Value - keys[i-1].Value) / (keys[i].Time - keys[i-1].Time)
		keys[i-1].OutTangent = slope
		keys[i].InTangent = slope
	}
}
