package param

import (
	"github.com/justyntemme/genart-go/pkg/mathutil"
)

// Nested keys of a ramp param.
const (
	rampKeyStops = "stops"
	rampKeyMode  = "mode"
)

// Ramp interpolation modes.
const (
	RampLinear = "linear"
	RampSmooth = "smooth"
	RampExp    = "exp"
)

func rampNested(stops []float64, mode string) map[string]*Param {
	return map[string]*Param{
		rampKeyStops: {
			ID:          rampKeyStops,
			Type:        TypeNumList,
			Name:        "Stops",
			Group:       DefaultGroup,
			Update:      UpdateEvent,
			Edit:        EditProtected,
			Randomize:   false,
			Widget:      "list",
			Default:     append([]float64(nil), stops...),
			State:       StateDefault,
			Constraints: &ListConstraints{MinLength: 4, MaxLength: 64, Stride: 2},
		},
		rampKeyMode: {
			ID:          rampKeyMode,
			Type:        TypeChoice,
			Name:        "Mode",
			Group:       DefaultGroup,
			Update:      UpdateEvent,
			Edit:        EditProtected,
			Randomize:   true,
			Widget:      "dropdown",
			Default:     mode,
			State:       StateDefault,
			Constraints: &ChoiceConstraints{Options: Options(RampLinear, RampSmooth, RampExp)},
		},
	}
}

type rampImpl struct{}

// Validate rejects everything; ramps are only customized through their
// nested params.
func (rampImpl) Validate(*Param, any) bool { return false }

func (rampImpl) NestedParams(*Param) map[string]*Param {
	return rampNested([]float64{0, 0, 1, 1}, RampLinear)
}

// Read interpolates the stops at t. Stops must be sorted by time.
func (rampImpl) Read(spec *Param, t float64) any {
	var stops []float64
	mode := RampLinear
	if n, ok := spec.Nested(rampKeyStops); ok {
		stops, _ = mathutil.ToFloats(n.Current())
	}
	if n, ok := spec.Nested(rampKeyMode); ok {
		if m, ok := n.Current().(string); ok {
			mode = m
		}
	}
	return ReadRamp(stops, mode, t)
}

// ReadRamp evaluates flat [t0, v0, t1, v1, ...] stops at t.
func ReadRamp(stops []float64, mode string, t float64) float64 {
	n := len(stops) / 2
	if n == 0 {
		return 0
	}
	i := n - 1
	for ; i >= 0; i-- {
		if stops[2*i] <= t {
			break
		}
	}
	if i < 0 {
		return stops[1]
	}
	if i == n-1 {
		return stops[2*i+1]
	}
	t0, v0 := stops[2*i], stops[2*i+1]
	t1, v1 := stops[2*i+2], stops[2*i+3]
	switch mode {
	case RampSmooth:
		return mathutil.Mix(v0, v1, mathutil.Smoothstep01(mathutil.Fit(t, t0, t1, 0, 1)))
	case RampExp:
		return mathutil.Mix(v0, v1, mathutil.EaseInOut5(mathutil.Fit(t, t0, t1, 0, 1)))
	default:
		return mathutil.Fit(t, t0, t1, v0, v1)
	}
}
