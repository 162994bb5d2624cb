package param

import (
	"github.com/justyntemme/genart-go/pkg/mathutil"
	"github.com/justyntemme/genart-go/pkg/random"
)

// RangeConstraints bounds a range param.
type RangeConstraints struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// VectorConstraints holds per-component bounds of a vector param.
type VectorConstraints struct {
	Size   int       `json:"size"`
	Min    []float64 `json:"min"`
	Max    []float64 `json:"max"`
	Step   []float64 `json:"step"`
	Labels []string  `json:"labels"`
}

var defaultRange = RangeConstraints{Min: 0, Max: 100, Step: 1}

func rangeConstraints(spec *Param) *RangeConstraints {
	if c, ok := spec.Constraints.(*RangeConstraints); ok && c != nil {
		return c
	}
	return &defaultRange
}

type rangeImpl struct{}

func (rangeImpl) Validate(spec *Param, v any) bool {
	f, ok := mathutil.ToFloat(v)
	if !ok {
		return false
	}
	c := rangeConstraints(spec)
	return f >= c.Min && f <= c.Max
}

func (rangeImpl) Coerce(spec *Param, v any) any {
	f, _ := mathutil.ToFloat(v)
	c := rangeConstraints(spec)
	return mathutil.Clamp(mathutil.RoundTo(f, c.Step), c.Min, c.Max)
}

func (rangeImpl) Randomize(spec *Param, rnd random.Source) any {
	c := rangeConstraints(spec)
	return mathutil.Clamp(mathutil.RoundTo(mathutil.Mix(c.Min, c.Max, rnd()), c.Step), c.Min, c.Max)
}

type vectorImpl struct{}

func (vectorImpl) constraints(spec *Param) (*VectorConstraints, bool) {
	c, ok := spec.Constraints.(*VectorConstraints)
	if !ok || c == nil || c.Size < 1 || len(c.Min) != c.Size || len(c.Max) != c.Size || len(c.Step) != c.Size {
		return nil, false
	}
	return c, true
}

func (i vectorImpl) Validate(spec *Param, v any) bool {
	c, ok := i.constraints(spec)
	if !ok {
		return false
	}
	vals, ok := mathutil.ToFloats(v)
	if !ok || len(vals) != c.Size {
		return false
	}
	for k, x := range vals {
		if x < c.Min[k] || x > c.Max[k] {
			return false
		}
	}
	return true
}

func (i vectorImpl) Coerce(spec *Param, v any) any {
	c, ok := i.constraints(spec)
	vals, _ := mathutil.ToFloats(v)
	if !ok {
		return vals
	}
	out := make([]float64, len(vals))
	for k, x := range vals {
		out[k] = mathutil.Clamp(mathutil.RoundTo(x, c.Step[k]), c.Min[k], c.Max[k])
	}
	return out
}

func (i vectorImpl) Randomize(spec *Param, rnd random.Source) any {
	c, ok := i.constraints(spec)
	if !ok {
		return nil
	}
	out := make([]float64, c.Size)
	for k := range out {
		out[k] = mathutil.Clamp(mathutil.RoundTo(mathutil.Mix(c.Min[k], c.Max[k], rnd()), c.Step[k]), c.Min[k], c.Max[k])
	}
	return out
}

type xyImpl struct{}

func (xyImpl) Validate(_ *Param, v any) bool {
	vals, ok := mathutil.ToFloats(v)
	return ok && len(vals) == 2
}

func (xyImpl) Coerce(_ *Param, v any) any {
	vals, _ := mathutil.ToFloats(v)
	out := make([]float64, len(vals))
	for k, x := range vals {
		out[k] = mathutil.Clamp01(x)
	}
	return out
}

func (xyImpl) Randomize(_ *Param, rnd random.Source) any {
	x := rnd()
	y := rnd()
	return []float64{x, y}
}
