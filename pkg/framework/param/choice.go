package param

import (
	"math"

	"github.com/justyntemme/genart-go/pkg/mathutil"
	"github.com/justyntemme/genart-go/pkg/random"
)

// Option is one entry of a choice param.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

// DisplayLabel returns the label, falling back to the value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// ChoiceConstraints lists the options of a choice param.
type ChoiceConstraints struct {
	Options []Option `json:"options"`
}

// WeightedOption is one entry of a weighted param.
type WeightedOption struct {
	Weight float64 `json:"weight"`
	Value  string  `json:"value"`
	Label  string  `json:"label,omitempty"`
}

// WeightedConstraints lists weighted options, sorted by descending weight,
// together with their total weight.
type WeightedConstraints struct {
	Options []WeightedOption `json:"options"`
	Total   float64          `json:"total"`
}

// pick maps a uniform draw onto an index in [0, n).
func pick(rnd random.Source, n int) int {
	i := int(math.Floor(rnd() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

type choiceImpl struct{}

func (choiceImpl) Validate(spec *Param, v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	c, ok := spec.Constraints.(*ChoiceConstraints)
	if !ok || c == nil {
		return false
	}
	for _, o := range c.Options {
		if o.Value == s {
			return true
		}
	}
	return false
}

func (choiceImpl) Randomize(spec *Param, rnd random.Source) any {
	c, ok := spec.Constraints.(*ChoiceConstraints)
	if !ok || c == nil || len(c.Options) == 0 {
		return nil
	}
	return c.Options[pick(rnd, len(c.Options))].Value
}

type weightedImpl struct{}

func (weightedImpl) Validate(spec *Param, v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	c, ok := spec.Constraints.(*WeightedConstraints)
	if !ok || c == nil {
		return false
	}
	for _, o := range c.Options {
		if o.Value == s {
			return true
		}
	}
	return false
}

// Randomize walks the options from heaviest to lightest, subtracting each
// weight from the remaining total until it drops to the drawn threshold.
func (weightedImpl) Randomize(spec *Param, rnd random.Source) any {
	c, ok := spec.Constraints.(*WeightedConstraints)
	if !ok || c == nil || len(c.Options) == 0 {
		return nil
	}
	r := rnd() * c.Total
	rem := c.Total
	for _, o := range c.Options {
		rem -= o.Weight
		if rem <= r {
			return o.Value
		}
	}
	return c.Options[len(c.Options)-1].Value
}

type toggleImpl struct{}

func (toggleImpl) Validate(_ *Param, v any) bool {
	_, ok := toBool(v)
	return ok
}

func (toggleImpl) Coerce(_ *Param, v any) any {
	b, _ := toBool(v)
	return b
}

func (toggleImpl) Randomize(_ *Param, rnd random.Source) any {
	return rnd() < 0.5
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch x {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
		return false, false
	}
	if f, ok := mathutil.ToFloat(v); ok {
		switch f {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	}
	return false, false
}
