package param

import (
	"math/big"
	"sort"
)

var defaultLabels = []string{"X", "Y", "Z", "W"}

// Range declares a numeric param in [min, max], quantized by step (default 1).
func Range(id, name string, min, max float64) *Builder {
	b := New(TypeRange, id, name).Widget("slider")
	b.param.Constraints = &RangeConstraints{Min: min, Max: max, Step: 1}
	return b
}

// Choice declares a pick from a fixed list of options.
func Choice(id, name string, options ...Option) *Builder {
	b := New(TypeChoice, id, name).Widget("dropdown")
	b.param.Constraints = &ChoiceConstraints{Options: options}
	return b
}

// Options creates choice options whose labels equal their values.
func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v}
	}
	return out
}

// Weighted declares a pick whose randomization is biased by weights.
func Weighted(id, name string, options ...WeightedOption) *Builder {
	b := New(TypeWeighted, id, name).Widget("dropdown")
	b.param.Constraints = &WeightedConstraints{Options: options}
	return b
}

// finalizeWeighted sorts options by descending weight and precomputes the
// total the randomizer walks against.
func (b *Builder) finalizeWeighted(c *WeightedConstraints) {
	if len(c.Options) == 0 {
		b.fail("no options")
		return
	}
	total := 0.0
	for _, o := range c.Options {
		if o.Weight < 0 {
			b.fail("negative weight for option %q", o.Value)
			return
		}
		total += o.Weight
	}
	if total <= 0 {
		b.fail("total weight must be positive")
		return
	}
	sort.SliceStable(c.Options, func(i, j int) bool {
		return c.Options[i].Weight > c.Options[j].Weight
	})
	c.Total = total
}

// Toggle declares a boolean switch.
func Toggle(id, name string) *Builder {
	return New(TypeToggle, id, name).Widget("toggle")
}

// Color declares a hex RGB color.
func Color(id, name string) *Builder {
	return New(TypeColor, id, name).Widget("color")
}

// Text declares a free text param. Text is not randomizable.
func Text(id, name string) *Builder {
	b := New(TypeText, id, name).Widget("text")
	b.param.Constraints = &TextConstraints{MinLength: 0, MaxLength: 32}
	return b
}

// NumList declares a list of numbers.
func NumList(id, name string) *Builder {
	b := New(TypeNumList, id, name).Widget("list")
	b.param.Constraints = &ListConstraints{MinLength: 0, MaxLength: 10}
	return b
}

// StrList declares a list of strings.
func StrList(id, name string) *Builder {
	b := New(TypeStrList, id, name).Widget("list")
	b.param.Constraints = &ListConstraints{MinLength: 0, MaxLength: 10}
	return b
}

// Vector declares an n-dimensional numeric vector. Bounds default to [0, 1]
// with a step of 0.01.
func Vector(id, name string, size int) *Builder {
	b := New(TypeVector, id, name).Widget("vector")
	b.param.Constraints = &VectorConstraints{
		Size: size,
		Min:  []float64{0},
		Max:  []float64{1},
		Step: []float64{0.01},
	}
	return b
}

// XY declares a normalized 2D position.
func XY(id, name string) *Builder {
	return New(TypeXY, id, name).Widget("xy")
}

// Ramp declares a time varying value interpolated over flat
// [t0, v0, t1, v1, ...] stops. Without stops the ramp rises from 0 to 1.
func Ramp(id, name string, stops ...float64) *Builder {
	if len(stops) == 0 {
		stops = []float64{0, 0, 1, 1}
	}
	b := New(TypeRamp, id, name).Widget("ramp")
	b.param.Params = rampNested(stops, RampLinear)
	return b
}

func (b *Builder) finalizeRamp() {
	stops, ok := b.param.Params[rampKeyStops]
	if !ok {
		b.fail("missing stops")
		return
	}
	mode := b.param.Params[rampKeyMode]
	if !(listImpl{}).validate(stops, stops.Default, false) {
		b.fail("stops need an even number of at least 4 values")
	}
	if mode == nil || !(choiceImpl{}).Validate(mode, mode.Default) {
		b.fail("invalid ramp mode")
	}
	if b.param.Default != nil {
		b.fail("ramps have no static default")
	}
}

// Date declares a calendar date.
func Date(id, name string) *Builder {
	return New(TypeDate, id, name).Widget("date")
}

// DateTime declares a date with time of day.
func DateTime(id, name string) *Builder {
	return New(TypeDateTime, id, name).Widget("datetime")
}

// Time declares a time of day as [h, m, s].
func Time(id, name string) *Builder {
	return New(TypeTime, id, name).Widget("time")
}

// BigInt declares an arbitrary precision integer in [min, max].
func BigInt(id, name string, min, max *big.Int) *Builder {
	b := New(TypeBigInt, id, name).Widget("bigint")
	c := &BigIntConstraints{}
	if min != nil {
		c.Min = new(big.Int).Set(min)
	}
	if max != nil {
		c.Max = new(big.Int).Set(max)
	}
	b.param.Constraints = c
	return b
}

// Binary declares a raw byte buffer. Binary params are not randomizable.
func Binary(id, name string) *Builder {
	b := New(TypeBinary, id, name).Widget("none")
	b.param.Constraints = &BinaryConstraints{MinLength: 0, MaxLength: 1 << 20}
	return b
}

// Image declares a pixel buffer of the given size and format.
func Image(id, name string, width, height int, format ImageFormat) *Builder {
	b := New(TypeImage, id, name).Widget("image")
	b.param.Constraints = &ImageConstraints{Width: width, Height: height, Format: format}
	return b
}
