package param

import (
	"fmt"
	"regexp"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/mathutil"
)

// Builder provides a fluent API for declaring parameters. Structural
// problems are collected and reported by Build.
type Builder struct {
	param *Param
	min   []float64
	max   []float64
	step  []float64
	errs  []string
}

// New creates a builder for a param of the given type with every
// structural default filled in.
func New(typ, id, name string) *Builder {
	return &Builder{
		param: &Param{
			ID:        id,
			Type:      typ,
			Name:      name,
			Group:     DefaultGroup,
			Update:    UpdateEvent,
			Edit:      EditProtected,
			Randomize: true,
			State:     StateVoid,
		},
	}
}

func (b *Builder) fail(format string, args ...any) *Builder {
	b.errs = append(b.errs, fmt.Sprintf(format, args...))
	return b
}

// Desc sets the short description.
func (b *Builder) Desc(desc string) *Builder {
	b.param.Desc = desc
	return b
}

// Doc sets the long form documentation.
func (b *Builder) Doc(doc string) *Builder {
	b.param.Doc = doc
	return b
}

// Group sets the group name.
func (b *Builder) Group(group string) *Builder {
	b.param.Group = group
	return b
}

// Order sets the sort position within the group.
func (b *Builder) Order(order int) *Builder {
	b.param.Order = order
	return b
}

// Update sets how hosts react to changes.
func (b *Builder) Update(mode UpdateMode) *Builder {
	b.param.Update = mode
	return b
}

// Edit sets who may customize the param.
func (b *Builder) Edit(mode EditMode) *Builder {
	b.param.Edit = mode
	return b
}

// Randomize enables or disables randomization of this instance.
func (b *Builder) Randomize(enabled bool) *Builder {
	b.param.Randomize = enabled
	return b
}

// Widget sets the editor widget hint.
func (b *Builder) Widget(widget string) *Builder {
	b.param.Widget = widget
	return b
}

// Default sets the artist provided default.
func (b *Builder) Default(v any) *Builder {
	b.param.Default = v
	return b
}

// Value presets the current value.
func (b *Builder) Value(v any) *Builder {
	b.param.Value = v
	return b
}

// Min sets the lower bound. A single value applies to every vector
// component.
func (b *Builder) Min(v ...float64) *Builder {
	b.min = v
	return b
}

// Max sets the upper bound. A single value applies to every vector
// component.
func (b *Builder) Max(v ...float64) *Builder {
	b.max = v
	return b
}

// Step sets the quantization step. A single value applies to every vector
// component.
func (b *Builder) Step(v ...float64) *Builder {
	b.step = v
	return b
}

// Labels names vector components.
func (b *Builder) Labels(labels ...string) *Builder {
	c, ok := b.param.Constraints.(*VectorConstraints)
	if !ok {
		return b.fail("labels not supported by %s params", b.param.Type)
	}
	c.Labels = labels
	return b
}

// Length bounds text, list and binary lengths.
func (b *Builder) Length(min, max int) *Builder {
	switch c := b.param.Constraints.(type) {
	case *TextConstraints:
		c.MinLength, c.MaxLength = min, max
	case *ListConstraints:
		c.MinLength, c.MaxLength = min, max
	case *BinaryConstraints:
		c.MinLength, c.MaxLength = min, max
	default:
		return b.fail("length not supported by %s params", b.param.Type)
	}
	return b
}

// Match restricts text and string list items to a regular expression.
func (b *Builder) Match(pattern string) *Builder {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return b.fail("invalid pattern %q: %v", pattern, err)
	}
	switch c := b.param.Constraints.(type) {
	case *TextConstraints:
		c.Match, c.re = pattern, re
	case *ListConstraints:
		c.Match, c.re = pattern, re
	default:
		return b.fail("pattern not supported by %s params", b.param.Type)
	}
	return b
}

// Mode sets the ramp interpolation mode.
func (b *Builder) Mode(mode string) *Builder {
	if b.param.Type != TypeRamp {
		return b.fail("mode not supported by %s params", b.param.Type)
	}
	b.param.Params[rampKeyMode].Default = mode
	return b
}

// Build validates the declaration structure and returns the param.
func (b *Builder) Build() (*Param, error) {
	p := b.param
	if err := ValidateID(p.ID); err != nil {
		return nil, err
	}
	if len(b.errs) == 0 {
		b.finalize()
	}
	if len(b.errs) > 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeDeclarationInvalid,
			fmt.Sprintf("param %q: %s", p.ID, b.errs[0]),
			map[string]string{"param": p.ID, "type": p.Type})
	}
	return p, nil
}

// MustBuild is Build for static declarations; it panics on error.
func (b *Builder) MustBuild() *Param {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *Builder) finalize() {
	p := b.param
	if p.Update != UpdateReload && p.Update != UpdateEvent {
		b.fail("invalid update mode %q", p.Update)
	}
	if p.Edit != EditPrivate && p.Edit != EditProtected && p.Edit != EditPublic {
		b.fail("invalid edit mode %q", p.Edit)
	}
	switch c := p.Constraints.(type) {
	case *RangeConstraints:
		if len(b.min) > 0 {
			c.Min = b.min[0]
		}
		if len(b.max) > 0 {
			c.Max = b.max[0]
		}
		if len(b.step) > 0 {
			c.Step = b.step[0]
		}
		if c.Min > c.Max {
			b.fail("min %v > max %v", c.Min, c.Max)
		}
		if c.Step <= 0 {
			b.fail("step must be positive")
		}
	case *VectorConstraints:
		b.finalizeVector(c)
	case *TextConstraints:
		if c.MinLength > c.MaxLength {
			b.fail("minLength %d > maxLength %d", c.MinLength, c.MaxLength)
		}
	case *ListConstraints:
		if c.MinLength > c.MaxLength {
			b.fail("minLength %d > maxLength %d", c.MinLength, c.MaxLength)
		}
	case *BinaryConstraints:
		if c.MinLength > c.MaxLength {
			b.fail("minLength %d > maxLength %d", c.MinLength, c.MaxLength)
		}
	case *ChoiceConstraints:
		if len(c.Options) == 0 {
			b.fail("no options")
		}
	case *WeightedConstraints:
		b.finalizeWeighted(c)
	case *BigIntConstraints:
		if c.Min == nil || c.Max == nil {
			b.fail("min and max are required")
		} else if c.Min.Cmp(c.Max) > 0 {
			b.fail("min %s > max %s", c.Min, c.Max)
		}
	case *ImageConstraints:
		if c.Width <= 0 || c.Height <= 0 {
			b.fail("invalid image size %dx%d", c.Width, c.Height)
		}
		if c.Format != ImageGray && c.Format != ImageRGBA {
			b.fail("unknown image format %q", c.Format)
		}
	}
	switch p.Type {
	case TypeRamp:
		b.finalizeRamp()
	case TypeXY:
		if d := p.Default; d != nil {
			if vals, ok := mathutil.ToFloats(d); !ok || len(vals) != 2 {
				b.fail("default must have 2 components")
			}
		}
	}
}

func (b *Builder) finalizeVector(c *VectorConstraints) {
	if c.Size < 1 {
		b.fail("vector size must be >= 1")
		return
	}
	var ok bool
	if c.Min, ok = broadcast(b.min, c.Min, c.Size); !ok {
		b.fail("min needs 1 or %d components", c.Size)
	}
	if c.Max, ok = broadcast(b.max, c.Max, c.Size); !ok {
		b.fail("max needs 1 or %d components", c.Size)
	}
	if c.Step, ok = broadcast(b.step, c.Step, c.Size); !ok {
		b.fail("step needs 1 or %d components", c.Size)
	}
	for i := 0; i < c.Size && len(b.errs) == 0; i++ {
		if c.Min[i] > c.Max[i] {
			b.fail("component %d: min %v > max %v", i, c.Min[i], c.Max[i])
		}
	}
	if len(c.Labels) == 0 {
		if c.Size > len(defaultLabels) {
			b.fail("labels required for vector size %d", c.Size)
		} else {
			c.Labels = append([]string(nil), defaultLabels[:c.Size]...)
		}
	} else if len(c.Labels) != c.Size {
		b.fail("expected %d labels, got %d", c.Size, len(c.Labels))
	}
	if d := b.param.Default; d != nil {
		vals, ok := mathutil.ToFloats(d)
		if !ok || len(vals) != c.Size {
			b.fail("default must have %d components", c.Size)
		}
	}
}

func broadcast(given, fallback []float64, size int) ([]float64, bool) {
	src := given
	if len(src) == 0 {
		src = fallback
	}
	switch len(src) {
	case size:
		return append([]float64(nil), src...), true
	case 1:
		out := make([]float64, size)
		for i := range out {
			out[i] = src[0]
		}
		return out, true
	}
	return nil, false
}
