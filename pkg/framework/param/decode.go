package param

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/mathutil"
)

// declaration is the loosely typed shape of a param read from JSON or an
// editor message.
type declaration struct {
	Type      string    `mapstructure:"type"`
	Name      string    `mapstructure:"name"`
	Desc      string    `mapstructure:"desc"`
	Doc       string    `mapstructure:"doc"`
	Group     string    `mapstructure:"group"`
	Order     int       `mapstructure:"order"`
	Update    string    `mapstructure:"update"`
	Edit      string    `mapstructure:"edit"`
	Randomize *bool     `mapstructure:"randomize"`
	Widget    string    `mapstructure:"widget"`
	Default   any       `mapstructure:"default"`
	Value     any       `mapstructure:"value"`
	Min       any       `mapstructure:"min"`
	Max       any       `mapstructure:"max"`
	Step      any       `mapstructure:"step"`
	Options   []any     `mapstructure:"options"`
	Size      int       `mapstructure:"size"`
	Labels    []string  `mapstructure:"labels"`
	MinLength *int      `mapstructure:"minLength"`
	MaxLength *int      `mapstructure:"maxLength"`
	Match     string    `mapstructure:"match"`
	Stops     []float64 `mapstructure:"stops"`
	Mode      string    `mapstructure:"mode"`
	Width     int       `mapstructure:"width"`
	Height    int       `mapstructure:"height"`
	Format    string    `mapstructure:"format"`
}

func decodeDeclaration(raw map[string]any) (*declaration, error) {
	var d declaration
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return &d, nil
}

// FromMap decodes a declaration and builds it through the matching
// constructor, so decoded params get the same structural checks as
// declared ones. Unknown types get a generic declaration and are resolved
// when the set is activated.
func FromMap(id string, raw map[string]any) (*Param, error) {
	d, err := decodeDeclaration(raw)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDeclarationInvalid, fmt.Sprintf("decode param %q", id), err)
	}
	if d.Type == "" {
		return nil, apperrors.WithMetadata(apperrors.CodeDeclarationInvalid,
			fmt.Sprintf("param %q: missing type", id), map[string]string{"param": id})
	}
	name := d.Name
	if name == "" {
		name = id
	}

	var b *Builder
	switch d.Type {
	case TypeRange:
		b = Range(id, name, defaultRange.Min, defaultRange.Max)
	case TypeChoice:
		opts, err := choiceOptions(d.Options)
		if err != nil {
			return nil, declarationError(id, err)
		}
		b = Choice(id, name, opts...)
	case TypeWeighted:
		opts, err := weightedOptions(d.Options)
		if err != nil {
			return nil, declarationError(id, err)
		}
		b = Weighted(id, name, opts...)
	case TypeVector:
		b = Vector(id, name, d.Size)
		if len(d.Labels) > 0 {
			b.Labels(d.Labels...)
		}
	case TypeRamp:
		b = Ramp(id, name, d.Stops...)
		if d.Mode != "" {
			b.Mode(d.Mode)
		}
	case TypeBigInt:
		min, ok := bigOrNil(d.Min)
		if !ok {
			return nil, declarationError(id, fmt.Errorf("invalid min %v", d.Min))
		}
		max, ok := bigOrNil(d.Max)
		if !ok {
			return nil, declarationError(id, fmt.Errorf("invalid max %v", d.Max))
		}
		b = BigInt(id, name, min, max)
	case TypeImage:
		b = Image(id, name, d.Width, d.Height, ImageFormat(d.Format))
	case TypeToggle:
		b = Toggle(id, name)
	case TypeColor:
		b = Color(id, name)
	case TypeText:
		b = Text(id, name)
	case TypeNumList:
		b = NumList(id, name)
	case TypeStrList:
		b = StrList(id, name)
	case TypeXY:
		b = XY(id, name)
	case TypeDate:
		b = Date(id, name)
	case TypeDateTime:
		b = DateTime(id, name)
	case TypeTime:
		b = Time(id, name)
	case TypeBinary:
		b = Binary(id, name)
	default:
		b = New(d.Type, id, name)
	}

	if d.Type == TypeRange || d.Type == TypeVector {
		for _, bound := range []struct {
			raw any
			set func(...float64) *Builder
		}{{d.Min, b.Min}, {d.Max, b.Max}, {d.Step, b.Step}} {
			if bound.raw == nil {
				continue
			}
			vals, ok := scalarOrList(bound.raw)
			if !ok {
				return nil, declarationError(id, fmt.Errorf("invalid bound %v", bound.raw))
			}
			bound.set(vals...)
		}
	}
	if d.MinLength != nil || d.MaxLength != nil {
		lo, hi := b.lengths()
		if d.MinLength != nil {
			lo = *d.MinLength
		}
		if d.MaxLength != nil {
			hi = *d.MaxLength
		}
		b.Length(lo, hi)
	}
	if d.Match != "" {
		b.Match(d.Match)
	}

	b.Desc(d.Desc).Doc(d.Doc).Order(d.Order).Default(d.Default).Value(d.Value)
	if d.Group != "" {
		b.Group(d.Group)
	}
	if d.Update != "" {
		b.Update(UpdateMode(d.Update))
	}
	if d.Edit != "" {
		b.Edit(EditMode(d.Edit))
	}
	if d.Randomize != nil {
		b.Randomize(*d.Randomize)
	}
	if d.Widget != "" {
		b.Widget(d.Widget)
	}
	return b.Build()
}

// SetFromMap decodes a whole declaration map. Params are added in ID order.
func SetFromMap(raw map[string]map[string]any) (*Set, error) {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sb := NewSetBuilder()
	for _, id := range ids {
		p, err := FromMap(id, raw[id])
		if err != nil {
			return nil, err
		}
		sb.AddParam(p)
	}
	return sb.Build()
}

func (b *Builder) lengths() (int, int) {
	switch c := b.param.Constraints.(type) {
	case *TextConstraints:
		return c.MinLength, c.MaxLength
	case *ListConstraints:
		return c.MinLength, c.MaxLength
	case *BinaryConstraints:
		return c.MinLength, c.MaxLength
	}
	return 0, 0
}

func declarationError(id string, err error) error {
	return apperrors.Wrap(apperrors.CodeDeclarationInvalid, fmt.Sprintf("param %q", id), err)
}

func scalarOrList(v any) ([]float64, bool) {
	if f, ok := mathutil.ToFloat(v); ok {
		return []float64{f}, true
	}
	return mathutil.ToFloats(v)
}

func bigOrNil(v any) (*big.Int, bool) {
	if v == nil {
		return nil, true
	}
	return ToBigInt(v)
}

// choiceOptions accepts "value" or ["value", "label"] entries.
func choiceOptions(raw []any) ([]Option, error) {
	out := make([]Option, 0, len(raw))
	for _, r := range raw {
		switch x := r.(type) {
		case string:
			out = append(out, Option{Value: x})
		case []any:
			if len(x) == 0 || len(x) > 2 {
				return nil, fmt.Errorf("invalid option %v", x)
			}
			o := Option{}
			var ok bool
			if o.Value, ok = x[0].(string); !ok {
				return nil, fmt.Errorf("invalid option value %v", x[0])
			}
			if len(x) == 2 {
				if o.Label, ok = x[1].(string); !ok {
					return nil, fmt.Errorf("invalid option label %v", x[1])
				}
			}
			out = append(out, o)
		default:
			return nil, fmt.Errorf("invalid option %v", r)
		}
	}
	return out, nil
}

// weightedOptions accepts [weight, value] and [weight, value, label] entries.
func weightedOptions(raw []any) ([]WeightedOption, error) {
	out := make([]WeightedOption, 0, len(raw))
	for _, r := range raw {
		x, ok := r.([]any)
		if !ok || len(x) < 2 || len(x) > 3 {
			return nil, fmt.Errorf("invalid weighted option %v", r)
		}
		o := WeightedOption{}
		if o.Weight, ok = mathutil.ToFloat(x[0]); !ok {
			return nil, fmt.Errorf("invalid weight %v", x[0])
		}
		if o.Value, ok = x[1].(string); !ok {
			return nil, fmt.Errorf("invalid option value %v", x[1])
		}
		if len(x) == 3 {
			if o.Label, ok = x[2].(string); !ok {
				return nil, fmt.Errorf("invalid option label %v", x[2])
			}
		}
		out = append(out, o)
	}
	return out, nil
}
