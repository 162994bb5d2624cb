// Package param provides the typed parameter declarations artworks expose to
// platforms and editors.
package param

import (
	"math/big"
	"time"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
)

// State tags where a parameter's current value came from.
type State string

const (
	StateVoid    State = "void"
	StateDefault State = "default"
	StateRandom  State = "random"
	StateDynamic State = "dynamic"
	StateCustom  State = "custom"
)

// UpdateMode tells hosts how to react to a changed value.
type UpdateMode string

const (
	UpdateReload UpdateMode = "reload"
	UpdateEvent  UpdateMode = "event"
)

// EditMode controls who may customize a parameter.
type EditMode string

const (
	EditPrivate   EditMode = "private"
	EditProtected EditMode = "protected"
	EditPublic    EditMode = "public"
)

// DefaultGroup is the group of parameters declared without one.
const DefaultGroup = "main"

// Param is the declarative description of one control surface.
type Param struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Desc      string     `json:"desc"`
	Doc       string     `json:"doc,omitempty"`
	Group     string     `json:"group"`
	Order     int        `json:"order"`
	Update    UpdateMode `json:"update"`
	Edit      EditMode   `json:"edit"`
	Randomize bool       `json:"randomize"`
	Widget    string     `json:"widget,omitempty"`
	Default   any        `json:"default,omitempty"`
	Value     any        `json:"value,omitempty"`
	State     State      `json:"state"`

	// Constraints holds the type specific settings, e.g. *RangeConstraints.
	Constraints any `json:"constraints,omitempty"`

	// Params holds the nested sub-parameters of composite types.
	Params map[string]*Param `json:"params,omitempty"`
}

// Current returns the stored value, falling back to the default.
func (p *Param) Current() any {
	if p.Value != nil {
		return p.Value
	}
	return p.Default
}

// Nested returns the named sub-parameter.
func (p *Param) Nested(key string) (*Param, bool) {
	if p.Params == nil {
		return nil, false
	}
	n, ok := p.Params[key]
	return n, ok
}

// Clone returns a deep copy suitable for handing to listeners.
func (p *Param) Clone() *Param {
	if p == nil {
		return nil
	}
	c := *p
	c.Default = cloneValue(p.Default)
	c.Value = cloneValue(p.Value)
	c.Constraints = cloneConstraints(p.Constraints)
	if p.Params != nil {
		c.Params = make(map[string]*Param, len(p.Params))
		for k, n := range p.Params {
			c.Params[k] = n.Clone()
		}
	}
	return &c
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...)
	case []string:
		return append([]string(nil), x...)
	case []byte:
		return append([]byte(nil), x...)
	case []uint32:
		return append([]uint32(nil), x...)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case *big.Int:
		return cloneBig(x)
	case time.Time, [3]int:
		return x
	}
	return v
}

func cloneConstraints(c any) any {
	switch x := c.(type) {
	case *RangeConstraints:
		if x == nil {
			return x
		}
		y := *x
		return &y
	case *ChoiceConstraints:
		if x == nil {
			return x
		}
		return &ChoiceConstraints{Options: append([]Option(nil), x.Options...)}
	case *WeightedConstraints:
		if x == nil {
			return x
		}
		return &WeightedConstraints{Options: append([]WeightedOption(nil), x.Options...), Total: x.Total}
	case *TextConstraints:
		if x == nil {
			return x
		}
		y := *x
		return &y
	case *ListConstraints:
		if x == nil {
			return x
		}
		y := *x
		return &y
	case *VectorConstraints:
		if x == nil {
			return x
		}
		return &VectorConstraints{
			Size:   x.Size,
			Min:    append([]float64(nil), x.Min...),
			Max:    append([]float64(nil), x.Max...),
			Step:   append([]float64(nil), x.Step...),
			Labels: append([]string(nil), x.Labels...),
		}
	case *BigIntConstraints:
		if x == nil {
			return x
		}
		// Either bound may be open.
		return &BigIntConstraints{Min: cloneBig(x.Min), Max: cloneBig(x.Max)}
	case *BinaryConstraints:
		if x == nil {
			return x
		}
		y := *x
		return &y
	case *ImageConstraints:
		if x == nil {
			return x
		}
		y := *x
		return &y
	}
	return c
}

func cloneBig(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

var illegalIDs = map[string]bool{
	"__proto__":   true,
	"prototype":   true,
	"constructor": true,
}

// ValidateID rejects empty IDs and names hosts reserve for object internals.
func ValidateID(id string) error {
	if id == "" {
		return apperrors.New(apperrors.CodeParamIDIllegal, "empty param id")
	}
	if illegalIDs[id] {
		return apperrors.WithMetadata(apperrors.CodeParamIDIllegal,
			"illegal param id: "+id, map[string]string{"param": id})
	}
	return nil
}
