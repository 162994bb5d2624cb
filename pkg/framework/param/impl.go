package param

import (
	"github.com/justyntemme/genart-go/pkg/random"
)

// Built-in type names.
const (
	TypeRange    = "range"
	TypeChoice   = "choice"
	TypeWeighted = "weighted"
	TypeToggle   = "toggle"
	TypeColor    = "color"
	TypeText     = "text"
	TypeNumList  = "numlist"
	TypeStrList  = "strlist"
	TypeVector   = "vector"
	TypeXY       = "xy"
	TypeRamp     = "ramp"
	TypeDate     = "date"
	TypeDateTime = "datetime"
	TypeTime     = "time"
	TypeBigInt   = "bigint"
	TypeBinary   = "binary"
	TypeImage    = "image"
)

// Impl implements the behavior of one parameter type. Validate must reject
// any value unsuitable for storage and must not panic.
type Impl interface {
	Validate(spec *Param, v any) bool
}

// Coercer normalizes already validated values.
type Coercer interface {
	Coerce(spec *Param, v any) any
}

// Randomizer produces a value from a random source. Implementations must
// draw a fixed number of values per call so results are reproducible.
type Randomizer interface {
	Randomize(spec *Param, rnd random.Source) any
}

// Reader computes values on demand. When present it takes precedence over
// stored values.
type Reader interface {
	Read(spec *Param, t float64) any
}

// Composite types expose their customization surface as nested params.
type Composite interface {
	NestedParams(spec *Param) map[string]*Param
}

// CanRandomize reports whether impl supports randomization and the spec
// allows it.
func CanRandomize(impl Impl, spec *Param) bool {
	_, ok := impl.(Randomizer)
	return ok && spec.Randomize
}

// Coerce applies impl's coercion if it has one.
func Coerce(impl Impl, spec *Param, v any) any {
	if c, ok := impl.(Coercer); ok {
		return c.Coerce(spec, v)
	}
	return v
}

// FuncImpl assembles an Impl from plain functions, for ad-hoc types.
// Nil functions leave the capability out.
type FuncImpl struct {
	ValidateFunc  func(spec *Param, v any) bool
	CoerceFunc    func(spec *Param, v any) any
	RandomizeFunc func(spec *Param, rnd random.Source) any
	ReadFunc      func(spec *Param, t float64) any
}

// Validate implements Impl.
func (f FuncImpl) Validate(spec *Param, v any) bool {
	if f.ValidateFunc == nil {
		return false
	}
	return f.ValidateFunc(spec, v)
}

// Build returns an Impl exposing only the non-nil capabilities.
func (f FuncImpl) Build() Impl {
	var out Impl = f
	switch {
	case f.CoerceFunc != nil && f.RandomizeFunc != nil && f.ReadFunc != nil:
		out = struct {
			FuncImpl
			funcCoercer
			funcRandomizer
			funcReader
		}{f, funcCoercer(f.CoerceFunc), funcRandomizer(f.RandomizeFunc), funcReader(f.ReadFunc)}
	case f.CoerceFunc != nil && f.RandomizeFunc != nil:
		out = struct {
			FuncImpl
			funcCoercer
			funcRandomizer
		}{f, funcCoercer(f.CoerceFunc), funcRandomizer(f.RandomizeFunc)}
	case f.CoerceFunc != nil && f.ReadFunc != nil:
		out = struct {
			FuncImpl
			funcCoercer
			funcReader
		}{f, funcCoercer(f.CoerceFunc), funcReader(f.ReadFunc)}
	case f.RandomizeFunc != nil && f.ReadFunc != nil:
		out = struct {
			FuncImpl
			funcRandomizer
			funcReader
		}{f, funcRandomizer(f.RandomizeFunc), funcReader(f.ReadFunc)}
	case f.CoerceFunc != nil:
		out = struct {
			FuncImpl
			funcCoercer
		}{f, funcCoercer(f.CoerceFunc)}
	case f.RandomizeFunc != nil:
		out = struct {
			FuncImpl
			funcRandomizer
		}{f, funcRandomizer(f.RandomizeFunc)}
	case f.ReadFunc != nil:
		out = struct {
			FuncImpl
			funcReader
		}{f, funcReader(f.ReadFunc)}
	}
	return out
}

type funcCoercer func(spec *Param, v any) any

func (f funcCoercer) Coerce(spec *Param, v any) any { return f(spec, v) }

type funcRandomizer func(spec *Param, rnd random.Source) any

func (f funcRandomizer) Randomize(spec *Param, rnd random.Source) any { return f(spec, rnd) }

type funcReader func(spec *Param, t float64) any

func (f funcReader) Read(spec *Param, t float64) any { return f(spec, t) }
