package param

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/justyntemme/genart-go/pkg/random"
)

// BigIntConstraints bounds a bigint param. Both bounds are inclusive.
type BigIntConstraints struct {
	Min *big.Int `json:"min"`
	Max *big.Int `json:"max"`
}

type bigIntImpl struct{}

func (bigIntImpl) Validate(spec *Param, v any) bool {
	n, ok := ToBigInt(v)
	if !ok {
		return false
	}
	c, ok := spec.Constraints.(*BigIntConstraints)
	if !ok || c == nil {
		return true
	}
	if c.Min != nil && n.Cmp(c.Min) < 0 {
		return false
	}
	if c.Max != nil && n.Cmp(c.Max) > 0 {
		return false
	}
	return true
}

func (bigIntImpl) Coerce(_ *Param, v any) any {
	n, _ := ToBigInt(v)
	return n
}

// Randomize maps a single draw onto [min, max] with integer arithmetic so
// ranges wider than 2^53 keep full precision.
func (bigIntImpl) Randomize(spec *Param, rnd random.Source) any {
	c, ok := spec.Constraints.(*BigIntConstraints)
	if !ok || c == nil || c.Min == nil || c.Max == nil {
		return nil
	}
	k := new(big.Int).SetUint64(uint64(rnd() * (1 << 53)))
	span := new(big.Int).Sub(c.Max, c.Min)
	span.Add(span, big.NewInt(1))
	span.Mul(span, k)
	span.Rsh(span, 53)
	return span.Add(span, c.Min)
}

// ToBigInt converts big integers, integral numbers and signed decimal,
// 0x, 0o or 0b prefixed strings. The result is always a fresh value.
func ToBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return new(big.Int).Set(x), true
	case big.Int:
		return new(big.Int).Set(&x), true
	case string:
		return parseBigInt(x)
	case json.Number:
		return parseBigInt(string(x))
	case float32, float64:
		f := reflect.ValueOf(x).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, false
		}
		n, _ := big.NewFloat(f).Int(nil)
		return n, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	return nil, false
}

func parseBigInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		}
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	if neg {
		n.Neg(n)
	}
	return n, true
}
