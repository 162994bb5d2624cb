package mathutil

import (
	"encoding/json"
	"math"
	"reflect"
)

// ToFloat converts any Go numeric kind (and json.Number) to float64.
// NaN is rejected.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether v is a usable number.
func IsNumeric(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// ToFloats converts numeric slices, including []any of numbers, to []float64.
func ToFloats(v any) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		for _, f := range x {
			if math.IsNaN(f) {
				return nil, false
			}
		}
		return x, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]float64, rv.Len())
	for i := range out {
		f, ok := ToFloat(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// ToStrings converts []string or []any of strings to []string.
func ToStrings(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return x, true
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// Equiv reports deep value equality where numbers of different Go
// kinds compare by value.
func Equiv(a, b any) bool {
	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}
	if sa, ok := ToFloats(a); ok {
		sb, ok := ToFloats(b)
		if !ok || len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if sa[i] != sb[i] {
				return false
			}
		}
		return true
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() {
		switch ra.Kind() {
		case reflect.Slice, reflect.Array:
			if rb.Kind() != reflect.Slice && rb.Kind() != reflect.Array {
				return false
			}
			if ra.Len() != rb.Len() {
				return false
			}
			for i := 0; i < ra.Len(); i++ {
				if !Equiv(ra.Index(i).Interface(), rb.Index(i).Interface()) {
					return false
				}
			}
			return true
		case reflect.Map:
			if rb.Kind() != reflect.Map || ra.Type().Key() != rb.Type().Key() || ra.Len() != rb.Len() {
				return false
			}
			for _, k := range ra.MapKeys() {
				bv := rb.MapIndex(k)
				if !bv.IsValid() || !Equiv(ra.MapIndex(k).Interface(), bv.Interface()) {
					return false
				}
			}
			return true
		}
	}
	return reflect.DeepEqual(a, b)
}
