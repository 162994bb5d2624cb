package param

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/mathutil"
)

// Format renders a value of spec's type as a compact string, the inverse
// of Parse. Ramps render their nested params as "mode:t0,v0,t1,v1".
func Format(spec *Param, v any) string {
	switch spec.Type {
	case TypeRange:
		f, _ := mathutil.ToFloat(v)
		return formatFloat(f)
	case TypeToggle:
		if b, _ := toBool(v); b {
			return "1"
		}
		return "0"
	case TypeColor:
		s, _ := v.(string)
		return strings.TrimPrefix(s, "#")
	case TypeNumList, TypeVector, TypeXY:
		vals, _ := mathutil.ToFloats(v)
		return joinFloats(vals)
	case TypeStrList:
		vals, _ := mathutil.ToStrings(v)
		return strings.Join(vals, ",")
	case TypeTime:
		c, _ := toClock(v)
		return fmt.Sprintf("%02d:%02d:%02d", c[0], c[1], c[2])
	case TypeDate:
		t, _ := dateImpl{}.toTime(v)
		return t.Format(dateLayout)
	case TypeDateTime:
		t, _ := dateImpl{withTime: true}.toTime(v)
		return t.Format(time.RFC3339Nano)
	case TypeBigInt:
		if n, ok := ToBigInt(v); ok {
			return n.String()
		}
		return ""
	case TypeBinary:
		b, _ := v.([]byte)
		return base64.StdEncoding.EncodeToString(b)
	case TypeImage:
		switch px := v.(type) {
		case []uint8:
			return base64.StdEncoding.EncodeToString(px)
		case []uint32:
			buf := make([]byte, 4*len(px))
			for i, p := range px {
				binary.BigEndian.PutUint32(buf[4*i:], p)
			}
			return base64.StdEncoding.EncodeToString(buf)
		}
		return ""
	case TypeRamp:
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
		return mode + ":" + joinFloats(stops)
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Parse decodes a string produced by Format. The result is not validated.
// Ramps parse to a map of nested key to value, the shape of an override
// update.
func Parse(spec *Param, s string) (any, error) {
	fail := func(cause error) (any, error) {
		return nil, apperrors.Wrap(apperrors.CodeParamValueInvalid,
			fmt.Sprintf("parse %s param %q from %q", spec.Type, spec.ID, s), cause)
	}
	switch spec.Type {
	case TypeRange:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail(err)
		}
		return f, nil
	case TypeToggle:
		b, ok := toBool(s)
		if !ok {
			return fail(nil)
		}
		return b, nil
	case TypeColor:
		return "#" + strings.TrimPrefix(strings.ToLower(s), "#"), nil
	case TypeChoice, TypeWeighted, TypeText:
		return s, nil
	case TypeNumList, TypeVector, TypeXY:
		vals, err := splitFloats(s)
		if err != nil {
			return fail(err)
		}
		return vals, nil
	case TypeStrList:
		if s == "" {
			return []string{}, nil
		}
		return strings.Split(s, ","), nil
	case TypeTime:
		c, ok := toClock(s)
		if !ok {
			return fail(nil)
		}
		return c, nil
	case TypeDate, TypeDateTime:
		t, ok := dateImpl{withTime: spec.Type == TypeDateTime}.toTime(s)
		if !ok {
			return fail(nil)
		}
		return t, nil
	case TypeBigInt:
		n, ok := parseBigInt(s)
		if !ok {
			return fail(nil)
		}
		return n, nil
	case TypeBinary:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fail(err)
		}
		return b, nil
	case TypeImage:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fail(err)
		}
		if c, ok := spec.Constraints.(*ImageConstraints); ok && c.Format == ImageRGBA {
			if len(b)%4 != 0 {
				return fail(fmt.Errorf("rgba payload length %d", len(b)))
			}
			px := make([]uint32, len(b)/4)
			for i := range px {
				px[i] = binary.BigEndian.Uint32(b[4*i:])
			}
			return px, nil
		}
		return b, nil
	case TypeRamp:
		mode, list, ok := strings.Cut(s, ":")
		if !ok {
			return fail(fmt.Errorf("missing mode"))
		}
		stops, err := splitFloats(list)
		if err != nil {
			return fail(err)
		}
		return map[string]any{rampKeyMode: mode, rampKeyStops: stops}, nil
	}
	return s, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, f := range vals {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ",")
}

func splitFloats(s string) ([]float64, error) {
	if s == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
