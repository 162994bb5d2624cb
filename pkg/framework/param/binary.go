package param

import (
	"math"

	"github.com/justyntemme/genart-go/pkg/mathutil"
)

// ImageFormat selects the pixel layout of an image param.
type ImageFormat string

const (
	// ImageGray stores one byte per pixel.
	ImageGray ImageFormat = "gray"
	// ImageRGBA stores one packed 0xRRGGBBAA word per pixel.
	ImageRGBA ImageFormat = "rgba"
)

// BinaryConstraints bounds the byte length of a binary param.
type BinaryConstraints struct {
	MinLength int `json:"minLength"`
	MaxLength int `json:"maxLength"`
}

// ImageConstraints describes the pixel buffer of an image param.
type ImageConstraints struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Format ImageFormat `json:"format"`
}

type binaryImpl struct{}

func (binaryImpl) Validate(spec *Param, v any) bool {
	b, ok := v.([]byte)
	if !ok {
		return false
	}
	c, ok := spec.Constraints.(*BinaryConstraints)
	if !ok || c == nil {
		return true
	}
	return len(b) >= c.MinLength && len(b) <= c.MaxLength
}

type imageImpl struct{}

func (imageImpl) Validate(spec *Param, v any) bool {
	_, ok := toPixels(spec, v)
	return ok
}

// Coerce normalizes decoded pixel arrays to the typed buffer of the format.
func (imageImpl) Coerce(spec *Param, v any) any {
	px, _ := toPixels(spec, v)
	return px
}

func toPixels(spec *Param, v any) (any, bool) {
	c, ok := spec.Constraints.(*ImageConstraints)
	if !ok || c == nil {
		return nil, false
	}
	n := c.Width * c.Height
	switch x := v.(type) {
	case []uint8:
		if c.Format != ImageGray || len(x) != n {
			return nil, false
		}
		return x, true
	case []uint32:
		if c.Format != ImageRGBA || len(x) != n {
			return nil, false
		}
		return x, true
	}
	vals, ok := mathutil.ToFloats(v)
	if !ok || len(vals) != n {
		return nil, false
	}
	limit := float64(math.MaxUint8)
	if c.Format == ImageRGBA {
		limit = math.MaxUint32
	}
	for _, f := range vals {
		if f < 0 || f > limit || f != math.Trunc(f) {
			return nil, false
		}
	}
	switch c.Format {
	case ImageGray:
		out := make([]uint8, n)
		for i, f := range vals {
			out[i] = uint8(f)
		}
		return out, true
	case ImageRGBA:
		out := make([]uint32, n)
		for i, f := range vals {
			out[i] = uint32(f)
		}
		return out, true
	}
	return nil, false
}
