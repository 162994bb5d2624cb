package param

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/justyntemme/genart-go/pkg/mathutil"
	"github.com/justyntemme/genart-go/pkg/random"
)

var colorPattern = regexp.MustCompile(`^#?[0-9a-f]{6,8}$`)

// TextConstraints bounds a text param.
type TextConstraints struct {
	MinLength int    `json:"minLength"`
	MaxLength int    `json:"maxLength"`
	Match     string `json:"match,omitempty"`

	re *regexp.Regexp
}

// ListConstraints bounds numlist and strlist params. Stride, when set,
// requires the length to be a multiple of it.
type ListConstraints struct {
	MinLength int    `json:"minLength"`
	MaxLength int    `json:"maxLength"`
	Stride    int    `json:"stride,omitempty"`
	Match     string `json:"match,omitempty"`

	re *regexp.Regexp
}

// pattern returns the compiled match expression. ok is false when the
// expression does not compile.
func pattern(match string, re *regexp.Regexp) (*regexp.Regexp, bool) {
	if re != nil || match == "" {
		return re, true
	}
	re, err := regexp.Compile(match)
	if err != nil {
		return nil, false
	}
	return re, true
}

type colorImpl struct{}

func (colorImpl) Validate(_ *Param, v any) bool {
	s, ok := v.(string)
	return ok && colorPattern.MatchString(s)
}

func (colorImpl) Coerce(_ *Param, v any) any {
	s, _ := v.(string)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) > 7 {
		s = s[:7]
	}
	return s
}

func (colorImpl) Randomize(_ *Param, rnd random.Source) any {
	return fmt.Sprintf("#%06x", int(rnd()*(1<<24))&0xffffff)
}

type textImpl struct{}

func (textImpl) Validate(spec *Param, v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	c, ok := spec.Constraints.(*TextConstraints)
	if !ok || c == nil {
		return true
	}
	n := utf8.RuneCountInString(s)
	if n < c.MinLength || n > c.MaxLength {
		return false
	}
	re, ok := pattern(c.Match, c.re)
	if !ok {
		return false
	}
	return re == nil || re.MatchString(s)
}

// listImpl holds the length checks shared by numlist and strlist.
type listImpl struct{}

func (listImpl) validate(spec *Param, v any, text bool) bool {
	var n int
	var items []string
	if text {
		s, ok := mathutil.ToStrings(v)
		if !ok {
			return false
		}
		n, items = len(s), s
	} else {
		f, ok := mathutil.ToFloats(v)
		if !ok {
			return false
		}
		n = len(f)
	}
	c, ok := spec.Constraints.(*ListConstraints)
	if !ok || c == nil {
		return true
	}
	if n < c.MinLength || n > c.MaxLength {
		return false
	}
	if c.Stride > 1 && n%c.Stride != 0 {
		return false
	}
	if !text {
		return true
	}
	re, ok := pattern(c.Match, c.re)
	if !ok {
		return false
	}
	if re != nil {
		for _, s := range items {
			if !re.MatchString(s) {
				return false
			}
		}
	}
	return true
}

type numListImpl struct{ listImpl }

func (i numListImpl) Validate(spec *Param, v any) bool {
	return i.validate(spec, v, false)
}

func (numListImpl) Coerce(_ *Param, v any) any {
	f, _ := mathutil.ToFloats(v)
	return append(make([]float64, 0, len(f)), f...)
}

type strListImpl struct{ listImpl }

func (i strListImpl) Validate(spec *Param, v any) bool {
	return i.validate(spec, v, true)
}

func (strListImpl) Coerce(_ *Param, v any) any {
	s, _ := mathutil.ToStrings(v)
	return append(make([]string, 0, len(s)), s...)
}
