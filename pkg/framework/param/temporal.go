package param

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/justyntemme/genart-go/pkg/mathutil"
	"github.com/justyntemme/genart-go/pkg/random"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:\d{2})?$`)
	timePattern     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
}

type dateImpl struct {
	withTime bool
}

func (d dateImpl) Validate(_ *Param, v any) bool {
	_, ok := d.toTime(v)
	return ok
}

func (d dateImpl) Coerce(_ *Param, v any) any {
	t, _ := d.toTime(v)
	return t
}

func (d dateImpl) toTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), !x.IsZero()
	case string:
		if d.withTime {
			return parseDateTime(x)
		}
		if !datePattern.MatchString(x) {
			return time.Time{}, false
		}
		t, err := time.Parse(dateLayout, x)
		return t, err == nil
	}
	ms, ok := mathutil.ToFloat(v)
	if !ok || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}

func parseDateTime(s string) (time.Time, bool) {
	if !dateTimePattern.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

type timeImpl struct{}

func (timeImpl) Validate(_ *Param, v any) bool {
	_, ok := toClock(v)
	return ok
}

func (timeImpl) Coerce(_ *Param, v any) any {
	c, _ := toClock(v)
	return c
}

func (timeImpl) Randomize(_ *Param, rnd random.Source) any {
	h := int(math.Floor(rnd() * 24))
	m := int(math.Floor(rnd() * 60))
	s := int(math.Floor(rnd() * 60))
	return [3]int{h, m, s}
}

func toClock(v any) ([3]int, bool) {
	var out [3]int
	switch x := v.(type) {
	case [3]int:
		out = x
	case string:
		if !timePattern.MatchString(x) {
			return out, false
		}
		for i, part := range strings.Split(x, ":") {
			n, err := strconv.Atoi(part)
			if err != nil {
				return out, false
			}
			out[i] = n
		}
	default:
		vals, ok := mathutil.ToFloats(v)
		if !ok || len(vals) != 3 {
			return out, false
		}
		for i, f := range vals {
			if f != math.Trunc(f) {
				return out, false
			}
			out[i] = int(f)
		}
	}
	if out[0] < 0 || out[0] > 23 || out[1] < 0 || out[1] > 59 || out[2] < 0 || out[2] > 59 {
		return out, false
	}
	return out, true
}
