package param

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
)

const declarationsJSON = `{
	"size": {"type": "range", "name": "Size", "min": 1, "max": 50, "step": 0.5, "default": 10},
	"shape": {"type": "choice", "options": ["circle", ["sq", "Square"]], "group": "form"},
	"palette": {"type": "weighted", "options": [[1, "mono"], [4, "warm", "Warm"]]},
	"origin": {"type": "vector", "size": 3, "min": -1, "max": [1, 2, 3], "labels": ["a", "b", "c"]},
	"title": {"type": "text", "maxLength": 8, "match": "^[A-Z]"},
	"fade": {"type": "ramp", "stops": [0, 0, 0.5, 1, 1, 0], "mode": "smooth"},
	"flag": {"type": "toggle", "randomize": false, "edit": "public", "update": "reload"},
	"count": {"type": "bigint", "min": "0", "max": "0xffffffffffffffffffff"},
	"mask": {"type": "image", "width": 4, "height": 2, "format": "gray"},
	"spiral": {"type": "spiral", "name": "Spiral"}
}`

func TestSetFromMap(t *testing.T) {
	var raw map[string]map[string]any
	if err := json.Unmarshal([]byte(declarationsJSON), &raw); err != nil {
		t.Fatal(err)
	}

	set, err := SetFromMap(raw)
	if err != nil {
		t.Fatalf("SetFromMap() error: %v", err)
	}
	if set.Len() != len(raw) {
		t.Fatalf("Len() = %d, want %d", set.Len(), len(raw))
	}
	if ids := set.IDs(); ids[0] != "count" || ids[len(ids)-1] != "title" {
		t.Errorf("IDs not sorted: %v", ids)
	}

	t.Run("range", func(t *testing.T) {
		c := set.Get("size").Constraints.(*RangeConstraints)
		if *c != (RangeConstraints{Min: 1, Max: 50, Step: 0.5}) {
			t.Errorf("constraints = %+v", c)
		}
		if set.Get("size").Name != "Size" {
			t.Errorf("Name = %q", set.Get("size").Name)
		}
	})

	t.Run("choice", func(t *testing.T) {
		p := set.Get("shape")
		want := []Option{{Value: "circle"}, {Value: "sq", Label: "Square"}}
		if !reflect.DeepEqual(p.Constraints.(*ChoiceConstraints).Options, want) {
			t.Errorf("options = %+v", p.Constraints)
		}
		if p.Group != "form" || p.Name != "shape" {
			t.Errorf("group %q name %q", p.Group, p.Name)
		}
	})

	t.Run("weighted", func(t *testing.T) {
		c := set.Get("palette").Constraints.(*WeightedConstraints)
		if c.Options[0].Value != "warm" || c.Options[0].Label != "Warm" || c.Total != 5 {
			t.Errorf("constraints = %+v", c)
		}
	})

	t.Run("vector", func(t *testing.T) {
		c := set.Get("origin").Constraints.(*VectorConstraints)
		if !reflect.DeepEqual(c.Min, []float64{-1, -1, -1}) || !reflect.DeepEqual(c.Max, []float64{1, 2, 3}) {
			t.Errorf("bounds = %v %v", c.Min, c.Max)
		}
		if !reflect.DeepEqual(c.Labels, []string{"a", "b", "c"}) {
			t.Errorf("labels = %v", c.Labels)
		}
	})

	t.Run("text", func(t *testing.T) {
		c := set.Get("title").Constraints.(*TextConstraints)
		if c.MinLength != 0 || c.MaxLength != 8 || c.Match != "^[A-Z]" {
			t.Errorf("constraints = %+v", c)
		}
		if (textImpl{}).Validate(set.Get("title"), "lower") {
			t.Error("pattern not applied")
		}
	})

	t.Run("ramp", func(t *testing.T) {
		mode, _ := set.Get("fade").Nested("mode")
		if mode.Default != RampSmooth {
			t.Errorf("mode = %v", mode.Default)
		}
	})

	t.Run("modes", func(t *testing.T) {
		p := set.Get("flag")
		if p.Randomize || p.Edit != EditPublic || p.Update != UpdateReload {
			t.Errorf("flag = %+v", p)
		}
	})

	t.Run("bigint", func(t *testing.T) {
		c := set.Get("count").Constraints.(*BigIntConstraints)
		if c.Max.BitLen() != 80 {
			t.Errorf("max = %v", c.Max)
		}
	})

	t.Run("custom type", func(t *testing.T) {
		p := set.Get("spiral")
		if p.Type != "spiral" || p.Constraints != nil {
			t.Errorf("spiral = %+v", p)
		}
	})
}

func TestFromMapErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"missing type", map[string]any{"name": "x"}},
		{"bad option", map[string]any{"type": "choice", "options": []any{1.0}}},
		{"bad weighted option", map[string]any{"type": "weighted", "options": []any{"a"}}},
		{"bad bound", map[string]any{"type": "range", "min": "low"}},
		{"structural", map[string]any{"type": "vector", "size": 0}},
		{"bad bigint", map[string]any{"type": "bigint", "min": "x", "max": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap("p", tt.raw)
			if !errors.Is(err, apperrors.ErrDeclaration) {
				t.Errorf("FromMap() error = %v, want declaration error", err)
			}
		})
	}
}
