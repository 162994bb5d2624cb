package urlparams

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
	"github.com/justyntemme/genart-go/pkg/framework/genart"
	"github.com/justyntemme/genart-go/pkg/framework/message"
	"github.com/justyntemme/genart-go/pkg/framework/param"
)

const seed = "00000000000000000000000000000abc"

func declaration(t *testing.T) *param.Set {
	t.Helper()
	set, err := param.NewSetBuilder().
		Add(param.Range("size", "Size", 0, 10).Default(1.0)).
		Add(param.Toggle("grid", "Grid").Default(false)).
		Add(param.Ramp("fade", "Fade")).
		Add(param.Color("tint", "Tint")).
		Build()
	require.NoError(t, err)
	return set
}

func TestParseQuery(t *testing.T) {
	a, err := Parse("?seed="+seed+"&mode=edit&width=640&height=480&dpr=2&collector=tz1&iteration=7", debug.Discard())
	require.NoError(t, err)
	require.Equal(t, genart.ModeEdit, a.Mode())
	require.Equal(t, genart.Screen{Width: 640, Height: 480, DPR: 2}, a.Screen())
	require.Equal(t, seed, a.PRNG().Seed())
	require.Equal(t, "tz1", a.Collector())
	require.Equal(t, 7, a.Iteration())
}

func TestParseDefaults(t *testing.T) {
	a, err := Parse("mode=fullscreen&dpr=-1", debug.Discard())
	require.NoError(t, err)
	require.Equal(t, genart.ModePlay, a.Mode())
	require.Equal(t, 1.0, a.Screen().DPR)
	require.Len(t, a.PRNG().Seed(), 32)

	_, err = Parse("seed=xyz", debug.Discard())
	require.Error(t, err)
}

func TestOverridesThroughAPI(t *testing.T) {
	ad, err := Parse("seed="+seed+"&size=7&grid=true&fade=smooth:0,1,1,0&tint=zzz", debug.Discard())
	require.NoError(t, err)

	api := genart.New(genart.WithID("art"), genart.WithLogger(debug.Discard()))
	api.SetAdapter(ad)
	_, err = api.SetParams(context.Background(), declaration(t))
	require.NoError(t, err)

	specs := api.ParamSpecs()
	require.Equal(t, []string{"size", "grid", "fade", "tint", SeedParamID}, specs.IDs())
	require.Equal(t, 7.0, specs.Get("size").Value)
	require.Equal(t, true, specs.Get("grid").Value)
	require.Nil(t, specs.Get("tint").Value)

	mode, _ := specs.Get("fade").Nested("mode")
	stops, _ := specs.Get("fade").Nested("stops")
	require.Equal(t, "smooth", mode.Value)
	require.Equal(t, []float64{0, 1, 1, 0}, stops.Value)

	seedParam := specs.Get(SeedParamID)
	require.Equal(t, param.EditPrivate, seedParam.Edit)
	require.Equal(t, 0, seedParam.Default.(*big.Int).Cmp(big.NewInt(0xabc)))
}

func TestNestedKeyOverride(t *testing.T) {
	ad, err := Parse("seed="+seed+"&fade.mode=exp", debug.Discard())
	require.NoError(t, err)

	p := param.Ramp("fade", "Fade").MustBuild()
	ov, err := ad.UpdateParam(context.Background(), "fade", p)
	require.NoError(t, err)
	require.Equal(t, &genart.Override{Update: map[string]any{"mode": "exp"}}, ov)

	ov, err = ad.UpdateParam(context.Background(), "other", param.Range("other", "Other", 0, 1).MustBuild())
	require.NoError(t, err)
	require.Nil(t, ov)
}

func TestEncodeReproduces(t *testing.T) {
	src, err := Parse("seed="+seed+"&size=3&fade.mode=exp", debug.Discard())
	require.NoError(t, err)
	api := genart.New(genart.WithLogger(debug.Discard()))
	api.SetAdapter(src)
	_, err = api.SetParams(context.Background(), declaration(t))
	require.NoError(t, err)
	require.NoError(t, api.SetParamValue(context.Background(), "tint", "#102030", "", message.ScopeNone))

	q := src.Encode(api.ParamSpecs())
	require.Equal(t, seed, q.Get(KeySeed))
	require.Equal(t, "3", q.Get("size"))
	require.Equal(t, "exp", q.Get("fade.mode"))

	dst, err := New(q, debug.Discard())
	require.NoError(t, err)
	again := genart.New(genart.WithLogger(debug.Discard()))
	again.SetAdapter(dst)
	_, err = again.SetParams(context.Background(), declaration(t))
	require.NoError(t, err)

	for _, id := range []string{"size", "grid", "tint"} {
		want, err := api.GetParamValue(id, 0)
		require.NoError(t, err)
		got, err := again.GetParamValue(id, 0)
		require.NoError(t, err)
		require.Equal(t, want, got, id)
	}
	require.Equal(t, api.Random()(), again.Random()())
}

func TestTraitsAndCaptures(t *testing.T) {
	ad, err := Parse("", debug.Discard())
	require.NoError(t, err)
	api := genart.New(genart.WithLogger(debug.Discard()))
	api.SetAdapter(ad)

	api.SetTraits(map[string]any{"palette": "dusk"})
	api.Capture()
	require.Equal(t, map[string]any{"palette": "dusk"}, ad.Traits())
	require.Equal(t, 1, ad.Captures())
}
