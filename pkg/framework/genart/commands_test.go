package genart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/justyntemme/genart-go/pkg/framework/message"
	"github.com/justyntemme/genart-go/pkg/framework/param"
)

func TestReceiveSetParamValue(t *testing.T) {
	a, self, _ := setupValues(t)
	ctx := context.Background()

	ok, err := a.Bus().Receive(ctx, []byte(`{"type":"genart:set-param-value","apiID":"test","paramID":"size","value":4}`))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4.0, a.ParamSpecs().Get("size").Value)
	require.Len(t, self.Of(message.TypeParamChange), 1)

	ok, err = a.Bus().Receive(ctx, []byte(`{"type":"genart:set-param-value","apiID":"*","paramID":"fade","key":"mode","value":"smooth"}`))
	require.NoError(t, err)
	require.True(t, ok)
	mode, _ := a.ParamSpecs().Get("fade").Nested("mode")
	require.Equal(t, "smooth", mode.Value)

	ok, err = a.Bus().Receive(ctx, []byte(`{"type":"genart:set-param-value","apiID":"other","paramID":"size","value":5}`))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 4.0, a.ParamSpecs().Get("size").Value)
}

func TestReceiveInvalidValueIsSwallowed(t *testing.T) {
	a, self, _ := setupValues(t)
	ok, err := a.Bus().Receive(context.Background(),
		[]byte(`{"type":"genart:set-param-value","apiID":"test","paramID":"size","value":"big"}`))
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, a.ParamSpecs().Get("size").Value)
	require.Len(t, self.Of(message.TypeParamError), 1)
	require.Nil(t, self.Of(message.TypeParamError)[0].Value)
}

func TestReceiveRandomize(t *testing.T) {
	a, self, _ := setupValues(t)
	ok, err := a.Bus().Receive(context.Background(),
		[]byte(`{"type":"genart:randomize-param","apiID":"test","paramID":"size"}`))
	require.NoError(t, err)
	require.True(t, ok)

	p := a.ParamSpecs().Get("size")
	require.Equal(t, param.StateCustom, p.State)
	require.NotNil(t, p.Value)
	require.Len(t, self.Of(message.TypeParamChange), 1)
}

func TestReceiveLifecycle(t *testing.T) {
	frames := 0
	a, clock, _ := readyAPI(t, func(float64, int) bool {
		frames++
		return true
	})
	ctx := context.Background()
	send := func(typ message.Type) {
		t.Helper()
		ok := a.Bus().Dispatch(ctx, message.Message{Type: typ, APIID: "test"})
		require.True(t, ok)
	}

	send(message.TypeStart)
	require.Equal(t, StatePlay, a.State())
	clock.Advance()
	send(message.TypeStop)
	require.Equal(t, StateStop, a.State())
	send(message.TypeResume)
	require.Equal(t, StatePlay, a.State())
	clock.Advance()
	require.Equal(t, 2, frames)

	// Starting while playing fails inside the handler and is only logged.
	send(message.TypeStart)
	require.Equal(t, StatePlay, a.State())
}

type collectorAdapter struct {
	*MockAdapter
	*MockCollectorInfo
}

func TestGetInfo(t *testing.T) {
	a, self, _ := newTestAPI(t)
	collector := NewMockCollectorInfo(gomock.NewController(t))
	collector.EXPECT().Collector().Return("tz1collector").AnyTimes()
	collector.EXPECT().Iteration().Return(42).AnyTimes()
	a.SetAdapter(collectorAdapter{newMockAdapter(t), collector})

	_, err := a.SetParams(context.Background(), mustSet(t, param.Range("size", "Size", 0, 10).Default(1.0)))
	require.NoError(t, err)
	self.Reset()

	ok, err := a.Bus().Receive(context.Background(), []byte(`{"type":"genart:get-info","apiID":"test"}`))
	require.NoError(t, err)
	require.True(t, ok)

	replies := self.Of(message.TypeInfo)
	require.Len(t, replies, 1)
	info, isInfo := replies[0].Data.(Info)
	require.True(t, isInfo)
	require.Equal(t, Info{
		ID:        "test",
		Version:   Version,
		State:     StateInit,
		Mode:      ModePlay,
		Seed:      testSeed,
		Screen:    &Screen{Width: 800, Height: 600, DPR: 2},
		Collector: "tz1collector",
		Iteration: 42,
		Params:    1,
	}, info)
}

func TestInfoWithoutAdapter(t *testing.T) {
	a, _, _ := newTestAPI(t)
	info := a.Info()
	require.Equal(t, StateInit, info.State)
	require.Empty(t, info.Mode)
	require.Nil(t, info.Screen)
	require.Len(t, info.Seed, 32)
	require.Zero(t, info.Params)
}

type traitAdapter struct {
	*MockAdapter
	*MockTraitSetter
	*MockCapturer
}

func TestTraitsAndCapture(t *testing.T) {
	a, _, _ := newTestAPI(t)
	ctrl := gomock.NewController(t)
	traits := NewMockTraitSetter(ctrl)
	capturer := NewMockCapturer(ctrl)
	traits.EXPECT().SetTraits(map[string]any{"palette": "dusk"})
	capturer.EXPECT().Capture()

	a.SetTraits(map[string]any{"ignored": true})
	a.Capture()

	a.SetAdapter(traitAdapter{newMockAdapter(t), traits, capturer})
	a.SetTraits(map[string]any{"palette": "dusk"})
	a.Capture()
}
