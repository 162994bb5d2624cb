package genart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/justyntemme/genart-go/pkg/framework/config"
	"github.com/justyntemme/genart-go/pkg/framework/debug"
	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/message"
	"github.com/justyntemme/genart-go/pkg/random"
	"github.com/justyntemme/genart-go/pkg/timing"
)

const testSeed = "0123456789abcdef0123456789abcdef"

// newTestAPI returns an API with recorders attached to the local
// listeners and the parent endpoint.
func newTestAPI(t *testing.T, opts ...Option) (*API, *message.Recorder, *message.Recorder) {
	t.Helper()
	a := New(append([]Option{WithID("test"), WithLogger(debug.Discard())}, opts...)...)
	self, parent := &message.Recorder{}, &message.Recorder{}
	a.Bus().Subscribe(self.Listen)
	a.Bus().SetParent(parent)
	return a, self, parent
}

// newMockAdapter returns an adapter with a fixed seed. Expectations added
// by setup take precedence over the catch-all UpdateParam returning no
// override.
func newMockAdapter(t *testing.T, setup ...func(ad *MockAdapter)) *MockAdapter {
	t.Helper()
	ctrl := gomock.NewController(t)
	ad := NewMockAdapter(ctrl)
	for _, fn := range setup {
		fn(ad)
	}
	prng, err := random.NewSFC32(testSeed)
	require.NoError(t, err)
	ad.EXPECT().PRNG().Return(prng).AnyTimes()
	ad.EXPECT().Mode().Return(ModePlay).AnyTimes()
	ad.EXPECT().Screen().Return(Screen{Width: 800, Height: 600, DPR: 2}).AnyTimes()
	ad.EXPECT().UpdateParam(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	return ad
}

func TestNewIdentity(t *testing.T) {
	a := New(WithLogger(debug.Discard()))
	require.Len(t, a.ID(), 36)
	require.Equal(t, a.ID(), a.Bus().ID())

	cfg := config.Default()
	cfg.APIID = "from-env"
	a = New(WithConfig(cfg), WithLogger(debug.Discard()))
	require.Equal(t, "from-env", a.ID())

	a = New(WithConfig(cfg), WithID("explicit"), WithLogger(debug.Discard()))
	require.Equal(t, "explicit", a.ID())
}

func TestNewDefaults(t *testing.T) {
	a, _, _ := newTestAPI(t)
	require.Equal(t, StateInit, a.State())
	require.Nil(t, a.ParamSpecs())
	require.Nil(t, a.Adapter())
	require.Equal(t, message.ScopeAll, a.notify)
	require.NotNil(t, a.PRNG())
	require.True(t, a.Types().Has("range"))
}

func TestInvalidNotifyFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Notify = "everyone"
	a := New(WithConfig(cfg), WithLogger(debug.Discard()))
	require.Equal(t, message.ScopeAll, a.notify)
}

func TestReadyNeedsAllThree(t *testing.T) {
	orders := map[string][]string{
		"adapter last": {"time", "update", "adapter"},
		"time last":    {"adapter", "update", "time"},
		"update last":  {"adapter", "time", "update"},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			a, self, _ := newTestAPI(t)
			ad := newMockAdapter(t)
			for i, step := range order {
				require.Equal(t, StateInit, a.State(), "before step %d", i)
				switch step {
				case "adapter":
					a.SetAdapter(ad)
				case "time":
					a.SetTimeProvider(timing.NewManual(16))
				case "update":
					a.SetUpdate(func(float64, int) bool { return true })
				}
			}
			require.Equal(t, StateReady, a.State())

			changes := self.Of(message.TypeStateChange)
			require.Len(t, changes, 1)
			require.Equal(t, string(StateReady), changes[0].State)
		})
	}
}

func readyAPI(t *testing.T, update UpdateFunc) (*API, *timing.Manual, *message.Recorder) {
	t.Helper()
	a, self, _ := newTestAPI(t)
	ad := newMockAdapter(t)
	clock := timing.NewManual(16)
	a.SetAdapter(ad)
	a.SetTimeProvider(clock)
	a.SetUpdate(update)
	require.Equal(t, StateReady, a.State())
	self.Reset()
	return a, clock, self
}

func TestStartIllegal(t *testing.T) {
	a, self, _ := newTestAPI(t)
	err := a.Start()
	require.Error(t, err)
	require.Equal(t, apperrors.CodeIllegalState, apperrors.CodeOf(err))
	require.ErrorIs(t, err, apperrors.ErrIllegalState)
	require.Equal(t, StateInit, a.State())
	require.Zero(t, self.Len())

	require.Error(t, a.Resume())
}

func TestFrameLoop(t *testing.T) {
	var frames []int
	var times []float64
	a, clock, self := readyAPI(t, func(tm float64, frame int) bool {
		frames = append(frames, frame)
		times = append(times, tm)
		return frame < 3
	})

	require.NoError(t, a.Start())
	require.Equal(t, StatePlay, a.State())
	for clock.Pending() > 0 {
		clock.Advance()
	}
	require.Equal(t, []int{1, 2, 3}, frames)
	require.Equal(t, []float64{16, 32, 48}, times)
	require.Equal(t, StateStop, a.State())

	var states []string
	for _, m := range self.Of(message.TypeStateChange) {
		states = append(states, m.State)
	}
	require.Equal(t, []string{"play", "stop"}, states)
}

func TestStopDropsFrames(t *testing.T) {
	calls := 0
	a, clock, _ := readyAPI(t, func(float64, int) bool {
		calls++
		return true
	})

	require.NoError(t, a.Start())
	clock.Advance()
	require.Equal(t, 1, calls)

	a.Stop()
	a.Stop()
	require.Equal(t, StateStop, a.State())
	clock.Advance()
	require.Equal(t, 1, calls)
	require.Zero(t, clock.Pending())
}

func TestResumeKeepsClock(t *testing.T) {
	var last float64
	a, clock, _ := readyAPI(t, func(tm float64, _ int) bool {
		last = tm
		return true
	})

	require.NoError(t, a.Start())
	clock.Advance()
	clock.Advance()
	a.Stop()
	require.NoError(t, a.Resume())
	clock.Advance()
	require.Equal(t, 48.0, last)

	a.Stop()
	require.NoError(t, a.Start())
	clock.Advance()
	require.Equal(t, 16.0, last)
}

func TestStaleLoopIsDropped(t *testing.T) {
	calls := 0
	a, clock, _ := readyAPI(t, func(float64, int) bool {
		calls++
		return true
	})

	require.NoError(t, a.Start())
	a.Stop()
	require.NoError(t, a.Resume())
	require.Equal(t, 2, clock.Pending())
	clock.Advance()
	require.Equal(t, 1, calls)
	require.Equal(t, 1, clock.Pending())
}

func TestWaitForAdapter(t *testing.T) {
	cfg := config.Default()
	cfg.PollInterval = time.Millisecond
	a, _, _ := newTestAPI(t, WithConfig(cfg))
	ad := newMockAdapter(t)

	go func() {
		time.Sleep(5 * time.Millisecond)
		a.SetAdapter(ad)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := a.WaitForAdapter(ctx)
	require.NoError(t, err)
	require.Same(t, ad, got)
}

func TestWaitForTimeProviderCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.PollInterval = time.Millisecond
	a, _, _ := newTestAPI(t, WithConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := a.WaitForTimeProvider(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPRNGFallback(t *testing.T) {
	a, _, _ := newTestAPI(t)
	require.Same(t, a.fallback, a.PRNG())

	ad := newMockAdapter(t)
	a.SetAdapter(ad)
	require.Equal(t, testSeed, a.PRNG().Seed())
	v := a.Random()()
	require.GreaterOrEqual(t, v, 0.0)
	require.Less(t, v, 1.0)
}
