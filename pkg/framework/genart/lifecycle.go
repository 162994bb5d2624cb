package genart

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/message"
)

// State is the coordinator lifecycle state.
type State string

const (
	StateInit  State = "init"
	StateReady State = "ready"
	StatePlay  State = "play"
	StateStop  State = "stop"
	StateError State = "error"
)

// TimeProvider drives the frame loop.
type TimeProvider interface {
	// Start resets the clock.
	Start()
	// Now returns the current time and frame.
	Now() (float64, int)
	// Next schedules fn for the next frame.
	Next(fn func(t float64, frame int))
}

// UpdateFunc renders one frame. Returning false stops the loop.
type UpdateFunc func(t float64, frame int) bool

// State returns the current lifecycle state.
func (a *API) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// SetAdapter attaches the platform adapter.
func (a *API) SetAdapter(adapter Adapter) {
	a.mu.Lock()
	a.adapter = adapter
	a.mu.Unlock()
	a.checkReady()
}

// SetTimeProvider attaches the frame clock.
func (a *API) SetTimeProvider(tp TimeProvider) {
	a.mu.Lock()
	a.timing = tp
	a.mu.Unlock()
	a.checkReady()
}

// SetUpdate sets the per-frame render function.
func (a *API) SetUpdate(fn UpdateFunc) {
	a.mu.Lock()
	a.update = fn
	a.mu.Unlock()
	a.checkReady()
}

// checkReady moves init to ready once adapter, clock and update function
// are all present.
func (a *API) checkReady() {
	a.mu.Lock()
	ready := a.state == StateInit && a.adapter != nil && a.timing != nil && a.update != nil
	a.mu.Unlock()
	if ready {
		a.transition(StateReady, "")
	}
}

// transition sets the state and broadcasts the change.
func (a *API) transition(s State, info string) {
	a.mu.Lock()
	prev := a.state
	a.state = s
	a.mu.Unlock()

	a.log.Debug("state %s -> %s", prev, s)
	a.bus.Publish(message.Message{
		Type:  message.TypeStateChange,
		State: string(s),
		Info:  info,
	}, a.notify)
}

// fail moves to the error state carrying err's message.
func (a *API) fail(err error) {
	a.log.Error("%v", err)
	a.transition(StateError, err.Error())
}

// Start resets the clock and starts the frame loop. It is legal from ready
// and stop.
func (a *API) Start() error {
	return a.play(true)
}

// Resume restarts the frame loop without resetting the clock.
func (a *API) Resume() error {
	return a.play(false)
}

func (a *API) play(reset bool) error {
	a.mu.Lock()
	if a.state != StateReady && a.state != StateStop {
		s := a.state
		a.mu.Unlock()
		return apperrors.WithMetadata(apperrors.CodeIllegalState,
			fmt.Sprintf("cannot start from %s", s), map[string]string{"state": string(s)})
	}
	a.loop++
	gen := a.loop
	tp := a.timing
	a.mu.Unlock()

	if reset {
		tp.Start()
	}
	a.transition(StatePlay, "")
	tp.Next(a.frameFunc(gen))
	return nil
}

// Stop pauses the frame loop. It does nothing outside play.
func (a *API) Stop() {
	a.mu.Lock()
	playing := a.state == StatePlay
	a.mu.Unlock()
	if playing {
		a.transition(StateStop, "")
	}
}

// frameFunc returns the frame callback of loop generation gen. Frames of
// an older generation or arriving outside play are dropped.
func (a *API) frameFunc(gen int) func(float64, int) {
	var frame func(float64, int)
	frame = func(t float64, n int) {
		a.mu.Lock()
		live := a.state == StatePlay && a.loop == gen
		update, tp := a.update, a.timing
		a.mu.Unlock()
		if !live {
			return
		}
		if !update(t, n) {
			a.Stop()
			return
		}
		tp.Next(frame)
	}
	return frame
}

// WaitForAdapter blocks until an adapter is attached or ctx ends.
func (a *API) WaitForAdapter(ctx context.Context) (Adapter, error) {
	return waitFor(ctx, a.cfg.PollInterval, func() (Adapter, bool) {
		ad := a.Adapter()
		return ad, ad != nil
	})
}

// WaitForTimeProvider blocks until a clock is attached or ctx ends.
func (a *API) WaitForTimeProvider(ctx context.Context) (TimeProvider, error) {
	return waitFor(ctx, a.cfg.PollInterval, func() (TimeProvider, bool) {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.timing, a.timing != nil
	})
}

func waitFor[T any](ctx context.Context, interval time.Duration, check func() (T, bool)) (T, error) {
	if v, ok := check(); ok {
		return v, nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-ticker.C:
			if v, ok := check(); ok {
				return v, nil
			}
		}
	}
}
