// Package timing provides frame clocks for driving artworks. Times are in
// milliseconds since Start.
package timing

import (
	"sync"
	"time"
)

// Ticker delivers frames at a fixed rate in real time.
type Ticker struct {
	interval time.Duration
	now      func() time.Time

	mu    sync.Mutex
	start time.Time
	frame int
	timer *time.Timer
}

// NewTicker creates a ticker running at fps frames per second. A
// non-positive fps falls back to 60.
func NewTicker(fps float64) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{
		interval: time.Duration(float64(time.Second) / fps),
		now:      time.Now,
		start:    time.Now(),
	}
}

// Start resets the clock and frame counter.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.start = t.now()
	t.frame = 0
}

// Now returns the elapsed time and the current frame.
func (t *Ticker) Now() (float64, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed(), t.frame
}

func (t *Ticker) elapsed() float64 {
	return float64(t.now().Sub(t.start)) / float64(time.Millisecond)
}

// Next schedules fn for the next frame.
func (t *Ticker) Next(fn func(t float64, frame int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timer = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		t.frame++
		now, frame := t.elapsed(), t.frame
		t.mu.Unlock()
		fn(now, frame)
	})
}

// Stop cancels a pending frame.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Manual is a clock that only advances when told to. It drives offline
// rendering and tests.
type Manual struct {
	step float64

	mu      sync.Mutex
	time    float64
	frame   int
	pending []func(float64, int)
}

// NewManual creates a clock advancing step milliseconds per frame.
func NewManual(step float64) *Manual {
	return &Manual{step: step}
}

// Start resets the clock and frame counter.
func (m *Manual) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.time, m.frame = 0, 0
}

// Now returns the current time and frame.
func (m *Manual) Now() (float64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.time, m.frame
}

// Next queues fn for the next Advance.
func (m *Manual) Next(fn func(t float64, frame int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock one frame forward and runs the callbacks queued
// before the call. It returns how many ran.
func (m *Manual) Advance() int {
	m.mu.Lock()
	m.time += m.step
	m.frame++
	now, frame := m.time, m.frame
	queued := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range queued {
		fn(now, frame)
	}
	return len(queued)
}
