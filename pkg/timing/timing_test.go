package timing

import (
	"testing"
	"time"
)

func TestManual(t *testing.T) {
	m := NewManual(16)
	var got []float64
	var frames []int
	var tick func(float64, int)
	tick = func(now float64, frame int) {
		got = append(got, now)
		frames = append(frames, frame)
		if frame < 3 {
			m.Next(tick)
		}
	}

	m.Start()
	m.Next(tick)
	for m.Pending() > 0 {
		m.Advance()
	}

	if len(got) != 3 || got[0] != 16 || got[2] != 48 {
		t.Errorf("times = %v", got)
	}
	if frames[2] != 3 {
		t.Errorf("frames = %v", frames)
	}

	m.Start()
	if now, frame := m.Now(); now != 0 || frame != 0 {
		t.Errorf("after Start: %v %d", now, frame)
	}
}

func TestTicker(t *testing.T) {
	tk := NewTicker(200)
	tk.Start()

	done := make(chan int, 1)
	tk.Next(func(now float64, frame int) {
		if now <= 0 {
			t.Errorf("elapsed = %v", now)
		}
		done <- frame
	})

	select {
	case frame := <-done:
		if frame != 1 {
			t.Errorf("frame = %d, want 1", frame)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("frame never delivered")
	}
}

func TestTickerStop(t *testing.T) {
	tk := NewTicker(100)
	tk.Start()
	fired := make(chan struct{}, 1)
	tk.Next(func(float64, int) { fired <- struct{}{} })
	tk.Stop()

	select {
	case <-fired:
		t.Fatal("stopped ticker fired")
	case <-time.After(50 * time.Millisecond):
	}
}
