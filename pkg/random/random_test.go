package random

import (
	"testing"
)

func TestSFC32Sequence(t *testing.T) {
	t.Run("Words", func(t *testing.T) {
		r := NewSFC32Words([4]uint32{1, 2, 3, 4})
		want := []uint32{7, 34, 56623200, 188882296, 3431242869, 399395954}
		for i, w := range want {
			if got := r.Uint32(); got != w {
				t.Fatalf("step %d: got %d, want %d", i, got, w)
			}
		}
	})

	t.Run("HexSeed", func(t *testing.T) {
		r, err := NewSFC32("0x0123456789abcdeffedcba9876543210")
		if err != nil {
			t.Fatalf("NewSFC32: %v", err)
		}
		want := []uint32{19088742, 4127578482, 1651034390, 799975818}
		for i, w := range want {
			if got := r.Uint32(); got != w {
				t.Fatalf("step %d: got %d, want %d", i, got, w)
			}
		}
	})
}

func TestSFC32Reset(t *testing.T) {
	r, err := NewSFC32("deadbeef")
	if err != nil {
		t.Fatalf("NewSFC32: %v", err)
	}
	first := []float64{r.Rnd(), r.Rnd(), r.Rnd()}
	r.Reset()
	for i, want := range first {
		if got := r.Rnd(); got != want {
			t.Errorf("after reset step %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRndRange(t *testing.T) {
	r := NewSFC32Words([4]uint32{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff})
	for i := 0; i < 10000; i++ {
		x := r.Rnd()
		if x < 0 || x >= 1 {
			t.Fatalf("Rnd out of range: %v", x)
		}
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantErr bool
		want    [4]uint32
	}{
		{"Short", "ff", false, [4]uint32{0, 0, 0, 0xff}},
		{"Prefixed", "0X10000000000000000", false, [4]uint32{0, 1, 0, 0}},
		{"Empty", "", true, [4]uint32{}},
		{"NotHex", "xyz", true, [4]uint32{}},
		{"TooLarge", "1" + "00000000000000000000000000000000", true, [4]uint32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeed(tt.seed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeed(%q) error = %v, wantErr %v", tt.seed, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSeed(%q) = %v, want %v", tt.seed, got, tt.want)
			}
		})
	}
}

func TestNewSeed(t *testing.T) {
	seed, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if len(seed) != 32 {
		t.Fatalf("expected 32 hex digits, got %q", seed)
	}
	r, err := NewSFC32(seed)
	if err != nil {
		t.Fatalf("NewSFC32(%q): %v", seed, err)
	}
	if r.Seed() != seed {
		t.Errorf("Seed() = %q, want %q", r.Seed(), seed)
	}
}
