package generate

import (
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func TestSineShape(t *testing.T) {
	f := Sine()
	if len(f) != wavetable.FrameSize {
		t.Fatalf("len = %d, want %d", len(f), wavetable.FrameSize)
	}

	testutil.RequireNearlyEqual(t, f[0], 0, 1e-12)
	testutil.RequireNearlyEqual(t, f[wavetable.FrameSize/4], 1, 1e-12)
	testutil.RequireNearlyEqual(t, f[3*wavetable.FrameSize/4], -1, 1e-12)
	testutil.RequireFinite(t, f)
}

func TestSawShape(t *testing.T) {
	f := Saw()

	if f[0] != 1 {
		t.Fatalf("f[0] = %v, want 1", f[0])
	}
	testutil.RequireNearlyEqual(t, f[wavetable.FrameSize/2], 0, 1e-12)

	// The ramp approaches -1 but never reaches it; the wrap is discontinuous.
	last := f[wavetable.FrameSize-1]
	want := 1 - 2*float64(wavetable.FrameSize-1)/wavetable.FrameSize
	testutil.RequireNearlyEqual(t, last, want, 1e-12)
	if last <= -1 {
		t.Fatalf("last sample = %v, want > -1", last)
	}
}

func TestFromLuminanceMapping(t *testing.T) {
	pixels := make([]float64, wavetable.FrameSize)
	for i := range pixels {
		pixels[i] = 127.5
	}
	pixels[0] = 255
	pixels[1] = 0

	f, err := FromLuminance(pixels)
	if err != nil {
		t.Fatalf("FromLuminance() error = %v", err)
	}

	// 255 -> +1 and 0 -> -1 already peak at 1, so normalization is a no-op.
	testutil.RequireNearlyEqual(t, f[0], 1, 1e-12)
	testutil.RequireNearlyEqual(t, f[1], -1, 1e-12)
	testutil.RequireNearlyEqual(t, f[2], 0, 1e-12)
}

func TestFromLuminanceRejectsWrongLength(t *testing.T) {
	if _, err := FromLuminance(make([]float64, 100)); err == nil {
		t.Fatal("expected error for short pixel row")
	}
	if _, err := FromLuminance(make([]float64, wavetable.FrameSize+1)); err == nil {
		t.Fatal("expected error for long pixel row")
	}
}

func TestFromLuminanceClampsOutOfRangePixels(t *testing.T) {
	pixels := make([]float64, wavetable.FrameSize)
	for i := range pixels {
		pixels[i] = 127.5
	}
	pixels[0] = 400
	pixels[1] = -50

	f, err := FromLuminance(pixels)
	if err != nil {
		t.Fatalf("FromLuminance() error = %v", err)
	}
	if f[0] != 1 || f[1] != -1 {
		t.Fatalf("out-of-range pixels not clamped: %v, %v", f[0], f[1])
	}
}

func BenchmarkSine(b *testing.B) {
	for b.Loop() {
		Sine()
	}
}
