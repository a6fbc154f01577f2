package generate

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/testutil"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func TestFromHarmonicsSingleFundamentalIsSine(t *testing.T) {
	f, err := FromHarmonics([]float64{1})
	if err != nil {
		t.Fatalf("FromHarmonics() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, f, Sine(), 1e-9)
}

func TestFromHarmonicsPeakIsOne(t *testing.T) {
	specs := [][]float64{
		{1},
		{0.2},
		{1, 0.5, 0.25},
		{0, 0, 1},
		{0.1, 0, 0, 0, 0.9, 0, 0, 0.3},
	}
	for _, amps := range specs {
		f, err := FromHarmonics(amps)
		if err != nil {
			t.Fatalf("FromHarmonics(%v) error = %v", amps, err)
		}
		testutil.RequireNearlyEqual(t, f.MaxAbs(), 1, 1e-9)
	}
}

func TestFromHarmonicsAllZeroStaysSilent(t *testing.T) {
	f, err := FromHarmonics(make([]float64, NumHarmonics))
	if err != nil {
		t.Fatalf("FromHarmonics() error = %v", err)
	}
	if f.MaxAbs() != 0 {
		t.Fatalf("silent spec produced peak %v", f.MaxAbs())
	}
}

func TestFromHarmonicsSkippedZeroPartialsAreNeutral(t *testing.T) {
	withZeros, err := FromHarmonics([]float64{1, 0, 0.5, 0})
	if err != nil {
		t.Fatalf("FromHarmonics() error = %v", err)
	}
	dense := wavetable.NewFrame()
	for i := range dense {
		phase := 2 * math.Pi * float64(i) / wavetable.FrameSize
		dense[i] = math.Sin(phase) + 0.5*math.Sin(3*phase)
	}
	dense.Normalize()

	testutil.RequireSliceNearlyEqual(t, withZeros, dense, 1e-9)
}

func TestFromHarmonicsClampsAmplitudes(t *testing.T) {
	boosted, err := FromHarmonics([]float64{5})
	if err != nil {
		t.Fatalf("FromHarmonics() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, boosted, Sine(), 1e-9)
}

func TestFromHarmonicsRejectsTooManyPartials(t *testing.T) {
	if _, err := FromHarmonics(make([]float64, NumHarmonics+1)); err == nil {
		t.Fatal("expected error for oversized spec")
	}
}

func TestAnalyzeHarmonicsRoundTrip(t *testing.T) {
	want := []float64{1, 0, 0.5, 0, 0, 0.25}

	f, err := FromHarmonics(want)
	if err != nil {
		t.Fatalf("FromHarmonics() error = %v", err)
	}

	got, err := AnalyzeHarmonics(f)
	if err != nil {
		t.Fatalf("AnalyzeHarmonics() error = %v", err)
	}
	if len(got) != NumHarmonics {
		t.Fatalf("len = %d, want %d", len(got), NumHarmonics)
	}

	// Single-cycle partials land exactly on FFT bins, so the measured ratios
	// match the spec ratios without windowing.
	testutil.RequireSliceNearlyEqual(t, got[:len(want)], want, 1e-6)
	for h := len(want); h < NumHarmonics; h++ {
		testutil.RequireNearlyEqual(t, got[h], 0, 1e-6)
	}
}

func TestAnalyzeHarmonicsRejectsWrongLength(t *testing.T) {
	if _, err := AnalyzeHarmonics(make(wavetable.Frame, 100)); err == nil {
		t.Fatal("expected error for short frame")
	}
}

func BenchmarkFromHarmonics(b *testing.B) {
	amps := []float64{1, 0.5, 0.33, 0.25, 0.2, 0.17, 0.14, 0.13}
	for b.Loop() {
		if _, err := FromHarmonics(amps); err != nil {
			b.Fatal(err)
		}
	}
}
