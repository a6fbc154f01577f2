package generate

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// NumHarmonics is the number of additive partials a harmonic spec holds.
const NumHarmonics = 16

// FromHarmonics synthesizes a frame by summing sine partials:
// out[i] = sum over h of amps[h] * sin(2*pi*(h+1)*i/N). amps is positional,
// index 0 being the fundamental, and holds at most NumHarmonics values, each
// clamped to [0, 1]. The result is peak-normalized; an all-zero spec yields a
// silent frame.
func FromHarmonics(amps []float64) (wavetable.Frame, error) {
	if len(amps) > NumHarmonics {
		return nil, fmt.Errorf("too many harmonic amplitudes: %d > %d", len(amps), NumHarmonics)
	}

	f := wavetable.NewFrame()
	for h, amp := range amps {
		amp = wavetable.Clamp(amp, 0, 1)
		if amp == 0 {
			// Skipping silent partials does not change the sum.
			continue
		}
		step := 2 * math.Pi * float64(h+1) / wavetable.FrameSize
		for i := range f {
			f[i] += amp * math.Sin(step*float64(i))
		}
	}
	f.Normalize()
	return f, nil
}

// AnalyzeHarmonics measures the relative strength of the first NumHarmonics
// partials of f, scaled so the strongest partial is 1. It is the measurement
// counterpart of FromHarmonics: feeding its output back into FromHarmonics
// reconstructs the harmonic content of the frame (minus phase).
func AnalyzeHarmonics(f wavetable.Frame) ([]float64, error) {
	if len(f) != wavetable.FrameSize {
		return nil, fmt.Errorf("analyze frame length must be %d: %d", wavetable.FrameSize, len(f))
	}

	plan, err := algofft.NewPlan64(wavetable.FrameSize)
	if err != nil {
		return nil, fmt.Errorf("harmonic analysis: %w", err)
	}

	in := make([]complex128, wavetable.FrameSize)
	for i, v := range f {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, wavetable.FrameSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("harmonic analysis: %w", err)
	}

	// Bin h+1 of a single-cycle frame is exactly the (h+1)-th harmonic.
	amps := make([]float64, NumHarmonics)
	peak := 0.0
	for h := range amps {
		amps[h] = cmplx.Abs(out[h+1])
		if amps[h] > peak {
			peak = amps[h]
		}
	}
	if peak > 0 {
		for h := range amps {
			amps[h] /= peak
		}
	}
	return amps, nil
}
