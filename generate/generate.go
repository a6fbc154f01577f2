package generate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// Sine returns one cycle of a unit-amplitude sine wave.
func Sine() wavetable.Frame {
	f := wavetable.NewFrame()
	step := 2 * math.Pi / wavetable.FrameSize
	for i := range f {
		f[i] = math.Sin(step * float64(i))
	}
	return f
}

// Saw returns a linear ramp from +1 toward -1 across the frame,
// discontinuous at the wrap point.
func Saw() wavetable.Frame {
	f := wavetable.NewFrame()
	for i := range f {
		f[i] = 1 - 2*float64(i)/wavetable.FrameSize
	}
	return f
}

// FromLuminance converts a row of 8-bit luminance values into a frame.
// pixels must hold exactly wavetable.FrameSize entries in [0, 255]; any other
// length indicates a bug in the decoding layer and is rejected outright.
// Each value maps to v/127.5 - 1 and the result is peak-normalized.
func FromLuminance(pixels []float64) (wavetable.Frame, error) {
	if len(pixels) != wavetable.FrameSize {
		return nil, fmt.Errorf("luminance row length must be %d: %d", wavetable.FrameSize, len(pixels))
	}

	f := wavetable.NewFrame()
	for i, v := range pixels {
		f[i] = wavetable.Clamp(v, 0, 255)/127.5 - 1
	}
	f.Normalize()
	return f, nil
}
