package wavetable

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// FrameSize is the number of samples in a single wavetable frame.
	FrameSize = 2048

	// MaxFrames is the maximum number of frames a Table holds.
	MaxFrames = 256
)

// silenceThreshold is the peak level at or below which a frame is considered
// silent and normalization leaves it untouched.
const silenceThreshold = 1e-4

// Frame is one fixed-length cycle of samples, nominally in [-1, 1].
// All frames handled by this module are exactly FrameSize samples long.
type Frame []float64

// NewFrame returns a zero-filled frame of FrameSize samples.
func NewFrame() Frame {
	return make(Frame, FrameSize)
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}

// Normalize rescales the frame in place so its peak absolute value becomes 1,
// preserving sign and shape. Frames whose peak is at or below the silence
// threshold are left unchanged to avoid amplifying numeric noise.
// Normalizing an already normalized frame is a no-op up to rounding.
func (f Frame) Normalize() {
	maxAbs := vecmath.MaxAbs(f)
	if maxAbs <= silenceThreshold {
		return
	}
	vecmath.ScaleBlockInPlace(f, 1/maxAbs)
}

// MaxAbs returns the peak absolute sample value of the frame.
func (f Frame) MaxAbs() float64 {
	return vecmath.MaxAbs(f)
}

// Interpolate returns a new frame crossfading a toward b:
// out[i] = a[i]*(1-mix) + b[i]*mix. mix is clamped to [0, 1], so mix=0
// reproduces a and mix=1 reproduces b. The inputs must have equal length.
func Interpolate(a, b Frame, mix float64) (Frame, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("interpolate frame lengths differ: %d vs %d", len(a), len(b))
	}

	mix = Clamp(mix, 0, 1)

	out := make(Frame, len(a))
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*mix
	}
	return out, nil
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (f Frame) validate() error {
	if len(f) != FrameSize {
		return fmt.Errorf("frame length must be %d: %d", FrameSize, len(f))
	}
	return nil
}
