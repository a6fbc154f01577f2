// Package brush implements the freehand paint operation of the wavetable
// editor: a tent-falloff kernel blended into a frame, plus per-gesture
// stroke state that interpolates across fast pointer motion so a drag never
// leaves gaps.
package brush

import (
	"math"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// DefaultRadius is the half-width of the standard brush kernel in samples.
const DefaultRadius = 15

// Apply blends one brush stamp into f around center. Within
// [center-radius, center+radius] each sample is pulled toward amp with a
// linear tent weight (1 at the center, 0 at the edge):
//
//	f[idx] = f[idx]*(1-falloff) + amp*falloff
//
// The center sample is set exactly to amp. Indices outside the frame are
// skipped; a radius below 1 is clamped to 1 so the stamp always lands.
func Apply(f wavetable.Frame, center int, amp float64, radius int) {
	if radius < 1 {
		radius = 1
	}
	for d := -radius; d <= radius; d++ {
		idx := center + d
		if idx < 0 || idx >= len(f) {
			continue
		}
		falloff := 1 - math.Abs(float64(d))/float64(radius)
		f[idx] = f[idx]*(1-falloff) + amp*falloff
	}
}

// Stroke carries the state of one continuous drag gesture: the previous
// pointer position, remembered only between Begin/MoveTo and End. A Stroke
// is reusable across gestures; End clears it.
type Stroke struct {
	radius    int
	active    bool
	lastIndex int
	lastAmp   float64
}

// NewStroke returns a stroke using the given kernel radius.
// A radius of 0 or less selects DefaultRadius.
func NewStroke(radius int) *Stroke {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Stroke{radius: radius}
}

// Begin starts a gesture: applies a single stamp at (index, amp) and records
// the position as the previous pointer sample.
func (s *Stroke) Begin(f wavetable.Frame, index int, amp float64) {
	Apply(f, index, amp, s.radius)
	s.active = true
	s.lastIndex = index
	s.lastAmp = amp
}

// MoveTo continues a gesture. When the pointer skipped horizontally, the
// stroke steps one index at a time from the previous position to the new one,
// linearly interpolating amplitude and applying the full kernel at every
// step; fast motion therefore cannot leave untouched holes. A purely vertical
// move applies a single stamp at the new amplitude. Calling MoveTo without
// Begin starts the gesture.
func (s *Stroke) MoveTo(f wavetable.Frame, index int, amp float64) {
	if !s.active {
		s.Begin(f, index, amp)
		return
	}

	steps := index - s.lastIndex
	dir := 1
	if steps < 0 {
		steps = -steps
		dir = -1
	}

	if steps == 0 {
		Apply(f, index, amp, s.radius)
	} else {
		for k := 0; k <= steps; k++ {
			stepIdx := s.lastIndex + dir*k
			stepAmp := s.lastAmp + (amp-s.lastAmp)*float64(k)/float64(steps)
			Apply(f, stepIdx, stepAmp, s.radius)
		}
	}

	s.lastIndex = index
	s.lastAmp = amp
}

// End finishes the gesture and forgets the previous pointer position.
// The next Begin or MoveTo starts fresh.
func (s *Stroke) End() {
	s.active = false
}
