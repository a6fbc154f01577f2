package wavetable

import "fmt"

// Table is an ordered sequence of frames plus a cursor marking the frame
// being edited. It is never empty and the cursor is always a valid index.
//
// A Table is not safe for concurrent use; callers sharing one across
// goroutines must serialize access, since structural mutations are
// order-sensitive.
type Table struct {
	frames   []Frame
	current  int
	onChange func()
}

// Option configures a Table.
type Option func(*Table)

// WithOnChange registers fn to run after every successful mutation.
// UI layers use this as their re-render trigger.
func WithOnChange(fn func()) Option {
	return func(t *Table) {
		t.onChange = fn
	}
}

// WithInitialFrame seeds the table with a copy of f instead of silence.
// Frames of the wrong length are ignored.
func WithInitialFrame(f Frame) Option {
	return func(t *Table) {
		if len(f) == FrameSize {
			t.frames[0] = f.Clone()
		}
	}
}

// NewTable returns a table holding a single silent frame with the cursor on it.
func NewTable(opts ...Option) *Table {
	t := &Table{frames: []Frame{NewFrame()}}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Len returns the number of frames.
func (t *Table) Len() int {
	return len(t.frames)
}

// CurrentIndex returns the cursor position.
func (t *Table) CurrentIndex() int {
	return t.current
}

// Current returns the frame under the cursor. The frame is the table's own
// storage, so in-place edits (for example brush strokes) act directly on the
// table entry.
func (t *Table) Current() Frame {
	return t.frames[t.current]
}

// Frame returns the frame at index i.
func (t *Table) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(t.frames) {
		return nil, fmt.Errorf("frame index out of range: %d (table has %d)", i, len(t.frames))
	}
	return t.frames[i], nil
}

// Frames returns a snapshot of the frame sequence. The returned slice is the
// caller's to keep; the frames themselves are shared read views.
func (t *Table) Frames() []Frame {
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// Add appends a copy of the current frame and moves the cursor onto it.
// Adding beyond MaxFrames is rejected and leaves the table untouched.
func (t *Table) Add() error {
	return t.AddFrame(t.frames[t.current])
}

// Duplicate appends a copy of the current frame and moves the cursor onto it.
// It is Add with the copy semantics spelled out in the name.
func (t *Table) Duplicate() error {
	return t.AddFrame(t.frames[t.current])
}

// AddFrame appends a deep copy of f and moves the cursor onto it.
func (t *Table) AddFrame(f Frame) error {
	if err := f.validate(); err != nil {
		return err
	}
	if len(t.frames) >= MaxFrames {
		return fmt.Errorf("table is full: %d frames", MaxFrames)
	}

	t.frames = append(t.frames, f.Clone())
	t.current = len(t.frames) - 1
	t.notify()
	return nil
}

// Delete removes the frame under the cursor and re-clamps the cursor.
// Deleting the last remaining frame is rejected.
func (t *Table) Delete() error {
	if len(t.frames) <= 1 {
		return fmt.Errorf("cannot delete the last remaining frame")
	}

	t.frames = append(t.frames[:t.current], t.frames[t.current+1:]...)
	if t.current > len(t.frames)-1 {
		t.current = len(t.frames) - 1
	}
	t.notify()
	return nil
}

// SetCurrent moves the cursor to index i, clamped into the valid range.
func (t *Table) SetCurrent(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(t.frames)-1 {
		i = len(t.frames) - 1
	}
	t.current = i
	t.notify()
}

// ReplaceCurrent overwrites the frame under the cursor with a copy of f.
func (t *Table) ReplaceCurrent(f Frame) error {
	if err := f.validate(); err != nil {
		return err
	}
	t.frames[t.current] = f.Clone()
	t.notify()
	return nil
}

// Morph replaces every interior frame with a linear blend of the first and
// last frames, so the table becomes a straight crossfade between its
// endpoints. Interior content is overwritten. Requires at least 3 frames.
func (t *Table) Morph() error {
	count := len(t.frames)
	if count < 3 {
		return fmt.Errorf("morph requires at least 3 frames: %d", count)
	}

	first, last := t.frames[0], t.frames[count-1]
	for k := 1; k < count-1; k++ {
		blended, err := Interpolate(first, last, float64(k)/float64(count-1))
		if err != nil {
			return fmt.Errorf("morph frame %d: %w", k, err)
		}
		t.frames[k] = blended
	}
	t.notify()
	return nil
}

func (t *Table) notify() {
	if t.onChange != nil {
		t.onChange()
	}
}
