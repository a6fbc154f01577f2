// Package wavetable provides the frame and table primitives of a wavetable
// editor: fixed-length sample frames, an ordered frame collection with a
// cursor, peak normalization, and linear frame interpolation.
//
// A Frame is one single-cycle waveform of FrameSize samples. A Table owns an
// ordered sequence of frames plus the index of the frame being edited; all
// structural operations keep the table non-empty and the cursor in range.
// Frames entering a table are always deep-copied, so editing one table entry
// never bleeds into another.
package wavetable
