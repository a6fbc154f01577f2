// Package generate produces wavetable frames from user intent: fixed shapes
// (sine, sawtooth), additive harmonic specifications, per-sample formula
// expressions, and image luminance rows. Generators are pure; each call
// returns a fresh frame and never mutates shared state.
package generate
