// Package audio provides the sample buffer primitives the memo engine
// is built on: allocation, slicing, concatenation, gain scaling, a
// simple noise gate and silence detection over multi-channel float64
// sample arrays.
//
// Every primitive returns a new Buffer; nothing mutates its input.
// This keeps buffers freely shareable between the waveform renderer and
// an in-flight edit application without locking.
package audio
