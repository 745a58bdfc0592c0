package waveforms

import "errors"

var (
	// ErrWaveformNotFound is returned when no cached waveform exists for
	// a recording
	ErrWaveformNotFound = errors.New("waveform not found")

	// ErrInvalidRecordingID is returned when the recording id is empty
	ErrInvalidRecordingID = errors.New("invalid recording ID")

	// ErrInvalidPeaksData is returned when peaks data is empty or malformed
	ErrInvalidPeaksData = errors.New("invalid peaks data")

	// ErrNilBuffer is returned when peak extraction is given no buffer
	ErrNilBuffer = errors.New("nil sample buffer")

	// ErrEmptyBuffer is returned when peak extraction is given a buffer
	// with no samples
	ErrEmptyBuffer = errors.New("empty sample buffer")

	// ErrInvalidWindow is returned for a non-positive decimation window
	ErrInvalidWindow = errors.New("window size must be positive")
)
