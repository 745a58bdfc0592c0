package codec

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder is registered for
	// the requested format tag
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCorruptAudio is returned when the container bytes cannot be
	// decoded
	ErrCorruptAudio = errors.New("corrupt or undecodable audio data")

	// ErrEmptyBuffer is returned when an encoder is given a buffer with
	// no samples or no channels
	ErrEmptyBuffer = errors.New("buffer has no samples to encode")
)
