package audio

import "errors"

var (
	// ErrEmptyInput is returned when an operation is given nothing to work on
	ErrEmptyInput = errors.New("no input buffers")

	// ErrMismatchedFormat is returned when buffers with differing sample
	// rates or channel counts are combined
	ErrMismatchedFormat = errors.New("buffers have mismatched sample rates or channel counts")
)
