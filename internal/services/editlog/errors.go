package editlog

import "errors"

var (
	// ErrInvalidEdit is returned when an edit's parameters are out of
	// range for the source buffer
	ErrInvalidEdit = errors.New("edit parameters out of range")

	// ErrEditNotFound is returned when removing an edit id that is not
	// in the log
	ErrEditNotFound = errors.New("edit not found")

	// ErrEmptyResult is returned when applying the log would remove
	// every sample
	ErrEmptyResult = errors.New("edits would remove all audio content")

	// ErrNilSource is returned when Apply is given no source buffer
	ErrNilSource = errors.New("nil source buffer")
)
