package blobs

import "errors"

var (
	// ErrBlobNotFound is returned when a blob is not found
	ErrBlobNotFound = errors.New("audio blob not found")

	// ErrDuplicateRecording is returned when a recording already has a
	// stored blob
	ErrDuplicateRecording = errors.New("recording already has a stored audio blob")

	// ErrInvalidRecordingID is returned when the recording id is empty
	ErrInvalidRecordingID = errors.New("invalid recording ID")

	// ErrEmptyPayload is returned when a put carries no bytes
	ErrEmptyPayload = errors.New("empty audio payload")
)
