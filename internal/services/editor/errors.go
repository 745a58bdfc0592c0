package editor

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown or closed session id
	ErrSessionNotFound = errors.New("edit session not found")

	// ErrApplyInProgress is returned when a session already has an apply
	// or preview running
	ErrApplyInProgress = errors.New("an apply is already in progress for this session")
)
