package domain

import "errors"

var (
	// ErrMalformedFrame marks a frame whose field count is not exactly four.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrInvalidNumber marks a frame containing a field that is not a finite number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrAlreadyStarted is returned when a pipeline run is requested twice.
	ErrAlreadyStarted = errors.New("pipeline already started")
)
