package session

import "errors"

// Errors returned by state transitions.
var (
	// ErrAlreadyLoaded is returned when a load is attempted before Reset.
	ErrAlreadyLoaded = errors.New("a dataset is already loaded")

	// ErrNotLoaded is returned by shelf and mark actions before any load.
	ErrNotLoaded = errors.New("no dataset loaded")

	// ErrUnknownAction is returned for an Action type Apply does not handle.
	ErrUnknownAction = errors.New("unknown action")
)
