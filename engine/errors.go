package engine

import "errors"

// Errors returned by shelf transitions and label parsing.
var (
	// ErrUnknownChannel is returned for a channel other than x, y or color.
	ErrUnknownChannel = errors.New("unknown encoding channel")

	// ErrUnknownColumn is returned when binding a column the dataset lacks.
	ErrUnknownColumn = errors.New("column not found")

	// ErrUnknownFieldType is returned for an unrecognised field type label.
	ErrUnknownFieldType = errors.New("unknown field type")

	// ErrUnknownMark is returned for an unrecognised mark name.
	ErrUnknownMark = errors.New("unknown mark")
)
