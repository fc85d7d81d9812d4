package ingest

import "errors"

// Errors returned by the ingestion adapters.
var (
	// ErrEmptyInput is returned when there is nothing but whitespace to parse.
	ErrEmptyInput = errors.New("input is empty")

	// ErrNoRows is returned when parsing produced zero data rows.
	ErrNoRows = errors.New("no data rows")

	// ErrMalformed is returned when the input cannot be parsed at all.
	ErrMalformed = errors.New("malformed input")

	// ErrUnsupportedFormat is returned for file types no adapter handles.
	ErrUnsupportedFormat = errors.New("unsupported file type")
)
