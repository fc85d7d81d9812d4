package dataset

import "errors"

var (
	// ErrDuplicateColumn is returned when a column name appears twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrNotScalar is returned when decoding a cell that is not a JSON scalar.
	ErrNotScalar = errors.New("cell value is not a scalar")
)
