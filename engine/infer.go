package engine

import "github.com/gitmvp-com/simple-data-viz/dataset"

// InferFieldType picks the default field type for column.
//
// Only the first row is inspected: a number there means Quantitative,
// anything else (text, bool, null, missing key, no rows) means Nominal.
// Mixed columns and dates are not detected; a user overrides the result
// through Shelf.SetType.
func InferFieldType(ds *dataset.Dataset, column string) FieldType {
	if ds.IsEmpty() {
		return Nominal
	}

	switch ds.Value(0, column).Kind() {
	case dataset.KindNumber:
		return Quantitative
	default:
		return Nominal
	}
}
