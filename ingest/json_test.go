package ingest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// JSON INGESTION TESTS
// ============================================================================

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	data := []byte(`[
		{"zeta": "a", "alpha": 1, "mid": true},
		{"alpha": 2, "zeta": "b", "mid": null}
	]`)

	ds, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if got := ds.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	assertValue(t, ds.Value(0, "alpha"), dataset.Number(1))
	assertValue(t, ds.Value(0, "mid"), dataset.Bool(true))
	assertValue(t, ds.Value(1, "mid"), dataset.Null())
}

func TestParseJSONSingleObject(t *testing.T) {
	ds, err := ParseJSON([]byte(`{"name": "Alice", "tags": ["a", "b"], "meta": {"k": 1}}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("rows = %d, want 1", ds.Len())
	}
	assertValue(t, ds.Value(0, "tags"), dataset.Text(`["a","b"]`))
	assertValue(t, ds.Value(0, "meta"), dataset.Text(`{"k":1}`))
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"blank", "  \n", ErrEmptyInput},
		{"empty array", "[]", ErrNoRows},
		{"broken", `[{"a":1}`, ErrMalformed},
		{"array of scalars", `[1, 2]`, ErrMalformed},
		{"trailing object", `{"a":1} {"a":2}`, ErrMalformed},
		{"trailing garbage", `{"a":1} garbage`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
