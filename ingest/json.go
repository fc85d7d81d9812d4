package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cast"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// JSON INGESTION — Array of objects → *dataset.Dataset
// ============================================================================
// Accepts `[{...}, {...}]` or a single `{...}` (one row).
// Column order is the key order of the first object, so objects are read
// token by token rather than through map[string]interface{}.
// Nested arrays/objects are kept as their compact JSON text.
// ============================================================================

// ParseJSON parses JSON records into a Dataset.
func ParseJSON(data []byte) (*dataset.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}

	var objects []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &objects); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	} else {
		objects = []json.RawMessage{trimmed}
	}

	if len(objects) == 0 {
		return nil, ErrNoRows
	}

	var columns []string
	rows := make([]dataset.Row, 0, len(objects))
	for i, raw := range objects {
		keys, row, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		if i == 0 {
			columns = keys
		}
		rows = append(rows, row)
	}

	return dataset.New(columns, rows)
}

// decodeObject reads one JSON object, returning its keys in document order.
func decodeObject(raw json.RawMessage) ([]string, dataset.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected an object, got %s", truncate(string(raw), 40))
	}

	row := make(dataset.Row)
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := tok.(string)

		var val interface{}
		if err := dec.Decode(&val); err != nil {
			return nil, nil, err
		}

		if _, seen := row[key]; !seen {
			keys = append(keys, key)
		}
		row[key] = jsonScalar(val)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("unexpected content after object")
	}
	return keys, row, nil
}

// jsonScalar maps a decoded JSON value onto the cell variant.
func jsonScalar(v interface{}) dataset.Value {
	switch x := v.(type) {
	case nil:
		return dataset.Null()
	case json.Number:
		if f, err := cast.ToFloat64E(x); err == nil {
			return dataset.Number(f)
		}
		return dataset.Text(x.String())
	case string:
		return dataset.Text(x)
	case bool:
		return dataset.Bool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return dataset.Text(cast.ToString(x))
		}
		return dataset.Text(string(b))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
