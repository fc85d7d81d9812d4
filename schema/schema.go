package schema

import "github.com/gitmvp-com/simple-data-viz/engine"

// ============================================================================
// SCHEMA — Describes the columns of a loaded dataset
// ============================================================================
// Discovered from a Dataset after ingestion. It feeds the field menus and the
// CLI's --describe output. It is informational: the shelf infers field types
// on its own and never reads a Config.
// ============================================================================

// Config describes the complete shape of a dataset.
type Config struct {
	Name    string       `json:"name,omitempty"`
	Rows    int          `json:"rows"`
	Columns []ColumnMeta `json:"columns"`

	// Auto-discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`
}

// ColumnMeta describes one column.
type ColumnMeta struct {
	Key         string           `json:"key"` // exact column name, as bound on the shelf
	DisplayName string           `json:"displayName"`
	DefaultType engine.FieldType `json:"defaultType"` // what SetField would pick
	FirstKind   string           `json:"firstKind"`   // kind of the first row's cell

	NullCount       int      `json:"nullCount"`
	DistinctCount   int      `json:"distinctCount"`
	SampleValues    []string `json:"sampleValues"`
	CardinalityHint string   `json:"cardinalityHint"` // "low", "medium", "high"

	// Text columns that look like months, quarters or dates. Never changes
	// DefaultType; a user may pick temporal from the type menu.
	LooksTemporal  bool   `json:"looksTemporal,omitempty"`
	TemporalFormat string `json:"temporalFormat,omitempty"`
}

// Keys returns all column keys in dataset order.
func (c Config) Keys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// Column looks up a column by key.
func (c Config) Column(key string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}

// KeysByType returns the keys whose default type is t.
func (c Config) KeysByType(t engine.FieldType) []string {
	var keys []string
	for _, col := range c.Columns {
		if col.DefaultType == t {
			keys = append(keys, col.Key)
		}
	}
	return keys
}
