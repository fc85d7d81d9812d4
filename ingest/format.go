package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// FORMAT DISPATCH — Picks an adapter from the uploaded file's name
// ============================================================================

// Format identifies an ingestion adapter.
type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatJSON
	FormatParquet
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatParquet:
		return "parquet"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV
	case ".json":
		return FormatJSON
	case ".parquet":
		return FormatParquet
	default:
		return FormatUnknown
	}
}

// Load parses file contents with the adapter matching the file name.
// opts only affect the CSV adapter.
func Load(ctx context.Context, name string, data []byte, opts ...Option) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format := DetectFormat(name); format {
	case FormatCSV:
		return ParseCSVContext(ctx, string(data), opts...)
	case FormatJSON:
		return ParseJSON(data)
	case FormatParquet:
		return ParseParquet(ctx, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(name))
	}
}
