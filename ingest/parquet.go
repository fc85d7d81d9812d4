package ingest

import (
	"bytes"
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/spf13/cast"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// PARQUET INGESTION — Parquet bytes → Arrow table → *dataset.Dataset
// ============================================================================
// Integer, floating and decimal columns become numbers, booleans stay
// booleans, nulls stay null. Every other Arrow type (strings, dates,
// timestamps, nested) is carried as its Arrow display string.
// ============================================================================

// tableChunkSize is the row batch size used when walking the Arrow table.
const tableChunkSize = 1024

// ParseParquet reads a whole Parquet file held in memory.
func ParseParquet(ctx context.Context, data []byte) (*dataset.Dataset, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open parquet data: %v", ErrMalformed, err)
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create arrow reader: %v", ErrMalformed, err)
	}

	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer table.Release()

	return tableToDataset(table)
}

// tableToDataset copies an Arrow table into rows keyed by field name.
func tableToDataset(table arrow.Table) (*dataset.Dataset, error) {
	fields := table.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	columns := uniqueHeaders(names)

	rows := make([]dataset.Row, 0, table.NumRows())

	tr := array.NewTableReader(table, tableChunkSize)
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		numRows := int(rec.NumRows())
		numCols := int(rec.NumCols())
		for r := 0; r < numRows; r++ {
			row := make(dataset.Row, numCols)
			for c := 0; c < numCols; c++ {
				row[columns[c]] = arrowCell(rec.Column(c), r)
			}
			rows = append(rows, row)
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("failed to walk arrow table: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return dataset.New(columns, rows)
}

// arrowCell converts one Arrow cell into the cell variant.
func arrowCell(col arrow.Array, i int) dataset.Value {
	if col.IsNull(i) {
		return dataset.Null()
	}

	if b, ok := col.(*array.Boolean); ok {
		return dataset.Bool(b.Value(i))
	}

	id := col.DataType().ID()
	if arrow.IsInteger(id) || arrow.IsFloating(id) || id == arrow.DECIMAL128 || id == arrow.DECIMAL256 {
		if f, err := cast.ToFloat64E(col.ValueStr(i)); err == nil {
			return dataset.Number(f)
		}
	}

	return dataset.Text(col.ValueStr(i))
}
