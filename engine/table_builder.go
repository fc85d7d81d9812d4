package engine

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// TABLE BUILDER — Data preview shown next to the chart
// ============================================================================
// Cells are display strings; null renders as an empty cell. The caption
// always reports the full dataset size, even when rows are truncated.
// ============================================================================

// Preview is a render-ready view of the loaded dataset.
type Preview struct {
	Title     string     `json:"title"`
	Caption   string     `json:"caption"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"`
}

// Truncated reports whether fewer rows are shown than the dataset holds.
func (p *Preview) Truncated() bool {
	return len(p.Rows) < p.TotalRows
}

// BuildPreview formats up to limit rows of ds (limit <= 0 means all rows).
func BuildPreview(ds *dataset.Dataset, limit int) *Preview {
	columns := ds.Columns()
	if columns == nil {
		columns = []string{}
	}

	n := ds.Len()
	if limit > 0 && limit < n {
		n = limit
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = ds.Value(i, col).String()
		}
		rows = append(rows, row)
	}

	return &Preview{
		Title:     "Data Preview",
		Caption:   previewCaption(ds.Len(), len(columns)),
		Columns:   columns,
		Rows:      rows,
		TotalRows: ds.Len(),
	}
}

// previewCaption renders "1,234 rows × 4 columns".
func previewCaption(rows, cols int) string {
	return fmt.Sprintf("%s rows × %s columns", humanize.Comma(int64(rows)), humanize.Comma(int64(cols)))
}

// WritePreview prints p as an aligned text table.
func WritePreview(w io.Writer, p *Preview) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n\n", p.Title, p.Caption); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(p.Columns, "\t"))
	for _, row := range p.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if p.Truncated() {
		_, err := fmt.Fprintf(w, "... %s more rows\n", humanize.Comma(int64(p.TotalRows-len(p.Rows))))
		return err
	}
	return nil
}
