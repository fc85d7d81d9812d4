package ingest

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// CSV INGESTION TESTS
// ============================================================================

func TestSampleLoad(t *testing.T) {
	ds, err := Sample()
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	wantCols := []string{"name", "age", "score", "city"}
	if got := ds.Columns(); !reflect.DeepEqual(got, wantCols) {
		t.Errorf("columns = %v, want %v", got, wantCols)
	}
	if ds.Len() != 8 {
		t.Errorf("rows = %d, want 8", ds.Len())
	}

	assertValue(t, ds.Value(0, "name"), dataset.Text("Alice"))
	assertValue(t, ds.Value(0, "age"), dataset.Number(25))
	assertValue(t, ds.Value(7, "city"), dataset.Text("Chicago"))
}

func TestCoerceCell(t *testing.T) {
	tests := []struct {
		raw  string
		want dataset.Value
	}{
		{"", dataset.Null()},
		{"true", dataset.Bool(true)},
		{"TRUE", dataset.Bool(true)},
		{"false", dataset.Bool(false)},
		{"FALSE", dataset.Bool(false)},
		{"True", dataset.Text("True")},
		{"42", dataset.Number(42)},
		{"-3.5", dataset.Number(-3.5)},
		{".5", dataset.Number(0.5)},
		{"7.", dataset.Number(7)},
		{"1e3", dataset.Number(1000)},
		{" 12 ", dataset.Number(12)},
		{"1,234", dataset.Text("1,234")},
		{"0x10", dataset.Text("0x10")},
		{"NaN", dataset.Text("NaN")},
		{"Inf", dataset.Text("Inf")},
		{"2026-01-15", dataset.Text("2026-01-15")},
		{"9007199254740993", dataset.Text("9007199254740993")},
		{" ", dataset.Text(" ")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assertValue(t, coerceCell(tt.raw), tt.want)
		})
	}
}

func TestParseCSVSkipsBlankLines(t *testing.T) {
	ds, err := ParseCSV("\n\nname,age\n\nAlice,25\n\n\nBob,30\n\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("rows = %d, want 2", ds.Len())
	}
	assertValue(t, ds.Value(1, "name"), dataset.Text("Bob"))
}

func TestParseCSVRaggedRows(t *testing.T) {
	ds, err := ParseCSV("a,b,c\n1,2\n4,5,6,7\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	// Columns come from the first row only.
	if got := ds.Columns(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("columns = %v, want [a b]", got)
	}
	if _, ok := ds.Row(0)["c"]; ok {
		t.Error("short row should omit the missing key")
	}
	assertValue(t, ds.Value(1, "c"), dataset.Number(6))
	if len(ds.Row(1)) != 3 {
		t.Errorf("extra field should be dropped, got %d keys", len(ds.Row(1)))
	}
}

func TestParseCSVDuplicateHeaders(t *testing.T) {
	ds, err := ParseCSV("x,x,x_1\n1,2,3\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := []string{"x", "x_1", "x_1_1"}
	if got := ds.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
}

func TestParseCSVQuotedFields(t *testing.T) {
	ds, err := ParseCSV("city,note\n\"San Francisco, CA\",\"said \"\"hi\"\"\"\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	assertValue(t, ds.Value(0, "city"), dataset.Text("San Francisco, CA"))
	assertValue(t, ds.Value(0, "note"), dataset.Text(`said "hi"`))
}

func TestParseCSVDelimiters(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []Option
	}{
		{"semicolon", "name;age\nAlice;25\n", nil},
		{"tab", "name\tage\nAlice\t25\n", nil},
		{"pipe", "name|age\nAlice|25\n", nil},
		{"forced", "name;age\nAlice;25\n", []Option{WithDelimiter(';')}},
		{"quoted semicolons", "\"name; full\",age\nAlice,25\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ParseCSV(tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("ParseCSV failed: %v", err)
			}
			if got := ds.Columns(); len(got) != 2 || got[1] != "age" {
				t.Errorf("columns = %v", got)
			}
			assertValue(t, ds.Value(0, "age"), dataset.Number(25))
		})
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"\n\na\tb", '\t'},
		{"single", ','},
		{"a,b;c", ','},
		{"\"city; state; zip\",count\nBoston,1", ','},
		{"\"a,b,c\";d;e\n1;2;3", ';'},
		{"\"multi\nline|x|y\",z,w", ','},
	}
	for _, tt := range tests {
		if got := DetectDelimiter(tt.text); got != tt.want {
			t.Errorf("DetectDelimiter(%q) = %s, want %s", tt.text, DelimiterName(got), DelimiterName(tt.want))
		}
	}
}

func TestParseCSVQuotedHeaderDelimiter(t *testing.T) {
	ds, err := ParseCSV("\"city; state; zip\",count\nBoston,1\nAustin,2\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("rows = %d, want 2", ds.Len())
	}
	assertValue(t, ds.Value(1, "city; state; zip"), dataset.Text("Austin"))
	assertValue(t, ds.Value(1, "count"), dataset.Number(2))
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"quote inside quoted field", "a,b\n1,\"x\"y\n2,3\n"},
		{"bare quote", "a,b\n1,x\"y\n2,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ds, err := ParseCSV(tt.text, WithLogger(log.New(&buf, "", 0)))
			if err != nil {
				t.Fatalf("ParseCSV failed: %v", err)
			}
			if ds.Len() != 1 {
				t.Fatalf("rows = %d, want 1", ds.Len())
			}
			assertValue(t, ds.Value(0, "a"), dataset.Number(2))
			assertValue(t, ds.Value(0, "b"), dataset.Number(3))
			if !strings.Contains(buf.String(), "skipping malformed row at line 2") {
				t.Errorf("missing skip warning in %q", buf.String())
			}
		})
	}
}

func TestParseCSVErrors(t *testing.T) {
	if _, err := ParseCSV("   \n\t\n"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("whitespace input: expected ErrEmptyInput, got %v", err)
	}
	if _, err := ParseCSV("name,age\n"); !errors.Is(err, ErrNoRows) {
		t.Errorf("header only: expected ErrNoRows, got %v", err)
	}
}

func TestParseCSVStripsBOM(t *testing.T) {
	ds, err := ParseCSV("\ufeffname,age\nAlice,25\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if !ds.HasColumn("name") {
		t.Errorf("BOM leaked into header: %v", ds.Columns())
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertValue(t *testing.T, got, want dataset.Value) {
	t.Helper()
	if got != want {
		t.Errorf("value = %s(%v), want %s(%v)", got.Kind(), got, want.Kind(), want)
	}
}
