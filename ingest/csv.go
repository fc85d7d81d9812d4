package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// CSV INGESTION — Raw text → *dataset.Dataset
// ============================================================================
// Rules:
//   - first non-empty line is the header; duplicate names get _1, _2 suffixes
//   - every later non-empty line is one row; blank lines are skipped
//   - "true"/"TRUE"/"false"/"FALSE" → bool, "" → null
//   - plain decimal/exponent numbers within ±2^53 → number, everything else text
//   - extra trailing fields are dropped; short rows omit the missing keys
//   - a row with a stray quote is logged and skipped
//
// Columns come from the first row's keys and are not recomputed per row.
// ============================================================================

// numberPattern accepts the plain forms a spreadsheet export produces:
// "42", "-3.5", ".5", "7.", "1e6". Hex, "Inf", "NaN" and "1,234" stay text.
var numberPattern = regexp.MustCompile(`^\s*-?(\d+\.?|\.\d+|\d+\.\d+)([eE][-+]?\d+)?\s*$`)

// maxSafeNumber bounds coerced numbers to the exactly representable integer range.
const maxSafeNumber = float64(1 << 53)

// ParseCSV parses delimited text with a header row into a Dataset.
// Returns ErrEmptyInput for blank text and ErrNoRows when only a header is present.
func ParseCSV(text string, opts ...Option) (*dataset.Dataset, error) {
	return ParseCSVContext(context.Background(), text, opts...)
}

// ParseCSVContext is ParseCSV with cancellation checked between rows.
func ParseCSVContext(ctx context.Context, text string, opts ...Option) (*dataset.Dataset, error) {
	cfg := applyOptions(opts)

	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = DetectDelimiter(text)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	// Read header
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", ErrMalformed, err)
	}
	keys := uniqueHeaders(headers)

	// Read rows
	var rows []dataset.Row
	var columns []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				cfg.Logger.Printf("⚠️ ingest: skipping malformed row at line %d: %v", pe.Line, pe.Err)
				continue
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		width := len(record)
		if width > len(keys) {
			width = len(keys)
		}

		row := make(dataset.Row, width)
		for i := 0; i < width; i++ {
			row[keys[i]] = coerceCell(record[i])
		}

		if columns == nil {
			columns = keys[:width]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return dataset.New(columns, rows)
}

// coerceCell applies the parser's dynamic typing to one raw cell.
func coerceCell(raw string) dataset.Value {
	switch raw {
	case "":
		return dataset.Null()
	case "true", "TRUE":
		return dataset.Bool(true)
	case "false", "FALSE":
		return dataset.Bool(false)
	}

	if numberPattern.MatchString(raw) {
		f, err := cast.ToFloat64E(strings.TrimSpace(raw))
		if err == nil && f > -maxSafeNumber && f < maxSafeNumber {
			return dataset.Number(f)
		}
	}

	return dataset.Text(raw)
}

// uniqueHeaders renames repeated header names: a, a → a, a_1.
func uniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	taken := make(map[string]bool, len(headers))
	counts := make(map[string]int)

	for i, h := range headers {
		name := h
		for taken[name] {
			counts[h]++
			name = fmt.Sprintf("%s_%d", h, counts[h])
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

// ============================================================================
// DELIMITER DETECTION
// ============================================================================

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// DetectDelimiter picks the candidate that occurs most often outside quotes
// in the header record. Ties go to the earlier candidate; no candidate means
// comma.
func DetectDelimiter(text string) rune {
	counts := make(map[rune]int, len(delimiterCandidates))
	inQuotes := false
	for _, r := range headerRecord(text) {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best := ','
	bestCount := 0
	for _, sep := range delimiterCandidates {
		if n := counts[sep]; n > bestCount {
			best = sep
			bestCount = n
		}
	}
	return best
}

// headerRecord returns the text from the first non-blank line up to the first
// newline that is not inside a quoted field.
func headerRecord(text string) string {
	for text != "" {
		line, rest, _ := strings.Cut(text, "\n")
		if strings.TrimSpace(line) != "" {
			break
		}
		text = rest
	}

	inQuotes := false
	for i, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == '\n' && !inQuotes:
			return text[:i]
		}
	}
	return text
}

// DelimiterName returns a human-readable name for a delimiter.
func DelimiterName(sep rune) string {
	switch sep {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(sep)
	}
}
