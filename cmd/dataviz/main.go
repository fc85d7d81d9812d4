package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/gitmvp-com/simple-data-viz/engine"
	"github.com/gitmvp-com/simple-data-viz/ingest"
	"github.com/gitmvp-com/simple-data-viz/schema"
	"github.com/gitmvp-com/simple-data-viz/session"
)

// ============================================================================
// DATAVIZ CLI — Load a table, bind columns, print a chart spec
// ============================================================================

const version = "0.1.0"

// defaultPreviewRows matches the row cap of the preview table.
const defaultPreviewRows = 100

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to a CSV, JSON or Parquet file")
	paste := flag.Bool("paste", false, "Read CSV text from stdin")
	useSample := flag.Bool("sample", false, "Use the bundled sample dataset")
	delimiter := flag.String("delimiter", "", "CSV field separator (default: auto-detect)")
	shelfPath := flag.String("shelf", "", "Path to a YAML/JSON shelf file (mark + bindings)")
	mark := flag.String("mark", "", "Chart kind: bar, line, point, area")
	xCol := flag.String("x", "", "Column for the x channel")
	yCol := flag.String("y", "", "Column for the y channel")
	colorCol := flag.String("color", "", "Column for the color channel")
	xType := flag.String("x-type", "", "Override x field type")
	yType := flag.String("y-type", "", "Override y field type")
	colorType := flag.String("color-type", "", "Override color field type")
	format := flag.String("format", "json", "Output format: json, pretty, html")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	preview := flag.Bool("preview", false, "Print the data preview table and exit")
	rows := flag.Int("rows", defaultPreviewRows, "Rows shown by --preview (0 = all)")
	describe := flag.Bool("describe", false, "Print discovered column metadata and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Dataviz — Tabular data to Vega-Lite charts

Usage:
  dataviz --sample --x age --y score
  dataviz --file sales.csv --x region --y revenue --mark line --format html --out chart.html
  dataviz --file data.parquet --shelf chart.yaml --format pretty
  pbpaste | dataviz --paste --x city --color city
  dataviz --file data.csv --describe --format pretty

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  json      Vega-Lite spec as compact JSON (default)
  pretty    Pretty-printed JSON
  html      Standalone page rendered with vega-embed

Field types:
  quantitative, nominal, ordinal, temporal

When neither x nor y is bound, the output is the placeholder text
"%s".
`, engine.Placeholder)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("dataviz %s\n", version)
		os.Exit(0)
	}

	sources := 0
	for _, set := range []bool{*filePath != "", *paste, *useSample} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one of --file, --paste or --sample is required")
		flag.Usage()
		os.Exit(1)
	}

	switch *format {
	case "json", "pretty", "html":
	default:
		fatalf("Unknown format %q (want json, pretty or html)", *format)
	}

	// ── Session ───────────────────────────────────────────────────────────
	opts := []session.Option{session.WithLogger(log.Default())}
	if *delimiter != "" {
		sep, err := parseDelimiter(*delimiter)
		if err != nil {
			fatalf("%v", err)
		}
		opts = append(opts, session.WithCSVOptions(ingest.WithDelimiter(sep)))
	}
	sess := session.New(opts...)

	// ── Load data ─────────────────────────────────────────────────────────
	ctx := context.Background()
	switch {
	case *useSample:
		if err := sess.LoadSample(); err != nil {
			fatalf("%v", err)
		}
	case *paste:
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("Failed to read stdin: %v", err)
		}
		log.Printf("📋 Read %s from stdin", humanize.Bytes(uint64(len(text))))
		if err := sess.IngestText(ctx, string(text)); err != nil {
			fatalf("%v", err)
		}
	default:
		data, err := os.ReadFile(*filePath)
		if err != nil {
			fatalf("Failed to read file: %v", err)
		}
		log.Printf("📥 Read %s (%s)", *filePath, humanize.Bytes(uint64(len(data))))
		if err := sess.Ingest(ctx, *filePath, data); err != nil {
			fatalf("%v", err)
		}
	}

	snap := sess.Snapshot()
	if !snap.Loaded() {
		fatalf("No data rows found")
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Describe / preview modes ──────────────────────────────────────────
	if *describe {
		config := schema.Discover(snap.Dataset, schema.DiscoverOptions{
			Name:   sourceName(*filePath, *paste),
			Source: sourceName(*filePath, *paste),
		})
		writeJSON(writer, config, *format)
		log.Printf("🔍 Described %d columns", len(config.Columns))
		return
	}

	if *preview {
		if err := engine.WritePreview(writer, engine.BuildPreview(snap.Dataset, *rows)); err != nil {
			fatalf("Failed to write preview: %v", err)
		}
		return
	}

	// ── Shelf: file first, then flags ─────────────────────────────────────
	var actions []session.Action
	if *shelfPath != "" {
		sf, err := readShelfFile(*shelfPath)
		if err != nil {
			fatalf("Failed to read shelf file: %v", err)
		}
		fileActions, err := sf.Actions()
		if err != nil {
			fatalf("Shelf file: %v", err)
		}
		actions = append(actions, fileActions...)
	}

	if *mark != "" {
		m, err := engine.ParseMark(*mark)
		if err != nil {
			fatalf("%v", err)
		}
		actions = append(actions, session.SetMark{Mark: m})
	}

	flagBindings := []struct {
		ch           engine.Channel
		column, kind string
	}{
		{engine.ChannelX, *xCol, *xType},
		{engine.ChannelY, *yCol, *yType},
		{engine.ChannelColor, *colorCol, *colorType},
	}
	for _, fb := range flagBindings {
		more, err := bindingActions(fb.ch, fb.column, fb.kind)
		if err != nil {
			fatalf("%v", err)
		}
		actions = append(actions, more...)
	}

	for _, a := range actions {
		if err := sess.Dispatch(a); err != nil {
			fatalf("%s: %v", a, err)
		}
	}

	// ── Render output ─────────────────────────────────────────────────────
	snap = sess.Snapshot()
	spec := snap.Spec()
	if spec == nil {
		log.Printf("⚠️ Neither x nor y is bound; printing placeholder")
	}

	if err := newRenderer(writer, *format, snap.LoadID).Render(spec); err != nil {
		fatalf("%v", err)
	}
	if *outFile != "" {
		log.Printf("📄 Output written to %s", *outFile)
	}
}

// ============================================================================
// OUTPUT
// ============================================================================

func newRenderer(w io.Writer, format, loadID string) engine.Renderer {
	switch format {
	case "html":
		r := engine.NewHTMLRenderer(w)
		if len(loadID) >= 8 {
			r.ElementID = "vis-" + loadID[:8]
		}
		return r
	case "pretty":
		return engine.NewJSONRenderer(w, true)
	default:
		return engine.NewJSONRenderer(w, false)
	}
}

func writeJSON(w io.Writer, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" || format == "html" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

// parseDelimiter accepts a single character or one of the names "tab",
// "comma", "semicolon" and "pipe".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func sourceName(filePath string, paste bool) string {
	switch {
	case filePath != "":
		return filePath
	case paste:
		return "paste"
	default:
		return "sample"
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
