package schema

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gitmvp-com/simple-data-viz/dataset"
	"github.com/gitmvp-com/simple-data-viz/engine"
)

// ============================================================================
// AUTO-DISCOVERY — Per-column description of a Dataset
// ============================================================================
// Per column:
//   1. Default type from engine.InferFieldType (first row only)
//   2. Null and distinct counts over every row
//   3. Sorted sample values
//   4. Cardinality hint and temporal pattern hint
//
// Steps 2-4 scan the whole column but never influence step 1.
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	Name       string // dataset name recorded in the Config
	Source     string // e.g. file name, "paste", "sample"
	MaxSamples int    // sample values per column
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		MaxSamples: 5,
	}
}

// Discover describes every column of ds. A nil or empty dataset yields a
// Config with no rows; its columns are still listed.
func Discover(ds *dataset.Dataset, opts ...DiscoverOptions) *Config {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
		if opt.MaxSamples <= 0 {
			opt.MaxSamples = DefaultDiscoverOptions().MaxSamples
		}
	}

	cfg := &Config{
		Name:           opt.Name,
		Rows:           ds.Len(),
		Columns:        make([]ColumnMeta, 0, ds.ColumnCount()),
		DiscoveredFrom: opt.Source,
		DiscoveredAt:   time.Now().UTC().Format(time.RFC3339),
	}

	for _, col := range ds.Columns() {
		cfg.Columns = append(cfg.Columns, analyzeColumn(ds, col, opt.MaxSamples))
	}
	return cfg
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

func analyzeColumn(ds *dataset.Dataset, column string, maxSamples int) ColumnMeta {
	meta := ColumnMeta{
		Key:         column,
		DisplayName: toDisplayName(column),
		DefaultType: engine.InferFieldType(ds, column),
		FirstKind:   ds.Value(0, column).Kind().String(),
	}

	unique := make(map[string]dataset.Value)
	allText := true
	for i := 0; i < ds.Len(); i++ {
		v := ds.Value(i, column)
		if v.IsNull() {
			meta.NullCount++
			continue
		}
		if v.Kind() != dataset.KindText {
			allText = false
		}
		unique[v.Kind().String()+":"+v.String()] = v
	}

	meta.DistinctCount = len(unique)
	meta.SampleValues = collectSamples(unique, maxSamples)

	switch {
	case meta.DistinctCount <= 10:
		meta.CardinalityHint = "low"
	case meta.DistinctCount <= 100:
		meta.CardinalityHint = "medium"
	default:
		meta.CardinalityHint = "high"
	}

	if allText && len(unique) > 0 {
		meta.LooksTemporal, meta.TemporalFormat = detectTemporalPattern(textValues(unique))
	}

	return meta
}

// ============================================================================
// TEMPORAL PATTERN DETECTION
// ============================================================================

var temporalPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "yyyy-MM-dd"},                   // 2026-01-15
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}`), "yyyy-MM-ddTHH:mm"}, // 2026-01-15T10:30
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"},                    // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},                             // 2026-01
	{regexp.MustCompile(`^Q[1-4]-\d{4}$`), "QN-yyyy"},                            // Q1-2026
	{regexp.MustCompile(`^Q[1-4]\s+\d{4}$`), "QN yyyy"},                          // Q1 2026
	{regexp.MustCompile(`^[A-Z][a-z]+ \d{4}$`), "MMMM yyyy"},                     // January 2026
}

// detectTemporalPattern checks if values match known date/month/quarter patterns.
// At least 80% of the values must match one pattern.
func detectTemporalPattern(values []string) (bool, string) {
	if len(values) == 0 {
		return false, ""
	}

	for _, pattern := range temporalPatterns {
		matches := 0
		for _, s := range values {
			if pattern.re.MatchString(strings.TrimSpace(s)) {
				matches++
			}
		}
		if float64(matches)/float64(len(values)) >= 0.8 {
			return true, pattern.format
		}
	}

	return false, ""
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toDisplayName cleans a header for human display.
// "story_points" → "Story Points", "assignee" → "Assignee"
func toDisplayName(s string) string {
	// Headers that already contain spaces are kept as written
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")

	return cases.Title(language.English).String(s)
}

// collectSamples picks up to maxSamples distinct values, numbers in numeric
// order and everything else lexically.
func collectSamples(unique map[string]dataset.Value, maxSamples int) []string {
	values := make([]dataset.Value, 0, len(unique))
	for _, v := range unique {
		values = append(values, v)
	}

	// Sort for deterministic output
	sort.Slice(values, func(i, j int) bool {
		return lessValue(values[i], values[j])
	})

	if len(values) > maxSamples {
		values = values[:maxSamples]
	}

	samples := make([]string, len(values))
	for i, v := range values {
		samples[i] = v.String()
	}
	return samples
}

func lessValue(a, b dataset.Value) bool {
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	if x, ok := a.Float(); ok {
		y, _ := b.Float()
		return x < y
	}
	return a.String() < b.String()
}

func textValues(unique map[string]dataset.Value) []string {
	out := make([]string, 0, len(unique))
	for _, v := range unique {
		if s, ok := v.Str(); ok {
			out = append(out, s)
		}
	}
	return out
}
