package engine

import (
	"fmt"
	"strings"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// ENGINE TYPES — Encodings, marks and the chart spec
// ============================================================================
// The engine is pure: no I/O besides the Renderer sinks, no logging.
// Every value here is immutable once built.
// ============================================================================

// ============================================================================
// FIELD TYPE — How a channel treats its column
// ============================================================================

// FieldType is the measurement type attached to an encoding.
type FieldType string

const (
	Quantitative FieldType = "quantitative" // continuous number axis
	Nominal      FieldType = "nominal"
	Ordinal      FieldType = "ordinal"
	Temporal     FieldType = "temporal"
)

// FieldTypes lists every field type in display order.
var FieldTypes = []FieldType{Quantitative, Nominal, Ordinal, Temporal}

// Valid reports whether t is one of the four field types.
func (t FieldType) Valid() bool {
	switch t {
	case Quantitative, Nominal, Ordinal, Temporal:
		return true
	}
	return false
}

// ParseFieldType parses a field type label, case-insensitively.
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, s)
	}
	return t, nil
}

// ============================================================================
// CHANNEL — Visual slot a column can be bound to
// ============================================================================

// Channel names an encoding slot.
type Channel string

const (
	ChannelX     Channel = "x"
	ChannelY     Channel = "y"
	ChannelColor Channel = "color"
)

// Channels lists the slots in shelf order.
var Channels = []Channel{ChannelX, ChannelY, ChannelColor}

// index maps a channel onto its shelf slot.
func (c Channel) index() (int, bool) {
	switch c {
	case ChannelX:
		return 0, true
	case ChannelY:
		return 1, true
	case ChannelColor:
		return 2, true
	}
	return -1, false
}

// ParseChannel parses a channel name, case-insensitively.
func ParseChannel(s string) (Channel, error) {
	c := Channel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := c.index(); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
	return c, nil
}

// ============================================================================
// FIELD — One column bound to one channel
// ============================================================================

// Field binds a column name to a field type.
type Field struct {
	Name string    `json:"field" yaml:"field"`
	Type FieldType `json:"type" yaml:"type"`
}

// String renders the binding as "column:type".
func (f Field) String() string {
	return f.Name + ":" + string(f.Type)
}

// ============================================================================
// MARK — Rendering primitive
// ============================================================================

// Mark selects the chart kind.
type Mark string

const (
	MarkBar   Mark = "bar"
	MarkLine  Mark = "line"
	MarkPoint Mark = "point"
	MarkArea  Mark = "area"
)

// DefaultMark is the mark selected when a dataset is first loaded.
const DefaultMark = MarkBar

// Marks lists every supported mark.
var Marks = []Mark{MarkBar, MarkLine, MarkPoint, MarkArea}

// Valid reports whether m is a supported mark.
func (m Mark) Valid() bool {
	switch m {
	case MarkBar, MarkLine, MarkPoint, MarkArea:
		return true
	}
	return false
}

// ParseMark parses a mark name. "scatter" is accepted as an alias for point.
func ParseMark(s string) (Mark, error) {
	m := Mark(strings.ToLower(strings.TrimSpace(s)))
	if m == "scatter" {
		m = MarkPoint
	}
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
	return m, nil
}

// ============================================================================
// SPEC — Declarative chart specification (Vega-Lite v5)
// ============================================================================

const (
	// SchemaURL is the versioned grammar schema the spec conforms to.
	SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

	// SpecDescription is the fixed description carried by every spec.
	SpecDescription = "A simple chart"

	// ChartWidth and ChartHeight are the fixed display dimensions.
	ChartWidth  = 400
	ChartHeight = 300
)

// Spec is the payload handed to a Renderer. It is rebuilt on every state
// change and never modified after Assemble returns it.
type Spec struct {
	Schema      string            `json:"$schema"`
	Description string            `json:"description"`
	Data        Data              `json:"data"`
	Mark        Mark              `json:"mark"`
	Encoding    map[Channel]Field `json:"encoding"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
}

// Data carries the rows inline, by reference to the loaded dataset.
type Data struct {
	Values *dataset.Dataset `json:"values"`
}
