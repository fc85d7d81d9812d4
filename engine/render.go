package engine

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

// ============================================================================
// RENDERERS — Sinks that consume a Spec
// ============================================================================
// Any charting backend that understands the Vega-Lite v5 schema can sit
// behind Renderer. A nil spec is not an error: sinks show Placeholder.
// ============================================================================

// Placeholder is shown instead of a chart when no spec can be assembled.
const Placeholder = "Select fields to create a chart"

// Renderer consumes an assembled spec.
type Renderer interface {
	Render(spec *Spec) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(spec *Spec) error

// Render calls f(spec).
func (f RendererFunc) Render(spec *Spec) error { return f(spec) }

// ============================================================================
// JSON SINK
// ============================================================================

// JSONRenderer writes the spec as JSON, one document per Render call.
type JSONRenderer struct {
	w      io.Writer
	indent bool
}

// NewJSONRenderer returns a JSON sink. indent selects pretty output.
func NewJSONRenderer(w io.Writer, indent bool) *JSONRenderer {
	return &JSONRenderer{w: w, indent: indent}
}

// Render writes spec, or the placeholder line when spec is nil.
func (r *JSONRenderer) Render(spec *Spec) error {
	if spec == nil {
		_, err := fmt.Fprintln(r.w, Placeholder)
		return err
	}

	var out []byte
	var err error
	if r.indent {
		out, err = json.MarshalIndent(spec, "", "  ")
	} else {
		out, err = json.Marshal(spec)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal spec: %w", err)
	}

	_, err = fmt.Fprintln(r.w, string(out))
	return err
}

// ============================================================================
// HTML SINK — standalone page using vega-embed
// ============================================================================

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
</head>
<body>
{{- if .Spec}}
  <div id="{{.ElementID}}"></div>
  <p class="caption">{{.Summary}}</p>
  <script>
    vegaEmbed({{.Selector}}, {{.Spec}}, {actions: false});
  </script>
{{- else}}
  <p>{{.Placeholder}}</p>
{{- end}}
</body>
</html>
`))

// HTMLRenderer writes a self-contained HTML page embedding the chart.
type HTMLRenderer struct {
	w         io.Writer
	Title     string
	ElementID string
}

// NewHTMLRenderer returns an HTML sink with default title and element id.
func NewHTMLRenderer(w io.Writer) *HTMLRenderer {
	return &HTMLRenderer{
		w:         w,
		Title:     "Simple Data Viz",
		ElementID: "vis",
	}
}

// Render writes the page. The spec is JSON-encoded by the template engine.
func (r *HTMLRenderer) Render(spec *Spec) error {
	page := struct {
		Title       string
		ElementID   string
		Selector    string
		Spec        *Spec
		Summary     string
		Placeholder string
	}{
		Title:       r.Title,
		ElementID:   r.ElementID,
		Selector:    "#" + r.ElementID,
		Spec:        spec,
		Summary:     Summarize(spec),
		Placeholder: Placeholder,
	}

	if err := pageTemplate.Execute(r.w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
