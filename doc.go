// Package dataviz turns a small table into a declarative chart.
//
// Usage:
//
//	import "github.com/gitmvp-com/simple-data-viz/session"
//
//	s := session.New(session.WithRenderer(engine.NewJSONRenderer(os.Stdout, true)))
//	_ = s.LoadSample()
//	_ = s.Dispatch(session.SetField{Channel: engine.ChannelX, Column: "age"})
//	_ = s.Dispatch(session.SetField{Channel: engine.ChannelY, Column: "score"})
//
// Data enters through the ingest package (CSV, JSON, Parquet) as a
// dataset.Dataset. The engine infers a field type from the first row when a
// column is bound, keeps the x/y/color bindings in an immutable Shelf, and
// assembles a Vega-Lite v5 spec. The session package owns the state and
// forwards every change to an engine.Renderer.
//
// Nothing here performs network I/O; the HTML renderer only references the
// vega-embed scripts by URL.
package dataviz
