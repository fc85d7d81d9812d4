package engine

import "github.com/gitmvp-com/simple-data-viz/dataset"

// ============================================================================
// CHART BUILDER — Produces a Spec from dataset + mark + shelf
// ============================================================================
// The guard is "no x and no y": color alone never produces a chart, while a
// single axis does. What a one-axis chart looks like is up to the renderer.
//
// Field types are copied from the shelf as stored; inference already ran
// when the column was selected and is not repeated here.
// ============================================================================

// Assemble builds the chart spec, or returns nil when neither axis is bound.
func Assemble(ds *dataset.Dataset, mark Mark, shelf Shelf) *Spec {
	_, hasX := shelf.Get(ChannelX)
	_, hasY := shelf.Get(ChannelY)
	if !hasX && !hasY {
		return nil
	}

	return &Spec{
		Schema:      SchemaURL,
		Description: SpecDescription,
		Data:        Data{Values: ds},
		Mark:        mark,
		Encoding:    shelf.Encoding(),
		Width:       ChartWidth,
		Height:      ChartHeight,
	}
}
