package session

import (
	"log"

	"github.com/gitmvp-com/simple-data-viz/engine"
	"github.com/gitmvp-com/simple-data-viz/ingest"
)

// ============================================================================
// SESSION OPTIONS — Functional options for New()
// ============================================================================

// Option configures a Session via functional options pattern.
type Option func(*config)

type config struct {
	Renderer   engine.Renderer // nil = state changes are not rendered
	Logger     *log.Logger
	CSVOptions []ingest.Option // forwarded to the CSV adapter
}

// WithRenderer sets the sink that receives the spec after every state change.
func WithRenderer(r engine.Renderer) Option {
	return func(c *config) {
		c.Renderer = r
	}
}

// WithLogger replaces the standard logger for progress messages.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.Logger = l
	}
}

// WithCSVOptions passes parser options to pasted text and CSV files.
func WithCSVOptions(opts ...ingest.Option) Option {
	return func(c *config) {
		c.CSVOptions = append(c.CSVOptions, opts...)
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger: log.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return cfg
}
