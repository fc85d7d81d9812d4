package ingest

import "log"

// ============================================================================
// INGEST OPTIONS — Functional options for ParseCSV()
// ============================================================================

// Option configures CSV parsing.
type Option func(*config)

type config struct {
	Delimiter rune // 0 = auto-detect from the header line
	Logger    *log.Logger
}

// WithDelimiter fixes the field separator instead of detecting it.
func WithDelimiter(sep rune) Option {
	return func(c *config) {
		c.Delimiter = sep
	}
}

// WithLogger sets the destination for skipped-row warnings.
// Default: log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.Logger = l
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return cfg
}
