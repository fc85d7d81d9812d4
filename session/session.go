package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gitmvp-com/simple-data-viz/dataset"
	"github.com/gitmvp-com/simple-data-viz/engine"
	"github.com/gitmvp-com/simple-data-viz/ingest"
)

// ============================================================================
// SESSION — Single owner of the application state
// ============================================================================
// Entry points:
//   Ingest(ctx, name, data) — file upload, adapter chosen by extension
//   IngestText(ctx, text)   — pasted CSV
//   LoadSample()            — bundled demo table
//   Dispatch(action)        — shelf, mark and reset actions
//
// Each call runs to completion before the next; a Session is not safe for
// concurrent use. The renderer sees the new spec whenever the snapshot
// changes, and nothing when an action is rejected or has no effect.
// ============================================================================

// Session holds the current Snapshot and forwards changes to a renderer.
type Session struct {
	state Snapshot
	cfg   *config
}

// New returns a Session in the pre-load state.
//
// Options:
//   - WithRenderer(r) — receives the spec after every change
//   - WithLogger(l) — destination for progress messages
//   - WithCSVOptions(opts...) — parser options for CSV input
func New(opts ...Option) *Session {
	return &Session{
		state: Initial(),
		cfg:   applyOptions(opts),
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return s.state
}

// Dispatch applies a to the current state.
func (s *Session) Dispatch(a Action) error {
	next, err := Apply(s.state, a)
	if err != nil {
		s.cfg.Logger.Printf("⚠️ Session: %s rejected: %v", a, err)
		return err
	}
	if next == s.state {
		return nil
	}

	s.state = next
	s.cfg.Logger.Printf("🧭 Session: %s → %s [%s]", a, engine.Summarize(next.Spec()), next.Shelf)
	return s.render()
}

// Ingest parses an uploaded file and loads it. Parsing is skipped entirely
// while a dataset is loaded.
func (s *Session) Ingest(ctx context.Context, name string, data []byte) error {
	if s.state.Loaded() {
		return ErrAlreadyLoaded
	}

	s.cfg.Logger.Printf("📥 Session: reading %s (%s)", filepath.Base(name), ingest.DetectFormat(name))
	ds, err := ingest.Load(ctx, name, data, s.csvOptions()...)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filepath.Base(name), err)
	}
	return s.load(ds)
}

// IngestText parses pasted CSV text and loads it. Whitespace-only text is
// rejected with ingest.ErrEmptyInput.
func (s *Session) IngestText(ctx context.Context, text string) error {
	if s.state.Loaded() {
		return ErrAlreadyLoaded
	}

	ds, err := ingest.ParseCSVContext(ctx, text, s.csvOptions()...)
	if err != nil {
		return fmt.Errorf("failed to parse pasted data: %w", err)
	}
	return s.load(ds)
}

// LoadSample loads the bundled demo dataset.
func (s *Session) LoadSample() error {
	if s.state.Loaded() {
		return ErrAlreadyLoaded
	}

	ds, err := ingest.Sample()
	if err != nil {
		return fmt.Errorf("failed to load sample: %w", err)
	}
	return s.load(ds)
}

func (s *Session) load(ds *dataset.Dataset) error {
	if err := s.Dispatch(Load{Dataset: ds}); err != nil {
		return err
	}
	if s.state.Loaded() {
		s.cfg.Logger.Printf("📊 Session: loaded %d rows × %d columns (load %s)",
			ds.Len(), ds.ColumnCount(), s.state.LoadID)
	}
	return nil
}

// csvOptions routes parser warnings to the session logger. Caller options
// come last so an explicit ingest.WithLogger still wins.
func (s *Session) csvOptions() []ingest.Option {
	return append([]ingest.Option{ingest.WithLogger(s.cfg.Logger)}, s.cfg.CSVOptions...)
}

func (s *Session) render() error {
	if s.cfg.Renderer == nil {
		return nil
	}
	if err := s.cfg.Renderer.Render(s.state.Spec()); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
