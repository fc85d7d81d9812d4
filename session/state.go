package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gitmvp-com/simple-data-viz/dataset"
	"github.com/gitmvp-com/simple-data-viz/engine"
)

// ============================================================================
// STATE MACHINE — Snapshot + Action → Snapshot
// ============================================================================
// Two phases:
//   pre-load  — Dataset is nil; only Load and Reset are accepted
//   loaded    — shelf and mark actions apply; Load is refused until Reset
//
// Apply never mutates its input. A failed action returns the input
// snapshot together with the error.
// ============================================================================

// Snapshot is the complete application state at one point in time.
// Snapshots are comparable with ==.
type Snapshot struct {
	Dataset *dataset.Dataset
	Shelf   engine.Shelf
	Mark    engine.Mark
	LoadID  string // fresh for every successful load
}

// Initial returns the pre-load state.
func Initial() Snapshot {
	return Snapshot{Mark: engine.DefaultMark}
}

// Loaded reports whether a dataset is present.
func (s Snapshot) Loaded() bool {
	return s.Dataset != nil
}

// Spec assembles the chart for s, or nil when there is nothing to draw.
func (s Snapshot) Spec() *engine.Spec {
	if !s.Loaded() {
		return nil
	}
	return engine.Assemble(s.Dataset, s.Mark, s.Shelf)
}

// ============================================================================
// ACTIONS
// ============================================================================

// Action is one user intent. The set is closed: Load, Reset, SetMark,
// SetField and SetType.
type Action interface {
	fmt.Stringer
	action()
}

// Load installs a dataset. An empty ID is replaced by a random UUID.
type Load struct {
	Dataset *dataset.Dataset
	ID      string
}

// Reset discards the dataset and returns to pre-load.
type Reset struct{}

// SetMark selects the chart kind.
type SetMark struct {
	Mark engine.Mark
}

// SetField binds a column to a channel. An empty Column clears the slot.
type SetField struct {
	Channel engine.Channel
	Column  string
}

// SetType overrides the field type on a bound channel.
type SetType struct {
	Channel engine.Channel
	Type    engine.FieldType
}

func (Load) action()     {}
func (Reset) action()    {}
func (SetMark) action()  {}
func (SetField) action() {}
func (SetType) action()  {}

func (a Load) String() string {
	return fmt.Sprintf("load(%d rows)", a.Dataset.Len())
}

func (Reset) String() string { return "reset" }

func (a SetMark) String() string { return "mark(" + string(a.Mark) + ")" }

func (a SetField) String() string {
	col := a.Column
	if col == "" {
		col = "-"
	}
	return fmt.Sprintf("field(%s=%s)", a.Channel, col)
}

func (a SetType) String() string {
	return fmt.Sprintf("type(%s=%s)", a.Channel, a.Type)
}

// ============================================================================
// TRANSITIONS
// ============================================================================

// Apply returns the state that results from performing a on s.
func Apply(s Snapshot, a Action) (Snapshot, error) {
	switch a := a.(type) {
	case Load:
		return applyLoad(s, a)

	case Reset:
		return Initial(), nil

	case SetMark:
		if !s.Loaded() {
			return s, ErrNotLoaded
		}
		if !a.Mark.Valid() {
			return s, fmt.Errorf("%w: %q", engine.ErrUnknownMark, a.Mark)
		}
		s.Mark = a.Mark
		return s, nil

	case SetField:
		if !s.Loaded() {
			return s, ErrNotLoaded
		}
		shelf, err := s.Shelf.SetField(s.Dataset, a.Channel, a.Column)
		if err != nil {
			return s, err
		}
		s.Shelf = shelf
		return s, nil

	case SetType:
		if !s.Loaded() {
			return s, ErrNotLoaded
		}
		shelf, err := s.Shelf.SetType(a.Channel, a.Type)
		if err != nil {
			return s, err
		}
		s.Shelf = shelf
		return s, nil

	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

// applyLoad starts a fresh chart: empty shelf, default mark. An empty
// dataset leaves s in the pre-load phase.
func applyLoad(s Snapshot, a Load) (Snapshot, error) {
	if s.Loaded() {
		return s, ErrAlreadyLoaded
	}
	if a.Dataset.IsEmpty() {
		return s, nil
	}

	id := a.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Snapshot{
		Dataset: a.Dataset,
		Mark:    engine.DefaultMark,
		LoadID:  id,
	}, nil
}
