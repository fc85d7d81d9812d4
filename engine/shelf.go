package engine

import (
	"fmt"
	"strings"

	"github.com/gitmvp-com/simple-data-viz/dataset"
)

// ============================================================================
// SHELF — Encoding state for the x, y and color slots
// ============================================================================
// A Shelf is a value. Transitions return a new Shelf and leave the receiver
// untouched, so two snapshots never share mutable state.
//
// Only two transitions exist:
//   SetField — bind/clear a column; the type resets to the inferred default
//   SetType  — override the type of a bound slot; no-op on an empty slot
// ============================================================================

type slot struct {
	field Field
	set   bool
}

// Shelf holds up to one Field per channel. The zero Shelf is empty.
type Shelf struct {
	slots [3]slot
}

// Get returns the binding for ch. ok is false when the slot is empty.
func (s Shelf) Get(ch Channel) (Field, bool) {
	i, valid := ch.index()
	if !valid || !s.slots[i].set {
		return Field{}, false
	}
	return s.slots[i].field, true
}

// IsEmpty reports whether no slot is bound.
func (s Shelf) IsEmpty() bool {
	for _, sl := range s.slots {
		if sl.set {
			return false
		}
	}
	return true
}

// SetField binds column to ch with its inferred type, discarding any earlier
// override for that slot, including when the same column is re-selected.
// An empty column clears the slot.
func (s Shelf) SetField(ds *dataset.Dataset, ch Channel, column string) (Shelf, error) {
	i, ok := ch.index()
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}

	if column == "" {
		s.slots[i] = slot{}
		return s, nil
	}

	if !ds.HasColumn(column) {
		return s, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	s.slots[i] = slot{
		field: Field{Name: column, Type: InferFieldType(ds, column)},
		set:   true,
	}
	return s, nil
}

// SetType replaces the field type of the binding on ch, keeping the column.
// The type is not checked against the column's data.
func (s Shelf) SetType(ch Channel, t FieldType) (Shelf, error) {
	i, ok := ch.index()
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
	if !t.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}

	if !s.slots[i].set {
		return s, nil
	}

	s.slots[i].field.Type = t
	return s, nil
}

// Encoding returns the bound slots keyed by channel.
func (s Shelf) Encoding() map[Channel]Field {
	enc := make(map[Channel]Field, len(Channels))
	for _, ch := range Channels {
		if f, ok := s.Get(ch); ok {
			enc[ch] = f
		}
	}
	return enc
}

// String renders the shelf as "x=age:quantitative y=- color=-".
func (s Shelf) String() string {
	parts := make([]string, 0, len(Channels))
	for _, ch := range Channels {
		val := "-"
		if f, ok := s.Get(ch); ok {
			val = f.String()
		}
		parts = append(parts, string(ch)+"="+val)
	}
	return strings.Join(parts, " ")
}
