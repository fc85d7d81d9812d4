package dataset

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ============================================================================
// VALUE — Tagged cell variant
// ============================================================================
// A cell is exactly one of: null, number, text, bool.
// The zero Value is null, so a key missing from a Row reads as null.
// ============================================================================

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Value is a single cell.
type Value struct {
	kind Kind
	num  float64
	text string
	flag bool
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the number held by v. ok is false for non-numeric kinds.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Str returns the text held by v. ok is false for non-text kinds.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Boolean returns the bool held by v. ok is false for non-bool kinds.
func (v Value) Boolean() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// Interface unwraps v into nil, float64, string or bool.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

// String formats v for display. Null formats as the empty string.
func (v Value) String() string {
	return cast.ToString(v.Interface())
}

// MarshalJSON encodes v as a bare JSON scalar.
// NaN and ±Inf have no JSON form and encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar. Arrays and objects are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case float64:
		*v = Number(x)
	case string:
		*v = Text(x)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("%w: %s", ErrNotScalar, string(data))
	}
	return nil
}
