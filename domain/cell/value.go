package cell

import (
	"math"
	"strconv"
	"strings"
)

// Kind defines the storage type for canonicalized cell values
type Kind string

const (
	KindAbsent  Kind = "absent"
	KindInvalid Kind = "invalid"
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Value represents a cell value after deterministic canonicalization.
// Raw dashboard data arrives untyped (numbers, numeric-looking strings,
// nils, arbitrary junk); Value pins each one to exactly one kind so that
// downstream formatting never has to re-inspect the raw input.
type Value struct {
	Kind       Kind     `json:"kind"`
	NumericVal *float64 `json:"numeric_val,omitempty"`
	TextVal    *string  `json:"text_val,omitempty"`
}

// Absent creates the explicit "no value here" marker
func Absent() Value {
	return Value{Kind: KindAbsent}
}

// Invalid creates a value for input that cannot be rendered
func Invalid() Value {
	return Value{Kind: KindInvalid}
}

// Numeric creates a numeric value
func Numeric(n float64) Value {
	return Value{Kind: KindNumeric, NumericVal: &n}
}

// Text creates a text value
func Text(s string) Value {
	return Value{Kind: KindText, TextVal: &s}
}

// IsNumeric returns true if the value holds a usable number
func (v Value) IsNumeric() bool {
	return v.Kind == KindNumeric && v.NumericVal != nil
}

// IsAbsent returns true for the explicit missing marker
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// IsText returns true if the value holds non-numeric text
func (v Value) IsText() bool {
	return v.Kind == KindText && v.TextVal != nil
}

// AsFloat64 returns the numeric payload, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumericVal != nil {
		return *v.NumericVal
	}
	return 0.0
}

// AsString returns the text payload, or empty string if not text
func (v Value) AsString() string {
	if v.TextVal != nil {
		return *v.TextVal
	}
	return ""
}

// String returns a debug representation of the value
func (v Value) String() string {
	switch v.Kind {
	case KindNumeric:
		if v.NumericVal != nil {
			return strconv.FormatFloat(*v.NumericVal, 'f', -1, 64)
		}
	case KindText:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindAbsent:
		return "<absent>"
	}
	return "<invalid>"
}

// Canonicalize converts an unknown raw value to a tagged Value using the
// lenient coercion rule shared by the display formatters: nil is absent,
// native numbers must be finite, and strings are accepted when the whole
// trimmed text parses as a number ("12345" yes, "12.34xyz" no). Anything
// else is invalid rather than an error; the render path never crashes on
// bad data.
func Canonicalize(raw interface{}) Value {
	if raw == nil {
		return Absent()
	}

	if f, ok := asFloat(raw); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Invalid()
		}
		return Numeric(f)
	}

	if s, ok := raw.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return Absent()
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return Invalid()
			}
			return Numeric(f)
		}
		return Text(s)
	}

	// Bools, boxed numbers (json.Number), slices, structs: not renderable
	return Invalid()
}

// IsNumericValue reports whether a raw value is already a usable number.
// This is the strict gate: only native numeric types count, and the value
// must be finite. Numeric strings and boxed numbers deliberately fail here
// even though Canonicalize would coerce them.
func IsNumericValue(raw interface{}) bool {
	f, ok := asFloat(raw)
	if !ok {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// asFloat widens any builtin numeric type to float64. Returns false for
// everything else, including json.Number and fmt.Stringer wrappers.
func asFloat(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
