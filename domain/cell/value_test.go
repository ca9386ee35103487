package cell

import (
	"encoding/json"
	"math"
	"testing"
)

// TestIsNumericValue tests the strict native-number gate
func TestIsNumericValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected bool
	}{
		{"float64", 42.5, true},
		{"int", 7, true},
		{"int64", int64(-3), true},
		{"uint", uint(9), true},
		{"float32", float32(1.5), true},
		{"zero", 0, true},
		{"negative", -123.0, true},
		{"NaN", math.NaN(), false},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"numeric string", "12345", false},
		{"text string", "abc", false},
		{"nil", nil, false},
		{"bool", true, false},
		{"boxed number", json.Number("42"), false},
		{"slice", []int{1}, false},
	}

	for _, test := range tests {
		if got := IsNumericValue(test.input); got != test.expected {
			t.Errorf("%s: IsNumericValue(%v) = %v, want %v", test.name, test.input, got, test.expected)
		}
	}
}

// TestCanonicalize tests the lenient coercion used by the formatters
func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		wantKind Kind
	}{
		{"nil is absent", nil, KindAbsent},
		{"empty string is absent", "", KindAbsent},
		{"whitespace string is absent", "   ", KindAbsent},
		{"float is numeric", 12.5, KindNumeric},
		{"int is numeric", 100, KindNumeric},
		{"numeric string coerces", "12345", KindNumeric},
		{"decimal string coerces", "12.34", KindNumeric},
		{"negative string coerces", "-98765", KindNumeric},
		{"trailing junk is text", "12.34xyz", KindText},
		{"plain text is text", "abc", KindText},
		{"NaN is invalid", math.NaN(), KindInvalid},
		{"infinity is invalid", math.Inf(1), KindInvalid},
		{"bool is invalid", true, KindInvalid},
		{"boxed number is invalid", json.Number("42"), KindInvalid},
		{"map is invalid", map[string]int{}, KindInvalid},
	}

	for _, test := range tests {
		cv := Canonicalize(test.input)
		if cv.Kind != test.wantKind {
			t.Errorf("%s: Canonicalize(%v).Kind = %s, want %s", test.name, test.input, cv.Kind, test.wantKind)
		}
	}
}

// TestCanonicalizeNumericPayload tests that coerced numbers carry their value
func TestCanonicalizeNumericPayload(t *testing.T) {
	tests := []struct {
		input interface{}
		want  float64
	}{
		{42, 42},
		{"12345", 12345},
		{"  77 ", 77},
		{-9.5, -9.5},
	}

	for _, test := range tests {
		cv := Canonicalize(test.input)
		if !cv.IsNumeric() {
			t.Errorf("Canonicalize(%v) should be numeric", test.input)
			continue
		}
		if cv.AsFloat64() != test.want {
			t.Errorf("Canonicalize(%v).AsFloat64() = %v, want %v", test.input, cv.AsFloat64(), test.want)
		}
	}
}

// TestValueAccessors tests the tagged-type accessors
func TestValueAccessors(t *testing.T) {
	if !Absent().IsAbsent() {
		t.Error("Absent() should report absent")
	}
	if Absent().IsNumeric() {
		t.Error("Absent() should not be numeric")
	}
	if Invalid().IsNumeric() || Invalid().IsAbsent() || Invalid().IsText() {
		t.Error("Invalid() should be none of numeric/absent/text")
	}

	num := Numeric(3.5)
	if !num.IsNumeric() || num.AsFloat64() != 3.5 {
		t.Errorf("Numeric(3.5) accessor mismatch: %v", num)
	}

	txt := Text("halo")
	if !txt.IsText() || txt.AsString() != "halo" {
		t.Errorf("Text accessor mismatch: %v", txt)
	}
	if txt.AsFloat64() != 0 {
		t.Error("Text AsFloat64 should default to 0")
	}
}
