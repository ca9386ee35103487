package format

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

// TestNumber tests grouped number rendering and the invalid gate
func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"thousand groups with dot", 1000, "1.000"},
		{"millions", 1234567, "1.234.567"},
		{"small number ungrouped", 999, "999"},
		{"zero", 0, "0"},
		{"numeric string accepted", "12345", "12.345"},
		{"decimal rounds up", 1234.9, "1.235"},
		{"decimal rounds down", 1234.4, "1.234"},
		{"half rounds away from zero", 2.5, "3"},
		{"negative keeps sign", -98765, "-98.765"},
		{"negative fraction rounds to zero", -0.4, "0"},
		{"nil", nil, "-"},
		{"text string", "abc", "-"},
		{"trailing junk string", "12.34xyz", "-"},
		{"NaN", math.NaN(), "-"},
		{"infinity", math.Inf(1), "-"},
		{"bool", true, "-"},
	}

	for _, test := range tests {
		if got := Number(test.input); got != test.expected {
			t.Errorf("%s: Number(%v) = %q, want %q", test.name, test.input, got, test.expected)
		}
	}
}

// TestNumberDigitsOnly tests that non-negative output contains only
// digits and the grouping separator
func TestNumberDigitsOnly(t *testing.T) {
	valid := regexp.MustCompile(`^[0-9]+(\.[0-9]{3})*$`)
	inputs := []float64{0, 1, 42, 999, 1000, 12345, 999999, 1000000, 1234567.89}

	for _, n := range inputs {
		got := Number(n)
		if !valid.MatchString(got) {
			t.Errorf("Number(%v) = %q: expected only digits grouped by dots", n, got)
		}
	}
}

// TestCurrency tests rupiah rendering
func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"zero", 0, "Rp 0"},
		{"grouped millions", 1234567, "Rp 1.234.567"},
		{"rounds up", 1234.9, "Rp 1.235"},
		{"rounds down", 1234.4, "Rp 1.234"},
		{"numeric string accepted", "50000", "Rp 50.000"},
		{"nil", nil, "-"},
		{"text", "abc", "-"},
		{"NaN", math.NaN(), "-"},
	}

	for _, test := range tests {
		if got := Currency(test.input); got != test.expected {
			t.Errorf("%s: Currency(%v) = %q, want %q", test.name, test.input, got, test.expected)
		}
	}
}

// TestCurrencyNegative tests sign, digits, and grouping without pinning
// the exact sign placement
func TestCurrencyNegative(t *testing.T) {
	got := Currency(-98765)

	if !strings.Contains(got, "-") {
		t.Errorf("Currency(-98765) = %q: missing sign", got)
	}
	if !strings.Contains(got, "Rp") {
		t.Errorf("Currency(-98765) = %q: missing currency code", got)
	}
	if !strings.Contains(got, "98.765") {
		t.Errorf("Currency(-98765) = %q: missing grouped digits", got)
	}
}

// TestInvalidGateAgreement tests that both formatters reject exactly the
// same inputs
func TestInvalidGateAgreement(t *testing.T) {
	inputs := []interface{}{
		nil, "", "   ", "abc", "12.34xyz", math.NaN(), math.Inf(-1),
		true, []int{1}, map[string]int{}, 0, 1000, "12345", -5,
	}

	for _, input := range inputs {
		numInvalid := Number(input) == Placeholder
		curInvalid := Currency(input) == Placeholder
		if numInvalid != curInvalid {
			t.Errorf("gate disagreement for %v: Number invalid=%v, Currency invalid=%v",
				input, numInvalid, curInvalid)
		}
	}
}
