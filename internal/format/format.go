package format

import (
	"math"
	"strconv"
	"strings"

	"dasbor/domain/cell"
)

// Placeholder is rendered when a value cannot be shown as a number.
// Invalid data degrades to this sentinel instead of an error so a single
// bad cell never takes down a dashboard render.
const Placeholder = "-"

// currencyCode is the literal prefix for currency rendering. The core
// targets Indonesian conventions: "Rp" prefix, dot grouping, no decimals.
const currencyCode = "Rp"

// Number renders a raw value as a dot-grouped integer string, e.g.
// 1000 -> "1.000". Numeric strings are accepted ("12345" works, "12.34xyz"
// does not); nil, absent, and non-coercible input render as the
// placeholder.
func Number(raw interface{}) string {
	f, ok := numericOf(raw)
	if !ok {
		return Placeholder
	}
	return groupFloat(f)
}

// Currency renders a raw value as rupiah: "Rp " plus the dot-grouped
// integer, rounded to zero decimals half away from zero. Negative values
// carry the sign before the currency code: -Rp 98.765. The invalid gate
// is identical to Number.
func Currency(raw interface{}) string {
	f, ok := numericOf(raw)
	if !ok {
		return Placeholder
	}
	grouped := groupFloat(f)
	if strings.HasPrefix(grouped, "-") {
		return "-" + currencyCode + " " + grouped[1:]
	}
	return currencyCode + " " + grouped
}

// numericOf applies the single canonicalization step and extracts the
// numeric payload when there is one.
func numericOf(raw interface{}) (float64, bool) {
	cv := cell.Canonicalize(raw)
	if !cv.IsNumeric() {
		return 0, false
	}
	return cv.AsFloat64(), true
}

// groupFloat rounds to zero decimals (half away from zero) and inserts
// the grouping separator. The sign survives rounding; -0.4 rounds to "0".
func groupFloat(f float64) string {
	rounded := math.Round(f)
	if rounded == 0 {
		return "0"
	}

	neg := rounded < 0
	digits := strconv.FormatFloat(math.Abs(rounded), 'f', -1, 64)
	grouped := groupDigits(digits)
	if neg {
		return "-" + grouped
	}
	return grouped
}

// groupDigits adds dot separators every 3 digits, right to left.
func groupDigits(ds string) string {
	n := len(ds)
	if n <= 3 {
		return ds
	}
	var parts []string
	for n > 3 {
		parts = append([]string{ds[n-3:]}, parts...)
		ds = ds[:n-3]
		n = len(ds)
	}
	parts = append([]string{ds}, parts...)
	return strings.Join(parts, ".")
}
