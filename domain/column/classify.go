package column

import (
	"regexp"
	"strings"

	"dasbor/domain/cell"
)

// Kind buckets a column for display and profiling purposes
type Kind string

const (
	KindDate    Kind = "date"
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// bulanPattern matches month-indexed column names like "Bulan 1" or
// "BULAN10". Plain "Bulan" with no trailing digits does not match.
var bulanPattern = regexp.MustCompile(`(?i)bulan\s*[0-9]+`)

// numericShareThreshold is the fraction of present values that must parse
// as numbers before a column is treated as numeric for profiling.
const numericShareThreshold = 0.8

// IsDateColumn reports whether a column name denotes a date/time column.
// The heuristic is name-only: it looks for the Indonesian "tanggal", the
// English "date", or a "bulan N" month index, all case-insensitively.
func IsDateColumn(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "tanggal") || strings.Contains(lower, "date") {
		return true
	}
	return bulanPattern.MatchString(name)
}

// Classify buckets a column by its name and a sample of its values.
// Date wins over everything (name heuristic); otherwise the column is
// numeric when at least 80% of its present values coerce to numbers.
func Classify(name string, values []interface{}) Kind {
	if IsDateColumn(name) {
		return KindDate
	}

	present := 0
	numeric := 0
	for _, raw := range values {
		cv := cell.Canonicalize(raw)
		if cv.IsAbsent() {
			continue
		}
		present++
		if cv.IsNumeric() {
			numeric++
		}
	}

	if present > 0 && float64(numeric)/float64(present) >= numericShareThreshold {
		return KindNumeric
	}
	return KindText
}
