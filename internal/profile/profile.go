package profile

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"dasbor/domain/cell"
	"dasbor/domain/column"
	"dasbor/domain/sheet"
)

// ColumnSummary holds the numeric profile of one column
type ColumnSummary struct {
	Name    string      `json:"name"`
	Kind    column.Kind `json:"kind"`
	Count   int         `json:"count"`
	Missing int         `json:"missing"`
	Mean    float64     `json:"mean"`
	Median  float64     `json:"median"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
	Sum     float64     `json:"sum"`
}

// Correlation is the Pearson correlation between two numeric columns
type Correlation struct {
	X string  `json:"x"`
	Y string  `json:"y"`
	R float64 `json:"r"`
}

// SheetProfile bundles the per-column summaries and numeric-pair
// correlations for one converted sheet.
type SheetProfile struct {
	Sheet        string          `json:"sheet"`
	Columns      []ColumnSummary `json:"columns"`
	Correlations []Correlation   `json:"correlations"`
}

// Summarize profiles every column of a converted sheet. Columns keep the
// header order. Date columns (per the name classifier) are bucketed but
// never profiled numerically, so month-index headers like "Bulan 3" do
// not pollute the correlation matrix.
func Summarize(name string, headers []string, records []sheet.Record) SheetProfile {
	prof := SheetProfile{Sheet: name}
	numericSeries := make(map[string][]float64)

	for _, header := range headers {
		values := make([]interface{}, 0, len(records))
		for _, rec := range records {
			values = append(values, rec[header])
		}

		kind := column.Classify(header, values)
		summary := ColumnSummary{Name: header, Kind: kind}

		var series []float64
		for _, raw := range values {
			cv := cell.Canonicalize(raw)
			if cv.IsAbsent() {
				summary.Missing++
				continue
			}
			if kind == column.KindNumeric && cv.IsNumeric() {
				series = append(series, cv.AsFloat64())
			}
		}
		summary.Count = len(values) - summary.Missing

		if len(series) > 0 {
			summary.Mean, _ = stats.Mean(series)
			summary.Median, _ = stats.Median(series)
			summary.Min, _ = stats.Min(series)
			summary.Max, _ = stats.Max(series)
			summary.Sum, _ = stats.Sum(series)
			if len(series) == len(records) {
				numericSeries[header] = series
			}
		}

		prof.Columns = append(prof.Columns, summary)
	}

	prof.Correlations = correlations(numericSeries)
	return prof
}

// correlations computes Pearson r for every pair of complete numeric
// columns, in deterministic name order. Columns with missing cells are
// excluded upstream so the series stay aligned row for row.
func correlations(series map[string][]float64) []Correlation {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Correlation
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			x := series[names[i]]
			y := series[names[j]]
			if len(x) != len(y) || len(x) < 2 {
				continue
			}
			out = append(out, Correlation{
				X: names[i],
				Y: names[j],
				R: stat.Correlation(x, y, nil),
			})
		}
	}
	return out
}
