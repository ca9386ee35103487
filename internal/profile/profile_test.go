package profile

import (
	"math"
	"testing"

	"dasbor/domain/column"
	"dasbor/domain/sheet"
)

func testRecords() ([]string, []sheet.Record) {
	headers := []string{"Tanggal Transaksi", "Item", "Jumlah", "Total"}
	tbl := sheet.Table{
		Headers: headers,
		Data: [][]interface{}{
			{"2024-01-01", "Kopi", 2, 56000.0},
			{"2024-01-02", "Teh", 4, 50000.0},
			{"2024-01-03", "Gula", 6, "96000"},
			{"2024-01-04", "Beras", 8, 624000.0},
		},
	}
	return headers, tbl.Records()
}

// TestSummarize tests per-column profiling of a converted sheet
func TestSummarize(t *testing.T) {
	headers, records := testRecords()
	prof := Summarize("Penjualan", headers, records)

	if prof.Sheet != "Penjualan" {
		t.Errorf("sheet name = %q", prof.Sheet)
	}
	if len(prof.Columns) != len(headers) {
		t.Fatalf("expected %d column summaries, got %d", len(headers), len(prof.Columns))
	}

	byName := make(map[string]ColumnSummary)
	for _, col := range prof.Columns {
		byName[col.Name] = col
	}

	if byName["Tanggal Transaksi"].Kind != column.KindDate {
		t.Errorf("Tanggal Transaksi should classify as date, got %s", byName["Tanggal Transaksi"].Kind)
	}
	if byName["Item"].Kind != column.KindText {
		t.Errorf("Item should classify as text, got %s", byName["Item"].Kind)
	}

	jumlah := byName["Jumlah"]
	if jumlah.Kind != column.KindNumeric {
		t.Fatalf("Jumlah should classify as numeric, got %s", jumlah.Kind)
	}
	if jumlah.Count != 4 || jumlah.Missing != 0 {
		t.Errorf("Jumlah count/missing = %d/%d", jumlah.Count, jumlah.Missing)
	}
	if jumlah.Mean != 5 {
		t.Errorf("Jumlah mean = %v, want 5", jumlah.Mean)
	}
	if jumlah.Min != 2 || jumlah.Max != 8 {
		t.Errorf("Jumlah min/max = %v/%v", jumlah.Min, jumlah.Max)
	}
	if jumlah.Sum != 20 {
		t.Errorf("Jumlah sum = %v, want 20", jumlah.Sum)
	}

	// Numeric strings participate in the totals
	total := byName["Total"]
	if total.Sum != 826000 {
		t.Errorf("Total sum = %v, want 826000", total.Sum)
	}
}

// TestSummarizeMissing tests missing-cell accounting
func TestSummarizeMissing(t *testing.T) {
	headers := []string{"Jumlah"}
	records := []sheet.Record{
		{"Jumlah": 10},
		{"Jumlah": nil},
		{"Jumlah": ""},
		{"Jumlah": 30},
	}

	prof := Summarize("S", headers, records)
	col := prof.Columns[0]

	if col.Missing != 2 {
		t.Errorf("missing = %d, want 2", col.Missing)
	}
	if col.Count != 2 {
		t.Errorf("count = %d, want 2", col.Count)
	}
	if col.Sum != 40 {
		t.Errorf("sum = %v, want 40", col.Sum)
	}
}

// TestCorrelations tests the numeric-pair correlation matrix
func TestCorrelations(t *testing.T) {
	headers := []string{"X", "Y", "Z"}
	records := []sheet.Record{
		{"X": 1.0, "Y": 2.0, "Z": 8.0},
		{"X": 2.0, "Y": 4.0, "Z": 6.0},
		{"X": 3.0, "Y": 6.0, "Z": 4.0},
		{"X": 4.0, "Y": 8.0, "Z": 2.0},
	}

	prof := Summarize("S", headers, records)

	if len(prof.Correlations) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(prof.Correlations))
	}

	find := func(x, y string) (Correlation, bool) {
		for _, c := range prof.Correlations {
			if c.X == x && c.Y == y {
				return c, true
			}
		}
		return Correlation{}, false
	}

	xy, ok := find("X", "Y")
	if !ok {
		t.Fatal("missing X/Y pair")
	}
	if math.Abs(xy.R-1.0) > 1e-9 {
		t.Errorf("corr(X,Y) = %v, want 1", xy.R)
	}

	xz, ok := find("X", "Z")
	if !ok {
		t.Fatal("missing X/Z pair")
	}
	if math.Abs(xz.R+1.0) > 1e-9 {
		t.Errorf("corr(X,Z) = %v, want -1", xz.R)
	}
}

// TestCorrelationsSkipIncomplete tests that columns with missing cells
// stay out of the correlation matrix
func TestCorrelationsSkipIncomplete(t *testing.T) {
	headers := []string{"X", "Y"}
	records := []sheet.Record{
		{"X": 1.0, "Y": 2.0},
		{"X": 2.0, "Y": nil},
		{"X": 3.0, "Y": 6.0},
	}

	prof := Summarize("S", headers, records)
	if len(prof.Correlations) != 0 {
		t.Errorf("incomplete column should be excluded, got %v", prof.Correlations)
	}
}
