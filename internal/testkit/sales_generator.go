package testkit

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"dasbor/domain/sheet"
)

// SalesGeneratorConfig configures the demo sales data generator
type SalesGeneratorConfig struct {
	MonthCount   int       `json:"month_count"`
	RowsPerMonth int       `json:"rows_per_month"`
	StartDate    time.Time `json:"start_date"`
	Seed         int64     `json:"seed"`
}

// DefaultSalesConfig returns sensible defaults for demo data generation
func DefaultSalesConfig() SalesGeneratorConfig {
	return SalesGeneratorConfig{
		MonthCount:   3,
		RowsPerMonth: 40,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:         42,
	}
}

// SalesDataGenerator generates a deterministic demo workbook shaped like
// the small-shop bookkeeping sheets the dashboard was built for.
type SalesDataGenerator struct {
	config SalesGeneratorConfig
	rng    *rand.Rand
}

// NewSalesDataGenerator creates a new sales data generator
func NewSalesDataGenerator(config SalesGeneratorConfig) *SalesDataGenerator {
	return &SalesDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var demoItems = []struct {
	name  string
	price float64
}{
	{"Kopi Bubuk", 28000},
	{"Teh Celup", 12500},
	{"Gula Pasir", 16000},
	{"Beras Premium", 78000},
	{"Minyak Goreng", 34000},
	{"Mie Instan", 3500},
	{"Telur Ayam", 29000},
}

// GenerateCollection produces the demo sheet collection: a transaction
// sheet, a wide month-indexed target sheet, and a plain passthrough notes
// entry. Sheet order matters for the dashboard, so names come back too.
func (g *SalesDataGenerator) GenerateCollection() ([]string, sheet.Collection) {
	names := []string{"Penjualan", "Target Bulanan", "Catatan"}
	return names, sheet.Collection{
		"Penjualan":      g.transactionSheet(),
		"Target Bulanan": g.targetSheet(),
		"Catatan": []interface{}{
			"Data demo dibuat otomatis",
			"Harga dalam rupiah",
		},
	}
}

// transactionSheet builds the row-per-sale sheet. About half the numeric
// cells are emitted as strings, the way spreadsheet exports arrive, so
// the lenient coercion path gets exercised on realistic input.
func (g *SalesDataGenerator) transactionSheet() sheet.Table {
	headers := []string{"Tanggal Transaksi", "Item", "Jumlah", "Harga Satuan", "Total"}

	var data [][]interface{}
	for m := 0; m < g.config.MonthCount; m++ {
		monthStart := g.config.StartDate.AddDate(0, m, 0)
		for i := 0; i < g.config.RowsPerMonth; i++ {
			item := demoItems[g.rng.Intn(len(demoItems))]
			qty := 1 + g.rng.Intn(12)
			total := float64(qty) * item.price

			day := 1 + g.rng.Intn(28)
			date := monthStart.AddDate(0, 0, day-1).Format("2006-01-02")

			row := []interface{}{date, item.name, qty, item.price, total}
			if g.rng.Intn(2) == 0 {
				row[4] = strconv.FormatFloat(total, 'f', -1, 64)
			}
			data = append(data, row)
		}
	}

	return sheet.Table{Headers: headers, Data: data}
}

// targetSheet builds the wide month-indexed sheet whose headers exercise
// the "Bulan N" date-column heuristic.
func (g *SalesDataGenerator) targetSheet() sheet.Table {
	headers := []string{"Item"}
	for m := 1; m <= g.config.MonthCount; m++ {
		headers = append(headers, fmt.Sprintf("Bulan %d", m))
	}

	var data [][]interface{}
	for _, item := range demoItems {
		row := []interface{}{item.name}
		for m := 0; m < g.config.MonthCount; m++ {
			target := item.price * float64(20+g.rng.Intn(30))
			row = append(row, target)
		}
		data = append(data, row)
	}

	return sheet.Table{Headers: headers, Data: data}
}
