package testkit

import (
	"dasbor/domain/sheet"
)

// TestKit provisions deterministic demo data for the dashboard when no
// real workbook is configured, and doubles as a fixture source in tests.
type TestKit struct {
	generator *SalesDataGenerator
}

// NewTestKit creates a test kit backed by the default demo generator
func NewTestKit() *TestKit {
	return &TestKit{generator: NewSalesDataGenerator(DefaultSalesConfig())}
}

// NewTestKitWithConfig creates a test kit with a custom generator config
func NewTestKitWithConfig(config SalesGeneratorConfig) *TestKit {
	return &TestKit{generator: NewSalesDataGenerator(config)}
}

// DemoCollection returns the demo sheets and their display order
func (k *TestKit) DemoCollection() ([]string, sheet.Collection) {
	return k.generator.GenerateCollection()
}

// DemoNotes returns the markdown notes shown on the demo dashboard
func (k *TestKit) DemoNotes() string {
	return `# Data Demo

Dasbor ini sedang menampilkan **data demo** yang dibuat otomatis.

- Lembar *Penjualan*: transaksi harian per item
- Lembar *Target Bulanan*: target pendapatan per bulan
- Atur ` + "`WORKBOOK_FILE`" + ` untuk memuat workbook sungguhan
`
}
