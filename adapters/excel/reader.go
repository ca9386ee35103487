package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dasbor/domain/sheet"
)

// WorkbookReader handles reading Excel and CSV files into the compact
// sheet form the converter consumes.
type WorkbookReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewWorkbookReader creates a reader that handles both Excel and CSV files
func NewWorkbookReader(filePath string) *WorkbookReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &WorkbookReader{filePath: filePath, fileType: fileType}
}

// ReadWorkbook reads every sheet of the file into compact form
func (r *WorkbookReader) ReadWorkbook() (*WorkbookData, error) {
	log.Printf("[WorkbookReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcel reads every sheet of an Excel workbook, preserving sheet order
func (r *WorkbookReader) readExcel() (*WorkbookData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	log.Printf("[WorkbookReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	data := &WorkbookData{Sheets: make(sheet.Collection)}

	for _, sheetName := range f.GetSheetList() {
		readStart := time.Now()
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		log.Printf("[WorkbookReader] Sheet %q read in %.2fms (%d rows)",
			sheetName, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

		if len(rows) == 0 {
			// Empty sheets carry through as empty tables
			data.SheetNames = append(data.SheetNames, sheetName)
			data.Sheets[sheetName] = sheet.Table{}
			continue
		}

		data.SheetNames = append(data.SheetNames, sheetName)
		data.Sheets[sheetName] = compactTable(rows)
	}

	if len(data.SheetNames) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return data, nil
}

// readCSV reads a CSV file as a single sheet named after the file
func (r *WorkbookReader) readCSV() (*WorkbookData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Spreadsheet exports are often ragged; the converter pads short
	// rows and trims long ones, so accept any field count here.
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[WorkbookReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, fmt.Errorf("CSV file must have at least a header row")
	}

	sheetName := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	return &WorkbookData{
		SheetNames: []string{sheetName},
		Sheets:     sheet.Collection{sheetName: compactTable(rows)},
	}, nil
}

// compactTable converts raw string rows into the compact headers/data
// form. Header cells are trimmed; data cells keep their raw text so the
// formatter's coercion rules decide what is numeric later.
func compactTable(rows [][]string) sheet.Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	data := make([][]interface{}, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := make([]interface{}, len(rows[i]))
		for j, cellValue := range rows[i] {
			row[j] = cellValue
		}
		data = append(data, row)
	}

	return sheet.Table{Headers: headers, Data: data}
}
