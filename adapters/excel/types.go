package excel

import "dasbor/domain/sheet"

// WorkbookData holds everything read from one workbook or CSV file.
// SheetNames preserves the workbook's sheet order, which map iteration
// would otherwise lose.
type WorkbookData struct {
	SheetNames []string         // Sheets in workbook order
	Sheets     sheet.Collection // Compact headers/data form per sheet
}
