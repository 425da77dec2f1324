package models

// SheetData represents the rows read from the first worksheet of a workbook.
type SheetData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the worksheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Rows contains every row in sheet order, including blank ones.
	Rows []Row `json:"rows,omitempty"`
}
