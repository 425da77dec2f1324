package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Signatur")
	f.SetCellValue(sheetName, "B1", "Titel")
	f.SetCellValue(sheetName, "C1", "Laufzeit")
	f.SetCellValue(sheetName, "B2", "Urkunden")
	f.SetCellValue(sheetName, "C2", 1450.75)
	f.SetCellValue(sheetName, "C3", true)
	f.SetCellValue(sheetName, "C4", "U 1")
	f.SetCellValue(sheetName, "D4", "Kaufbrief")

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "C4", "C4", bold); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	data, err := ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if data.BookName != "test.xlsx" || data.SheetName != sheetName {
		t.Errorf("unexpected book/sheet: %q/%q", data.BookName, data.SheetName)
	}
	rows := data.Rows
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}

	if rows[0].Cell(0) != "Signatur" || rows[0].Depth != 0 {
		t.Errorf("header row not read: %+v", rows[0])
	}

	// numeric values are truncated
	if rows[1].Cell(2) != "1450" {
		t.Errorf("Expected '1450', got %q", rows[1].Cell(2))
	}
	if rows[1].Depth != 1 || rows[1].First != "Urkunden" || rows[1].Second != "1450" {
		t.Errorf("unexpected synthetic slots: %+v", rows[1])
	}
	if rows[1].Bold {
		t.Errorf("row 2 should not be bold")
	}

	if rows[2].Cell(2) != "true" {
		t.Errorf("Expected 'true', got %q", rows[2].Cell(2))
	}

	if !rows[3].Bold || rows[3].Depth != 2 || rows[3].Second != "Kaufbrief" {
		t.Errorf("unexpected process row: %+v", rows[3])
	}

	// missing cells read as empty strings
	if rows[3].Cell(42) != "" {
		t.Errorf("missing cell should be empty")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Cell{Kind: CellBool, Raw: "1"}, "true"},
		{Cell{Kind: CellBool, Raw: "0"}, "false"},
		{Cell{Kind: CellBool, Raw: "TRUE"}, "true"},
		{Cell{Kind: CellNumber, Raw: "123"}, "123"},
		{Cell{Kind: CellNumber, Raw: "123.99"}, "123"},
		{Cell{Kind: CellNumber, Raw: "-1.5"}, "-1"},
		{Cell{Kind: CellFormula, Raw: "", Display: "42"}, "42"},
		{Cell{Kind: CellText, Raw: " Text "}, " Text "},
		{Cell{Kind: CellBlank}, ""},
		{Cell{Kind: CellOther, Raw: "#DIV/0!"}, ""},
	}

	for _, tt := range tests {
		result := CellString(tt.cell)
		if result != tt.expected {
			t.Errorf("CellString(%+v) = %q, expected %q", tt.cell, result, tt.expected)
		}
	}
}

func TestCellKind(t *testing.T) {
	tests := []struct {
		cellType excelize.CellType
		formula  string
		raw      string
		expected CellKind
	}{
		{excelize.CellTypeUnset, "", "", CellBlank},
		{excelize.CellTypeUnset, "", "100", CellNumber},
		{excelize.CellTypeUnset, "", "abc", CellText},
		{excelize.CellTypeUnset, "SUM(A1:A2)", "3", CellFormula},
		{excelize.CellTypeBool, "", "1", CellBool},
		{excelize.CellTypeSharedString, "", "x", CellText},
		{excelize.CellTypeInlineString, "", "x", CellText},
		{excelize.CellTypeError, "", "#N/A", CellOther},
	}

	for _, tt := range tests {
		result := cellKind(tt.cellType, tt.formula, tt.raw)
		if result != tt.expected {
			t.Errorf("cellKind(%v, %q, %q) = %v, expected %v",
				tt.cellType, tt.formula, tt.raw, result, tt.expected)
		}
	}
}
