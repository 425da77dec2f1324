package parser

import (
	"errors"
	"path/filepath"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheet indicates the workbook has no worksheet.
var ErrNoSheet = errors.New("workbook has no worksheet")

// FirstSheet returns the name of the first worksheet.
func FirstSheet(f *excelize.File) (string, error) {
	list := f.GetSheetList()
	if len(list) == 0 {
		return "", ErrNoSheet
	}
	return list[0], nil
}

// ReadSheet reads every row of a sheet and normalizes its cells.
// Blank rows are kept so that row numbers stay aligned with the sheet.
func ReadSheet(f *excelize.File, sheetName string) ([]models.Row, error) {
	rawRows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	styles := newStyleCache(f)
	result := make([]models.Row, 0, len(rawRows))
	for rowIdx, raw := range rawRows {
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]string, len(raw))
		bold := make([]bool, len(raw))

		for colIdx, rawValue := range raw {
			c, err := readCell(f, styles, sheetName, colIdx+1, rowNum, rawValue)
			if err != nil {
				return nil, err
			}
			values[colIdx] = CellString(c)
			bold[colIdx] = c.Bold
		}
		result = append(result, models.NewRow(rowNum, values, bold))
	}

	return result, nil
}

// ReadFile opens a workbook and reads its first worksheet.
func ReadFile(path string) (*models.SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := FirstSheet(f)
	if err != nil {
		return nil, err
	}
	rows, err := ReadSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	return &models.SheetData{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Rows:      rows,
	}, nil
}
