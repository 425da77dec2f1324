package parser

import (
	"strings"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadHeader builds the column name to index map from a header row.
// Blank header cells are skipped; for duplicate names the last column wins.
func ReadHeader(row models.Row) models.Header {
	header := make(models.Header, len(row.Cells))
	for i, name := range row.Cells {
		if models.IsBlank(name) {
			continue
		}
		header[name] = i
	}
	return header
}

// ResolveColumn resolves a column reference to a 0-based column index.
// The reference is looked up as a header name first. Only references made of
// one to three upper-case letters, such as "C" or "AB", fall back to column
// letters, so a misspelled header name does not silently read another column.
func ResolveColumn(header models.Header, ref string) (int, bool) {
	if ref == "" {
		return 0, false
	}
	if i, ok := header.Index(ref); ok {
		return i, true
	}
	if !isColumnLetters(ref) {
		return 0, false
	}
	n, err := excelize.ColumnNameToNumber(ref)
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// Unresolved returns the references that name neither a header column nor a
// column letter, in order and without duplicates.
func Unresolved(header models.Header, refs []string) []string {
	var missing []string
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		if _, ok := ResolveColumn(header, ref); !ok {
			missing = append(missing, ref)
		}
	}
	return missing
}

// ColumnValue returns the row value for a column reference, or "".
func ColumnValue(row models.Row, header models.Header, ref string) string {
	i, ok := ResolveColumn(header, ref)
	if !ok {
		return ""
	}
	return row.Cell(i)
}

func isColumnLetters(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r < 'A' || r > 'Z'
	}) < 0
}

// SplitRows separates the header row and the data rows. headerRow and
// dataStart are 1-based sheet row numbers; headerRow 0 means no header.
func SplitRows(rows []models.Row, headerRow, dataStart int) (models.Header, []models.Row) {
	header := models.Header{}
	var data []models.Row
	for _, row := range rows {
		switch {
		case headerRow > 0 && row.Number == headerRow:
			header = ReadHeader(row)
		case row.Number >= dataStart:
			data = append(data, row)
		}
	}
	return header, data
}
