// Package models defines data structures shared by the import phases.
package models

import "strings"

// Row represents one spreadsheet row after typed-cell normalization.
type Row struct {
	// Number is the sheet row number (1-based).
	Number int `json:"number"`
	// Cells maps the 0-based column index to the normalized cell value.
	Cells []string `json:"cells"`
	// First is the value of the first non-blank cell.
	First string `json:"first,omitempty"`
	// Second is the value of the second non-blank cell.
	Second string `json:"second,omitempty"`
	// Depth is the column index of the first non-blank cell.
	Depth int `json:"depth"`
	// Bold reports whether the first non-blank cell is rendered bold.
	Bold bool `json:"bold,omitempty"`
}

// Cell returns the value at column index i, or "" when the row has no such cell.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// Blank reports whether the row has no non-blank cell.
func (r Row) Blank() bool {
	for _, v := range r.Cells {
		if !IsBlank(v) {
			return false
		}
	}
	return true
}

// IsBlank reports whether a cell value carries no content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NewRow builds a Row from normalized cell values and fills the synthetic
// First/Second slots and the depth indicator. bold reports the font weight of
// each cell and may be shorter than values.
func NewRow(number int, values []string, bold []bool) Row {
	row := Row{Number: number, Cells: values}
	found := 0
	for i, v := range values {
		if IsBlank(v) {
			continue
		}
		switch found {
		case 0:
			row.First = v
			row.Depth = i
			row.Bold = i < len(bold) && bold[i]
		case 1:
			row.Second = v
		}
		found++
		if found == 2 {
			break
		}
	}
	return row
}
