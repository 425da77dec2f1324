package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind classifies a spreadsheet cell for normalization.
type CellKind int

const (
	// CellBlank is an empty or unset cell.
	CellBlank CellKind = iota
	// CellBool is a boolean cell.
	CellBool
	// CellNumber is a numeric cell.
	CellNumber
	// CellFormula is a formula cell; its cached display value is used.
	CellFormula
	// CellText is a shared or inline string cell.
	CellText
	// CellOther covers error and date cells.
	CellOther
)

// Cell is the typed view of a single spreadsheet cell.
type Cell struct {
	Kind CellKind
	// Raw is the stored value without number formatting.
	Raw string
	// Display is the formatted value as shown by a spreadsheet application.
	Display string
	// Bold reports whether the cell font is bold.
	Bold bool
}

// CellString returns the best-effort string representation of a cell:
// booleans become "true"/"false", numbers are truncated to integers,
// formulas yield their cached display value and strings are kept verbatim.
// Everything else is "".
func CellString(c Cell) string {
	switch c.Kind {
	case CellBool:
		if c.Raw == "1" || strings.EqualFold(c.Raw, "true") {
			return "true"
		}
		return "false"
	case CellNumber:
		return truncateNumber(c.Raw)
	case CellFormula:
		return c.Display
	case CellText:
		return c.Raw
	default:
		return ""
	}
}

// cellKind maps an excelize cell type to a CellKind. Cells written without an
// explicit type are numeric when their raw value parses as a number.
func cellKind(t excelize.CellType, formula, raw string) CellKind {
	if formula != "" {
		return CellFormula
	}
	switch t {
	case excelize.CellTypeBool:
		return CellBool
	case excelize.CellTypeNumber:
		return CellNumber
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return CellText
	case excelize.CellTypeFormula:
		return CellFormula
	case excelize.CellTypeUnset:
		if raw == "" {
			return CellBlank
		}
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return CellNumber
		}
		return CellText
	default:
		return CellOther
	}
}

// truncateNumber converts a numeric string to its integer part.
// Values that do not parse are returned unchanged.
func truncateNumber(s string) string {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}

// styleCache remembers which style IDs carry a bold font.
type styleCache struct {
	f    *excelize.File
	bold map[int]bool
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, bold: make(map[int]bool)}
}

func (s *styleCache) isBold(styleID int) bool {
	if b, ok := s.bold[styleID]; ok {
		return b
	}
	style, err := s.f.GetStyle(styleID)
	b := err == nil && style != nil && style.Font != nil && style.Font.Bold
	s.bold[styleID] = b
	return b
}

// readCell reads the typed cell at the given 1-based coordinates.
func readCell(f *excelize.File, styles *styleCache, sheetName string, col, row int, raw string) (Cell, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, err
	}
	cellType, err := f.GetCellType(sheetName, name)
	if err != nil {
		return Cell{}, err
	}
	formula, err := f.GetCellFormula(sheetName, name)
	if err != nil {
		return Cell{}, err
	}

	c := Cell{Kind: cellKind(cellType, formula, raw), Raw: raw}
	if c.Kind == CellFormula {
		if c.Display, err = f.GetCellValue(sheetName, name); err != nil {
			return Cell{}, err
		}
	}
	if c.Kind != CellBlank {
		styleID, err := f.GetCellStyle(sheetName, name)
		if err == nil {
			c.Bold = styles.isBold(styleID)
		}
	}
	return c, nil
}
