// Package hierarchy rebuilds the archive description tree from the
// indentation of spreadsheet rows and projects row values onto its nodes.
//
// Each row's depth indicator is the column index of its first non-blank cell.
// Rows are consumed in a single ordered pass; a Reconstructor remembers the
// node created last and attaches every new row as its child, its sibling, or
// below the nearest ancestor whose depth is smaller than the indicator. The
// stored node depth is always parent depth + 1, so the indicator is only
// ever compared, never copied.
//
// A Reconstructor is not safe for concurrent use.
package hierarchy
