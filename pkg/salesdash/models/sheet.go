// Package models defines the record shapes produced by the cleaning pipeline.
package models

// RawSheet is an untyped grid read from the first sheet of a workbook.
// Rows are padded to the width of the widest row; an empty string is an empty cell.
type RawSheet struct {
	// Name is the worksheet name the grid was read from.
	Name string `json:"name"`
	// Rows holds the cell text, row-major, 0-based.
	Rows [][]string `json:"rows"`
}

// Width returns the number of columns in the grid.
func (s RawSheet) Width() int {
	width := 0
	for _, row := range s.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the cell at (row, col), or "" when it lies outside the grid.
func (s RawSheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
