package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GridBounds is the bounding box of the non-empty cells of a grid (0-based, inclusive).
type GridBounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	NonEmpty       int
}

// Empty reports whether the grid has no non-empty cells.
func (b GridBounds) Empty() bool {
	return b.MinRow < 0
}

// Range returns the bounds in Excel range notation (e.g. "A2:F30").
func (b GridBounds) Range() string {
	if b.Empty() {
		return ""
	}
	startCell, _ := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	endCell, _ := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// Density returns the share of non-empty cells inside the bounds.
func (b GridBounds) Density() float64 {
	if b.Empty() {
		return 0
	}
	total := (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
	return float64(b.NonEmpty) / float64(total)
}

// FindGridBounds finds the bounding box of cells that are not blank after trimming.
func FindGridBounds(rows [][]string) GridBounds {
	b := GridBounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			b.NonEmpty++
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b
}
