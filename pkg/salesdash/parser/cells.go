package parser

import (
	"github.com/cockroachdb/errors"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/xuri/excelize/v2"
)

// ResolveSheet returns the worksheet to read: name when given, otherwise the first sheet.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.Wrap(ErrSheetNotFound, "workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrSheetNotFound, "%q (have %v)", name, sheets)
}

// ReadSheet reads a worksheet as an untyped grid. No header inference is done here.
// With raw set, cell values are read without number formats applied, so a
// percent-formatted 0.12 stays "0.12".
func ReadSheet(f *excelize.File, sheetName string, raw bool) (models.RawSheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: raw})
	if err != nil {
		return models.RawSheet{}, errors.Wrapf(err, "read rows of %q", sheetName)
	}

	return models.RawSheet{
		Name: sheetName,
		Rows: PadRows(rows),
	}, nil
}

// PadRows returns a rectangular copy of rows, as wide as the rightmost non-empty cell.
// Leading padding rows are kept so row positions stay meaningful.
func PadRows(rows [][]string) [][]string {
	width := 0
	if b := FindGridBounds(rows); !b.Empty() {
		width = b.MaxCol + 1
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}
