// Package parser turns a raw worksheet grid into the cleaned metric table.
//
// The stages run strictly forward: ReconstructHeader, FilterRows, Reshape, Aggregate.
package parser

import (
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Physical layout of the sheet.
const (
	GroupRowIndex = 1
	SubRowIndex   = 2
	DataRowOffset = 3
)

// Default identity column names used when the sub-header cell is blank.
const (
	DefaultSerialColumn = "S_NO"
	DefaultRegionColumn = "STATE"
)

// ForwardFill resolves the group label of every position in groupRow.
// A non-blank label applies to itself and every following blank cell until the
// next label. Positions before the first label resolve to nil.
func ForwardFill(groupRow []string) []*string {
	out := make([]*string, len(groupRow))
	var last *string
	for i, cell := range groupRow {
		if label := strings.TrimSpace(cell); label != "" {
			last = &label
		}
		out[i] = last
	}
	return out
}

// ReconstructHeader builds one flat column name per sheet column from the group
// row and the sub-header row.
func ReconstructHeader(sheet models.RawSheet) (models.Header, error) {
	width := sheet.Width()
	if len(sheet.Rows) < DataRowOffset {
		return models.Header{}, NewMalformedHeaderError(len(sheet.Rows), width, "group and sub-header rows are missing")
	}
	if width <= models.RegionColumnIndex {
		return models.Header{}, NewMalformedHeaderError(len(sheet.Rows), width, "no region column")
	}

	groupRow := make([]string, width)
	copy(groupRow, sheet.Rows[GroupRowIndex])
	groups := ForwardFill(groupRow)

	columns := make([]models.ColumnSpec, width)
	for col := 0; col < width; col++ {
		sub := strings.TrimSpace(sheet.Cell(SubRowIndex, col))
		spec := models.ColumnSpec{Index: col, SubLabel: sub}

		if col <= models.RegionColumnIndex {
			spec.Identity = true
			spec.Name = sub
		} else {
			spec.GroupLabel = groups[col]
			group := ""
			if spec.GroupLabel != nil {
				group = *spec.GroupLabel
			}
			spec.Name = CompositeName(group, sub)
		}
		columns[col] = spec
	}

	return models.Header{
		Columns:      columns,
		SerialColumn: normalizeIdentityName(columns[models.SerialColumnIndex].Name, DefaultSerialColumn),
		RegionColumn: normalizeIdentityName(columns[models.RegionColumnIndex].Name, DefaultRegionColumn),
	}, nil
}

// normalizeIdentityName turns a label like "S.NO." into "S_NO".
func normalizeIdentityName(name, fallback string) string {
	r := strings.NewReplacer(".", "_", " ", "_")
	n := strings.Trim(r.Replace(strings.TrimSpace(name)), "_")
	if n == "" {
		return fallback
	}
	return n
}
