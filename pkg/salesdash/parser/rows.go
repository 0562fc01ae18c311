package parser

import (
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// excludedRegions are aggregate or unlabeled rows, compared upper-cased.
var excludedRegions = map[string]struct{}{
	"TOTAL": {},
	"NOC":   {},
}

// FilterStats counts the rows seen by FilterRows.
type FilterStats struct {
	// RegionColumn is the recognized name of the region identity column.
	RegionColumn string
	DataRows     int
	Retained     int
	BlankRegion  int
	Aggregate    int
}

// IsExcludedRegion reports whether a trimmed region identity names an aggregate row.
func IsExcludedRegion(region string) bool {
	_, ok := excludedRegions[strings.ToUpper(region)]
	return ok
}

// FilterRows keeps the data rows that carry a usable region identity.
// data holds the rows below the header; an empty result is not an error.
func FilterRows(data [][]string, header models.Header) ([]models.CleanRow, FilterStats) {
	stats := FilterStats{RegionColumn: header.RegionColumn, DataRows: len(data)}
	width := len(header.Columns)

	var rows []models.CleanRow
	for i, row := range data {
		region := ""
		if models.RegionColumnIndex < len(row) {
			region = strings.TrimSpace(row[models.RegionColumnIndex])
		}
		if region == "" {
			stats.BlankRegion++
			continue
		}
		if IsExcludedRegion(region) {
			stats.Aggregate++
			continue
		}

		cells := make([]string, width)
		copy(cells, row)
		rows = append(rows, models.CleanRow{
			Line:   DataRowOffset + i,
			Region: region,
			Cells:  cells,
		})
	}

	stats.Retained = len(rows)
	return rows, stats
}

