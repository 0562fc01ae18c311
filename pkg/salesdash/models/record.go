package models

import "github.com/shopspring/decimal"

// CleanRow is a data row that passed the row filter.
type CleanRow struct {
	// Line is the 0-based row index in the sheet.
	Line int `json:"line"`
	// Region is the trimmed region identity, original casing.
	Region string `json:"region"`
	// Cells holds the raw cell text, one per header column.
	Cells []string `json:"cells"`
}

// Cell returns the raw text at col, or "" when the row is shorter.
func (r CleanRow) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return r.Cells[col]
}

// LongRecord is one (region, month, metric) observation.
// An invalid Value is the missing marker.
type LongRecord struct {
	Region string              `json:"region"`
	Month  string              `json:"month"`
	Metric string              `json:"metric"`
	Value  decimal.NullDecimal `json:"value"`
}

// Missing reports whether the value could not be parsed.
func (r LongRecord) Missing() bool {
	return !r.Value.Valid
}
