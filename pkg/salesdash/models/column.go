package models

// Identity column positions. They bypass composite naming.
const (
	SerialColumnIndex = 0
	RegionColumnIndex = 1
)

// ColumnSpec describes one column of the reconstructed header.
type ColumnSpec struct {
	// Index is the 0-based column position in the sheet.
	Index int `json:"index"`
	// GroupLabel is the forward-filled month label (nil before the first label).
	GroupLabel *string `json:"group_label,omitempty"`
	// SubLabel is the metric label from the sub-header row, trimmed.
	SubLabel string `json:"sub_label"`
	// Name is the flat column name ("{group}_{sub}" for value columns).
	Name string `json:"name"`
	// Identity is true for the serial number and region columns.
	Identity bool `json:"identity"`
}

// Header is the normalized schema recovered from the two header rows.
type Header struct {
	// Columns has one entry per sheet column, in order.
	Columns []ColumnSpec `json:"columns"`
	// SerialColumn is the normalized name of column 0.
	SerialColumn string `json:"serial_column"`
	// RegionColumn is the normalized name of column 1.
	RegionColumn string `json:"region_column"`
}

// ValueColumns returns the non-identity columns.
func (h Header) ValueColumns() []ColumnSpec {
	var cols []ColumnSpec
	for _, c := range h.Columns {
		if !c.Identity {
			cols = append(cols, c)
		}
	}
	return cols
}
