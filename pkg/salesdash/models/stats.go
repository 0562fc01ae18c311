package models

// PipelineStats counts what the cleaning stages kept and dropped.
type PipelineStats struct {
	// UsedRange is the Excel range spanned by non-blank cells, e.g. "A2:F30".
	UsedRange string `json:"used_range,omitempty"`
	// CellDensity is the share of non-blank cells inside UsedRange.
	CellDensity float64 `json:"cell_density"`
	// SerialColumn and RegionColumn are the normalized identity column names.
	SerialColumn string `json:"serial_column"`
	RegionColumn string `json:"region_column"`

	DataRows         int `json:"data_rows"`
	RetainedRows     int `json:"retained_rows"`
	BlankRegionRows  int `json:"blank_region_rows"`
	AggregateRows    int `json:"aggregate_rows"`
	ValueColumns     int `json:"value_columns"`
	NoiseColumns     int `json:"noise_columns"`
	LongRecords      int `json:"long_records"`
	MissingValues    int `json:"missing_values"`
	RegionMonthPairs int `json:"region_month_pairs"`
}
