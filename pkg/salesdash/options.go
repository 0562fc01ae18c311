// Package salesdash cleans a monthly sales and expense workbook into a
// per-region, per-month metric table.
package salesdash

// Options configures how the workbook is read.
type Options struct {
	// Sheet names the worksheet to read. Empty means the first sheet.
	Sheet string
	// RawValues reads cell values without number formats applied.
	// If nil, defaults to true.
	RawValues *bool
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldUseRawValues returns whether cells are read unformatted.
func (o Options) ShouldUseRawValues() bool {
	if o.RawValues != nil {
		return *o.RawValues
	}
	return true
}
