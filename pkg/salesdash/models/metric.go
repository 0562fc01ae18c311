package models

import "github.com/shopspring/decimal"

// Metric names recognized in the sub-header row.
const (
	MetricSale   = "SALE"
	MetricSalary = "SALARY"
	MetricExp    = "EXP"
	// MetricTotal is a precomputed aggregate in the source and is dropped.
	MetricTotal = "TOTAL"
	// MetricTotalExpense is derived as SALARY + EXP.
	MetricTotalExpense = "TOTAL_EXPENSE"
)

// RequiredMetrics are always present in a MetricRow.
var RequiredMetrics = []string{MetricSale, MetricSalary, MetricExp}

// MetricRow is one (region, month) row of the cleaned table.
type MetricRow struct {
	// Region is the region identity (the sheet's STATE column).
	Region string `json:"region"`
	// Month is the title-cased month label.
	Month string `json:"month"`
	// Sale is the summed SALE metric, zero when absent.
	Sale decimal.Decimal `json:"SALE"`
	// Salary is the summed SALARY metric, zero when absent.
	Salary decimal.Decimal `json:"SALARY"`
	// Exp is the summed EXP metric, zero when absent.
	Exp decimal.Decimal `json:"EXP"`
	// TotalExpense is Salary + Exp.
	TotalExpense decimal.Decimal `json:"TOTAL_EXPENSE"`
}

// Value returns the metric by its column name.
func (r MetricRow) Value(metric string) (decimal.Decimal, bool) {
	switch metric {
	case MetricSale:
		return r.Sale, true
	case MetricSalary:
		return r.Salary, true
	case MetricExp:
		return r.Exp, true
	case MetricTotalExpense:
		return r.TotalExpense, true
	}
	return decimal.Zero, false
}

// TableColumns is the fixed column set of a MetricTable.
var TableColumns = []string{"region", "month", MetricSale, MetricSalary, MetricExp, MetricTotalExpense}

// MetricTable is the pipeline output.
type MetricTable struct {
	// Source is the workbook file name (no path), empty for in-memory grids.
	Source string `json:"source,omitempty"`
	// Sheet is the worksheet the grid was read from.
	Sheet string `json:"sheet,omitempty"`
	// Columns lists the stable field names of every row.
	Columns []string `json:"columns"`
	// Rows holds one row per (region, month), sorted by region then month.
	Rows []MetricRow `json:"rows"`
	// ObservedMetrics lists every metric name seen in the sheet, sorted.
	ObservedMetrics []string `json:"observed_metrics"`
	// IgnoredMetrics lists observed metrics that are not table columns (TOTAL excluded).
	IgnoredMetrics []string `json:"ignored_metrics,omitempty"`
	// Stats summarizes what each stage kept and dropped.
	Stats PipelineStats `json:"stats"`
}
