package parser

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// AggregateResult is the pivoted table plus the metric names seen on the way.
type AggregateResult struct {
	Rows []models.MetricRow
	// Observed lists every metric name in the records, sorted.
	Observed []string
	// Ignored lists observed metrics that are not table columns, sorted.
	// TOTAL is dropped silently and never listed.
	Ignored []string
}

type regionMonth struct {
	region string
	month  string
}

// Aggregate pivots long records into one MetricRow per (region, month).
// Missing values are left out of the sums; absent metrics are zero.
func Aggregate(records []models.LongRecord) AggregateResult {
	sums := make(map[regionMonth]map[string]decimal.Decimal)
	var keys []regionMonth
	observed := make(map[string]struct{})

	for _, rec := range records {
		k := regionMonth{region: rec.Region, month: rec.Month}
		metrics, ok := sums[k]
		if !ok {
			metrics = make(map[string]decimal.Decimal)
			sums[k] = metrics
			keys = append(keys, k)
		}
		observed[rec.Metric] = struct{}{}
		if rec.Value.Valid {
			metrics[rec.Metric] = metrics[rec.Metric].Add(rec.Value.Decimal)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].region != keys[j].region {
			return keys[i].region < keys[j].region
		}
		return keys[i].month < keys[j].month
	})

	rows := make([]models.MetricRow, 0, len(keys))
	for _, k := range keys {
		metrics := sums[k]
		salary := metrics[models.MetricSalary]
		exp := metrics[models.MetricExp]
		rows = append(rows, models.MetricRow{
			Region:       k.region,
			Month:        k.month,
			Sale:         metrics[models.MetricSale],
			Salary:       salary,
			Exp:          exp,
			TotalExpense: salary.Add(exp),
		})
	}

	result := AggregateResult{Rows: rows}
	for name := range observed {
		result.Observed = append(result.Observed, name)
		if !slices.Contains(models.RequiredMetrics, name) && name != models.MetricTotal {
			result.Ignored = append(result.Ignored, name)
		}
	}
	sort.Strings(result.Observed)
	sort.Strings(result.Ignored)
	return result
}
