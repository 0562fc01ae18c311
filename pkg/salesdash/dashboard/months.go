// Package dashboard derives filtered summary views from a cleaned metric table.
package dashboard

import (
	"sort"

	"github.com/samber/lo"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// FiscalMonths is the April-to-March reporting year.
var FiscalMonths = []string{
	"April", "May", "June", "July", "August", "September",
	"October", "November", "December", "January", "February", "March",
}

// MonthOrder returns the months present in rows in fiscal order, followed by
// unrecognized month labels in the order they are first seen.
func MonthOrder(rows []models.MetricRow) []string {
	present := lo.Uniq(lo.Map(rows, func(r models.MetricRow, _ int) string {
		return r.Month
	}))

	known := lo.Filter(FiscalMonths, func(m string, _ int) bool {
		return lo.Contains(present, m)
	})
	rest := lo.Filter(present, func(m string, _ int) bool {
		return !lo.Contains(FiscalMonths, m)
	})
	return append(known, rest...)
}

// Regions returns the distinct regions in rows, sorted.
func Regions(rows []models.MetricRow) []string {
	regions := lo.Uniq(lo.Map(rows, func(r models.MetricRow, _ int) string {
		return r.Region
	}))
	sort.Strings(regions)
	return regions
}
