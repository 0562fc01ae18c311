package dashboard

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// All selects every value of a dimension.
const All = "All"

// Filter selects rows by region and month membership.
// An empty selection, or one containing All, selects everything.
type Filter struct {
	Regions []string `json:"regions,omitempty"`
	Months  []string `json:"months,omitempty"`
}

// SelectionOptions are the choices offered for each dimension, All first.
type SelectionOptions struct {
	Regions []string `json:"regions"`
	Months  []string `json:"months"`
}

// Options returns the selection lists for rows.
func Options(rows []models.MetricRow) SelectionOptions {
	return SelectionOptions{
		Regions: append([]string{All}, Regions(rows)...),
		Months:  append([]string{All}, MonthOrder(rows)...),
	}
}

// Apply returns the rows matching the filter, in their original order.
func (f Filter) Apply(rows []models.MetricRow) []models.MetricRow {
	regions, allRegions := selection(f.Regions)
	months, allMonths := selection(f.Months)

	return lo.Filter(rows, func(r models.MetricRow, _ int) bool {
		if !allRegions && !lo.Contains(regions, r.Region) {
			return false
		}
		if !allMonths && !lo.Contains(months, r.Month) {
			return false
		}
		return true
	})
}

// Key returns a canonical string for the filter; equal selections share a key.
func (f Filter) Key() string {
	return selectionKey(f.Regions) + "|" + selectionKey(f.Months)
}

func selection(values []string) ([]string, bool) {
	cleaned := lo.Compact(lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	}))
	if len(cleaned) == 0 || lo.Contains(cleaned, All) {
		return nil, true
	}
	return cleaned, false
}

func selectionKey(values []string) string {
	sel, all := selection(values)
	if all {
		return All
	}
	sel = lo.Uniq(sel)
	sort.Strings(sel)
	return strings.Join(sel, ",")
}
