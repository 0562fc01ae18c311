package dashboard

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Totals sums the metric columns of a group of rows.
type Totals struct {
	Sale         decimal.Decimal `json:"SALE"`
	Salary       decimal.Decimal `json:"SALARY"`
	Exp          decimal.Decimal `json:"EXP"`
	TotalExpense decimal.Decimal `json:"TOTAL_EXPENSE"`
}

func (t Totals) add(r models.MetricRow) Totals {
	return Totals{
		Sale:         t.Sale.Add(r.Sale),
		Salary:       t.Salary.Add(r.Salary),
		Exp:          t.Exp.Add(r.Exp),
		TotalExpense: t.TotalExpense.Add(r.TotalExpense),
	}
}

func sum(rows []models.MetricRow) Totals {
	return lo.Reduce(rows, func(acc Totals, r models.MetricRow, _ int) Totals {
		return acc.add(r)
	}, Totals{})
}

// RegionTotal is the per-region aggregate.
type RegionTotal struct {
	Region string `json:"region"`
	Totals
}

// MonthTotal is the per-month aggregate.
type MonthTotal struct {
	Month string `json:"month"`
	Totals
}

// KPIs are the headline figures.
type KPIs struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// Heatmap holds one metric per region (rows) and month (columns), zero filled.
type Heatmap struct {
	Metric  string              `json:"metric"`
	Regions []string            `json:"regions"`
	Months  []string            `json:"months"`
	Values  [][]decimal.Decimal `json:"values"`
}

// Summary is every derived view for one filter selection.
type Summary struct {
	Filter   Filter        `json:"filter"`
	KPIs     KPIs          `json:"kpis"`
	ByRegion []RegionTotal `json:"by_region"`
	ByMonth  []MonthTotal  `json:"by_month"`
	Heatmap  Heatmap       `json:"heatmap"`
	Insights []string      `json:"insights"`
}

// Summarize applies the filter to rows and computes the summary views.
func Summarize(rows []models.MetricRow, filter Filter, format Formatter) *Summary {
	selected := filter.Apply(rows)
	total := sum(selected)

	s := &Summary{
		Filter: filter,
		KPIs: KPIs{
			TotalSales:   total.Sale,
			TotalExpense: total.TotalExpense,
		},
		ByRegion: ByRegion(selected),
		ByMonth:  ByMonth(selected),
	}
	s.Heatmap = buildHeatmap(selected, models.MetricSale, s.ByRegion, MonthOrder(selected))
	s.Insights = insights(s.ByRegion, s.ByMonth, format)
	return s
}

// ByRegion totals rows per region, highest sales first.
func ByRegion(rows []models.MetricRow) []RegionTotal {
	groups := lo.GroupBy(rows, func(r models.MetricRow) string { return r.Region })

	out := make([]RegionTotal, 0, len(groups))
	for _, region := range Regions(rows) {
		out = append(out, RegionTotal{Region: region, Totals: sum(groups[region])})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sale.GreaterThan(out[j].Sale)
	})
	return out
}

// ByMonth totals rows per month, in MonthOrder.
func ByMonth(rows []models.MetricRow) []MonthTotal {
	groups := lo.GroupBy(rows, func(r models.MetricRow) string { return r.Month })

	order := MonthOrder(rows)
	out := make([]MonthTotal, 0, len(order))
	for _, month := range order {
		out = append(out, MonthTotal{Month: month, Totals: sum(groups[month])})
	}
	return out
}

func buildHeatmap(rows []models.MetricRow, metric string, byRegion []RegionTotal, months []string) Heatmap {
	h := Heatmap{
		Metric:  metric,
		Regions: lo.Map(byRegion, func(r RegionTotal, _ int) string { return r.Region }),
		Months:  months,
		Values:  make([][]decimal.Decimal, len(byRegion)),
	}

	regionIdx := make(map[string]int, len(h.Regions))
	for i, r := range h.Regions {
		regionIdx[r] = i
		h.Values[i] = make([]decimal.Decimal, len(months))
	}
	monthIdx := make(map[string]int, len(months))
	for i, m := range months {
		monthIdx[m] = i
	}

	for _, r := range rows {
		v, ok := r.Value(metric)
		if !ok {
			continue
		}
		i, j := regionIdx[r.Region], monthIdx[r.Month]
		h.Values[i][j] = h.Values[i][j].Add(v)
	}
	return h
}

func insights(byRegion []RegionTotal, byMonth []MonthTotal, f Formatter) []string {
	out := []string{}

	if len(byRegion) > 0 {
		top, bottom := byRegion[0], byRegion[len(byRegion)-1]
		out = append(out, fmt.Sprintf("Highest sales in %s (%s), lowest in %s (%s).",
			top.Region, f.Amount(top.Sale), bottom.Region, f.Amount(bottom.Sale)))

		most := extreme(byRegion, func(r RegionTotal) decimal.Decimal { return r.TotalExpense }, true)
		least := extreme(byRegion, func(r RegionTotal) decimal.Decimal { return r.TotalExpense }, false)
		out = append(out, fmt.Sprintf("Highest expense in %s (%s), lowest in %s (%s).",
			most.Region, f.Amount(most.TotalExpense), least.Region, f.Amount(least.TotalExpense)))
	}

	if len(byMonth) > 0 {
		sale := func(m MonthTotal) decimal.Decimal { return m.Sale }
		best, worst := extreme(byMonth, sale, true), extreme(byMonth, sale, false)
		out = append(out, fmt.Sprintf("Peak sales in %s (%s), lowest in %s (%s).",
			best.Month, f.Amount(best.Sale), worst.Month, f.Amount(worst.Sale)))

		salary := extreme(byMonth, func(m MonthTotal) decimal.Decimal { return m.Salary }, true)
		exp := extreme(byMonth, func(m MonthTotal) decimal.Decimal { return m.Exp }, true)
		out = append(out, fmt.Sprintf("Highest salary payout in %s (%s), highest other expense in %s (%s).",
			salary.Month, f.Amount(salary.Salary), exp.Month, f.Amount(exp.Exp)))
	}

	return out
}

// extreme returns the first item with the largest (or smallest) value.
func extreme[T any](items []T, value func(T) decimal.Decimal, largest bool) T {
	best := items[0]
	for _, it := range items[1:] {
		v, b := value(it), value(best)
		if (largest && v.GreaterThan(b)) || (!largest && v.LessThan(b)) {
			best = it
		}
	}
	return best
}
