package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

func row(region, month string, sale, salary, exp int64) models.MetricRow {
	return models.MetricRow{
		Region:       region,
		Month:        month,
		Sale:         decimal.NewFromInt(sale),
		Salary:       decimal.NewFromInt(salary),
		Exp:          decimal.NewFromInt(exp),
		TotalExpense: decimal.NewFromInt(salary + exp),
	}
}

func fixture() []models.MetricRow {
	return []models.MetricRow{
		row("Delhi", "April", 1000, 200, 50),
		row("Delhi", "January", 500, 200, 10),
		row("Delhi", "May", 700, 250, 0),
		row("Goa", "April", 300, 100, 400),
		row("Goa", "Q1 Bonus", 10, 0, 0),
		row("Punjab", "May", 2000, 50, 5),
	}
}

func TestMonthOrder(t *testing.T) {
	assert.Equal(t, []string{"April", "May", "January", "Q1 Bonus"}, MonthOrder(fixture()))
	assert.Empty(t, MonthOrder(nil))
}

func TestMonthOrderUnknownInEncounterOrder(t *testing.T) {
	rows := []models.MetricRow{
		row("A", "Zeta", 1, 0, 0),
		row("A", "March", 1, 0, 0),
		row("A", "Alpha", 1, 0, 0),
		row("B", "Zeta", 1, 0, 0),
	}
	assert.Equal(t, []string{"March", "Zeta", "Alpha"}, MonthOrder(rows))
}

func TestOptions(t *testing.T) {
	opts := Options(fixture())
	assert.Equal(t, []string{All, "Delhi", "Goa", "Punjab"}, opts.Regions)
	assert.Equal(t, All, opts.Months[0])
	assert.Len(t, opts.Months, 5)
}

func TestFilterApply(t *testing.T) {
	rows := fixture()

	assert.Len(t, Filter{}.Apply(rows), len(rows))
	assert.Len(t, Filter{Regions: []string{All, "Goa"}}.Apply(rows), len(rows))

	goa := Filter{Regions: []string{"Goa"}}.Apply(rows)
	require.Len(t, goa, 2)
	for _, r := range goa {
		assert.Equal(t, "Goa", r.Region)
	}

	aprilMay := Filter{Regions: []string{"Delhi", "Punjab"}, Months: []string{"April", " May "}}.Apply(rows)
	assert.Len(t, aprilMay, 3)

	assert.Empty(t, Filter{Months: []string{"December"}}.Apply(rows))
}

func TestFilterKey(t *testing.T) {
	assert.Equal(t, Filter{}.Key(), Filter{Regions: []string{All}, Months: []string{""}}.Key())
	assert.Equal(t,
		Filter{Regions: []string{"Goa", "Delhi"}}.Key(),
		Filter{Regions: []string{"Delhi", "Goa", "Goa"}}.Key())
	assert.NotEqual(t, Filter{Regions: []string{"Goa"}}.Key(), Filter{Months: []string{"Goa"}}.Key())
}

func TestFormatterAmount(t *testing.T) {
	f := Formatter{Currency: DefaultCurrency}
	assert.Equal(t, "₹ 1,234,568", f.Amount(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "₹ 0", f.Amount(decimal.Zero))
	assert.Equal(t, "1,000", Formatter{}.Amount(decimal.NewFromInt(1000)))
}

func TestSummarize(t *testing.T) {
	s := Summarize(fixture(), Filter{}, Formatter{Currency: DefaultCurrency})

	assert.True(t, s.KPIs.TotalSales.Equal(decimal.NewFromInt(4510)))
	assert.True(t, s.KPIs.TotalExpense.Equal(decimal.NewFromInt(1265)))

	require.Len(t, s.ByRegion, 3)
	assert.Equal(t, "Delhi", s.ByRegion[0].Region)
	assert.Equal(t, "Punjab", s.ByRegion[1].Region)
	assert.Equal(t, "Goa", s.ByRegion[2].Region)
	assert.True(t, s.ByRegion[0].Sale.Equal(decimal.NewFromInt(2200)))

	require.Len(t, s.ByMonth, 4)
	assert.Equal(t, "April", s.ByMonth[0].Month)
	assert.True(t, s.ByMonth[0].Sale.Equal(decimal.NewFromInt(1300)))
	assert.Equal(t, "Q1 Bonus", s.ByMonth[3].Month)

	assert.Equal(t, models.MetricSale, s.Heatmap.Metric)
	assert.Equal(t, []string{"Delhi", "Punjab", "Goa"}, s.Heatmap.Regions)
	assert.Equal(t, []string{"April", "May", "January", "Q1 Bonus"}, s.Heatmap.Months)
	assert.True(t, s.Heatmap.Values[1][1].Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.Heatmap.Values[1][0].IsZero())
	assert.True(t, s.Heatmap.Values[2][3].Equal(decimal.NewFromInt(10)))

	assert.Equal(t, []string{
		"Highest sales in Delhi (₹ 2,200), lowest in Goa (₹ 310).",
		"Highest expense in Delhi (₹ 710), lowest in Punjab (₹ 55).",
		"Peak sales in May (₹ 2,700), lowest in Q1 Bonus (₹ 10).",
		"Highest salary payout in April (₹ 300), highest other expense in April (₹ 450).",
	}, s.Insights)
}

func TestSummarizeFiltered(t *testing.T) {
	s := Summarize(fixture(), Filter{Regions: []string{"Goa"}}, Formatter{})

	assert.True(t, s.KPIs.TotalSales.Equal(decimal.NewFromInt(310)))
	require.Len(t, s.ByRegion, 1)
	assert.Equal(t, []string{"April", "Q1 Bonus"}, s.Heatmap.Months)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, Filter{}, Formatter{})

	assert.True(t, s.KPIs.TotalSales.IsZero())
	assert.Empty(t, s.ByRegion)
	assert.Empty(t, s.ByMonth)
	assert.Empty(t, s.Heatmap.Regions)
	assert.NotNil(t, s.Insights)
	assert.Empty(t, s.Insights)
}

func TestBuildHeatmapMetric(t *testing.T) {
	rows := fixture()
	byRegion := ByRegion(rows)

	h := buildHeatmap(rows, models.MetricTotalExpense, byRegion, MonthOrder(rows))
	assert.Equal(t, models.MetricTotalExpense, h.Metric)
	// Goa April: 100 salary + 400 exp.
	assert.True(t, h.Values[2][0].Equal(decimal.NewFromInt(500)))

	h = buildHeatmap(rows, "BONUS", byRegion, MonthOrder(rows))
	for _, row := range h.Values {
		for _, v := range row {
			assert.True(t, v.IsZero())
		}
	}
}
