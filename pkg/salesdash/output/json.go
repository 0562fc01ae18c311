// Package output serializes pipeline results.
package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// ToJSON serializes a metric table.
func ToJSON(table *models.MetricTable, pretty bool) ([]byte, error) {
	return marshal(table, pretty)
}

// SummaryToJSON serializes a dashboard summary.
func SummaryToJSON(summary *dashboard.Summary, pretty bool) ([]byte, error) {
	return marshal(summary, pretty)
}

func init() {
	// Metric values serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Marshal serializes v with the package's decimal policy applied.
func Marshal(v any, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
