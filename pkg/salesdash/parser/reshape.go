package parser

import (
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompositeSeparator joins a group label and a sub-label.
const CompositeSeparator = "_"

// ReshapeStats counts the columns and values seen by Reshape.
type ReshapeStats struct {
	ValueColumns  int
	NoiseColumns  int
	Records       int
	MissingValues int
}

// CompositeName joins a group label and a sub-label, both trimmed.
func CompositeName(group, sub string) string {
	return strings.TrimSpace(group) + CompositeSeparator + strings.TrimSpace(sub)
}

// SplitCompositeName splits name at the first separator into a title-cased
// month and an upper-cased metric. The metric may itself contain the separator.
func SplitCompositeName(name string) (month, metric string, ok bool) {
	month, metric, ok = strings.Cut(name, CompositeSeparator)
	if !ok {
		return "", "", false
	}
	return TitleCase(strings.TrimSpace(month)), strings.ToUpper(strings.TrimSpace(metric)), true
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	// Casers keep state; one per call.
	return cases.Title(language.Und).String(s)
}

type valueColumn struct {
	index  int
	month  string
	metric string
}

// Reshape melts the value columns of every clean row into long records.
// Columns without a month or a metric carry no meaning and are skipped.
func Reshape(rows []models.CleanRow, header models.Header) ([]models.LongRecord, ReshapeStats) {
	var stats ReshapeStats

	var targets []valueColumn
	for _, col := range header.ValueColumns() {
		month, metric, ok := SplitCompositeName(col.Name)
		if !ok || month == "" || metric == "" {
			stats.NoiseColumns++
			continue
		}
		targets = append(targets, valueColumn{index: col.Index, month: month, metric: metric})
	}
	stats.ValueColumns = len(targets)

	records := make([]models.LongRecord, 0, len(rows)*len(targets))
	for _, row := range rows {
		for _, t := range targets {
			value := ParseNumber(row.Cell(t.index))
			if !value.Valid {
				stats.MissingValues++
			}
			records = append(records, models.LongRecord{
				Region: row.Region,
				Month:  t.month,
				Metric: t.metric,
				Value:  value,
			})
		}
	}

	stats.Records = len(records)
	return records, stats
}
