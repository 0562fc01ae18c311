package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{},
		{nil, nil, "april", nil, nil, "may"},
		{"S.NO.", "STATE", "sale", "salary", "exp", "sale"},
		{1, "Delhi", "1,000", 200, 50, 700},
		{2, "Goa", 300, 100, "-", 400},
		{3, "TOTAL", 1300, 300, 50, 1100},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCleanCommand(t *testing.T) {
	path := writeWorkbook(t)

	out, err := execute(t, "clean", path)
	require.NoError(t, err)

	var table models.MetricTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, "sales.xlsx", table.Source)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, "Delhi", table.Rows[0].Region)
	assert.Equal(t, "April", table.Rows[0].Month)
	assert.Equal(t, "1000", table.Rows[0].Sale.String())
	assert.Equal(t, "250", table.Rows[0].TotalExpense.String())
	assert.Equal(t, 1, table.Stats.AggregateRows)
}

func TestCleanCommandOutputFile(t *testing.T) {
	path := writeWorkbook(t)
	dest := filepath.Join(t.TempDir(), "table.json")

	out, err := execute(t, "clean", path, "--output", dest, "--pretty")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"columns\"")
}

func TestCleanCommandFileFromEnv(t *testing.T) {
	t.Setenv("SALESDASH_FILE", writeWorkbook(t))

	out, err := execute(t, "clean")
	require.NoError(t, err)
	assert.Contains(t, out, `"region":"Goa"`)
}

func TestCleanCommandMissingFile(t *testing.T) {
	_, err := execute(t, "clean", filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, salesdash.ErrFileNotFound)

	_, err = execute(t, "clean")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestSummaryCommand(t *testing.T) {
	path := writeWorkbook(t)

	out, err := execute(t, "summary", path, "--region", "Goa", "--currency", "Rs")
	require.NoError(t, err)

	var summary dashboard.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, []string{"Goa"}, summary.Filter.Regions)
	assert.Equal(t, "700", summary.KPIs.TotalSales.String())
	require.Len(t, summary.ByRegion, 1)
	require.NotEmpty(t, summary.Insights)
	assert.Contains(t, summary.Insights[0], "Rs 700")
}
