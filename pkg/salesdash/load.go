package salesdash

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads one worksheet of the workbook at path and runs the cleaning pipeline.
func Load(path string, opts Options) (*models.MetricTable, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, "open", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "open", err)
	}

	raw := opts.ShouldUseRawValues()
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: raw})
	if err != nil {
		return nil, NewLoadError(path, "open", errors.Mark(err, ErrInvalidFormat))
	}
	defer f.Close()

	sheetName, err := parser.ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewLoadError(path, "sheet", err)
	}

	sheet, err := parser.ReadSheet(f, sheetName, raw)
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}

	table, err := Process(sheet)
	if err != nil {
		return nil, NewLoadError(path, "header", err)
	}
	table.Source = filepath.Base(path)

	return table, nil
}

// Process runs the four cleaning stages over an in-memory grid.
// The only error is a *MalformedHeaderError; empty results are valid.
func Process(sheet models.RawSheet) (*models.MetricTable, error) {
	header, err := parser.ReconstructHeader(sheet)
	if err != nil {
		return nil, err
	}

	rows, filterStats := parser.FilterRows(sheet.Rows[parser.DataRowOffset:], header)
	records, reshapeStats := parser.Reshape(rows, header)
	agg := parser.Aggregate(records)
	bounds := parser.FindGridBounds(sheet.Rows)

	table := &models.MetricTable{
		Sheet:           sheet.Name,
		Columns:         append([]string(nil), models.TableColumns...),
		Rows:            agg.Rows,
		ObservedMetrics: agg.Observed,
		IgnoredMetrics:  agg.Ignored,
		Stats: models.PipelineStats{
			UsedRange:        bounds.Range(),
			CellDensity:      bounds.Density(),
			SerialColumn:     header.SerialColumn,
			RegionColumn:     filterStats.RegionColumn,
			DataRows:         filterStats.DataRows,
			RetainedRows:     filterStats.Retained,
			BlankRegionRows:  filterStats.BlankRegion,
			AggregateRows:    filterStats.Aggregate,
			ValueColumns:     reshapeStats.ValueColumns,
			NoiseColumns:     reshapeStats.NoiseColumns,
			LongRecords:      reshapeStats.Records,
			MissingValues:    reshapeStats.MissingValues,
			RegionMonthPairs: len(agg.Rows),
		},
	}
	if table.ObservedMetrics == nil {
		table.ObservedMetrics = []string{}
	}

	return table, nil
}
