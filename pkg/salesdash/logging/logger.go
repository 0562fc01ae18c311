// Package logging builds the zap logger shared by the CLI and the HTTP server.
package logging

import (
	"github.com/cockroachdb/errors"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to stderr. format is "json" or "console".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}

	config := zap.NewProductionConfig()
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	return config.Build()
}

// TableFields describes a cleaned table for a log line.
func TableFields(table *models.MetricTable) []zap.Field {
	s := table.Stats
	return []zap.Field{
		zap.String("source", table.Source),
		zap.String("sheet", table.Sheet),
		zap.String("used_range", s.UsedRange),
		zap.String("region_column", s.RegionColumn),
		zap.Int("rows", len(table.Rows)),
		zap.Int("data_rows", s.DataRows),
		zap.Int("retained_rows", s.RetainedRows),
		zap.Int("blank_region_rows", s.BlankRegionRows),
		zap.Int("aggregate_rows", s.AggregateRows),
		zap.Int("value_columns", s.ValueColumns),
		zap.Int("noise_columns", s.NoiseColumns),
		zap.Int("missing_values", s.MissingValues),
		zap.Strings("ignored_metrics", table.IgnoredMetrics),
	}
}
