package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/output"
	"go.uber.org/zap"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		outputPath string
		filter     dashboard.Filter
	)

	cmd := &cobra.Command{
		Use:   "summary [input.xlsx]",
		Short: "Print KPIs, totals, heatmap and insights for a region/month selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prepare(cmd, args, "pretty", "currency"); err != nil {
				return err
			}

			table, err := a.loadTable()
			if err != nil {
				return err
			}

			summary := dashboard.Summarize(table.Rows, filter, a.cfg.Formatter())
			a.logger.Debug("summary computed",
				zap.String("filter", filter.Key()),
				zap.Int("regions", len(summary.ByRegion)),
				zap.Int("months", len(summary.ByMonth)),
			)

			data, err := output.SummaryToJSON(summary, a.cfg.Pretty)
			if err != nil {
				return errors.Wrap(err, "serialization failed")
			}
			return writeOutput(cmd, data, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	cmd.Flags().String("currency", dashboard.DefaultCurrency, "Currency symbol used in insights")
	cmd.Flags().StringSliceVar(&filter.Regions, "region", nil, "Regions to include (repeatable, default: All)")
	cmd.Flags().StringSliceVar(&filter.Months, "month", nil, "Months to include (repeatable, default: All)")
	return cmd
}
