package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/output"
)

func newCleanCmd(a *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "clean [input.xlsx]",
		Short: "Print the cleaned per-region, per-month metric table as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prepare(cmd, args, "pretty"); err != nil {
				return err
			}

			table, err := a.loadTable()
			if err != nil {
				return err
			}

			data, err := output.ToJSON(table, a.cfg.Pretty)
			if err != nil {
				return errors.Wrap(err, "serialization failed")
			}
			return writeOutput(cmd, data, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}
