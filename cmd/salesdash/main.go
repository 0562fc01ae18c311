// Package main provides the CLI entry point for salesdash.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/config"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/logging"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"go.uber.org/zap"
)

// commonFlags are the persistent flags every command binds into the configuration.
var commonFlags = []string{"sheet", "raw-values", "log-level", "log-format"}

type app struct {
	v       *viper.Viper
	envFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "salesdash",
		Short: "Clean and summarize a monthly sales workbook",
		Long: `salesdash reads a sales and expense workbook whose header spans two rows
(month groups over metric labels) and produces one row per region and month
with SALE, SALARY, EXP and TOTAL_EXPENSE.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("sheet", "", "Worksheet name (default: first sheet)")
	pf.Bool("raw-values", true, "Read cell values without number formats applied")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "json", "Log format: json, console")
	pf.StringVar(&a.envFile, "env-file", ".env", "Load environment variables from this file if it exists")

	rootCmd.AddCommand(newCleanCmd(a), newSummaryCmd(a), newServeCmd(a))
	return rootCmd
}

// prepare resolves the configuration for cmd and builds the logger.
// flags names the command's own flags that map onto configuration keys.
func (a *app) prepare(cmd *cobra.Command, args []string, flags ...string) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}

	for _, name := range append(append([]string{}, commonFlags...), flags...) {
		key := strings.ReplaceAll(name, "-", "_")
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	if len(args) > 0 {
		a.v.Set("file", args[0])
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// loadTable runs the cleaning pipeline over the configured workbook.
func (a *app) loadTable() (*models.MetricTable, error) {
	table, err := salesdash.Load(a.cfg.File, a.cfg.LoadOptions())
	if err != nil {
		fields := []zap.Field{zap.String("file", a.cfg.File), zap.Error(err)}
		var loadErr *salesdash.LoadError
		if errors.As(err, &loadErr) {
			fields = append(fields, zap.String("stage", loadErr.Stage))
		}
		a.logger.Error("load failed", fields...)
		return nil, err
	}

	a.logger.Info("table loaded", logging.TableFields(table)...)
	return table, nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, data []byte, path string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
