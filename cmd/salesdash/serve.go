package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [input.xlsx]",
		Short: "Serve the cleaned table and dashboard summaries over HTTP",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prepare(cmd, args, "listen", "cache-ttl", "currency"); err != nil {
				return err
			}

			table, err := a.loadTable()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			srv := server.New(table, server.Options{
				Formatter: a.cfg.Formatter(),
				CacheTTL:  a.cfg.CacheTTL,
				Logger:    a.logger,
				Registry:  reg,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, a.cfg.Listen)
		},
	}

	cmd.Flags().String("listen", ":8080", "HTTP listen address")
	cmd.Flags().Duration("cache-ttl", time.Duration(0), "Summary cache lifetime (0: never expires)")
	cmd.Flags().String("currency", dashboard.DefaultCurrency, "Currency symbol used in insights")
	return cmd
}
