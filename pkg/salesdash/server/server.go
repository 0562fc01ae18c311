// Package server exposes a cleaned metric table and its dashboard summaries over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Formatter dashboard.Formatter
	// CacheTTL bounds summary memoization; zero never expires.
	CacheTTL time.Duration
	Logger   *zap.Logger
	// Registry receives the server collectors; nil creates a private registry.
	Registry *prometheus.Registry
}

// Server serves one immutable metric table.
type Server struct {
	table    *models.MetricTable
	format   dashboard.Formatter
	cache    *gocache.Cache
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	router   chi.Router
}

// New builds the server and its routes.
func New(table *models.MetricTable, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	ttl, cleanup := opts.CacheTTL, 2*opts.CacheTTL
	if ttl <= 0 {
		ttl, cleanup = gocache.NoExpiration, 0
	}
	format := opts.Formatter
	if format.Currency == "" {
		format.Currency = dashboard.DefaultCurrency
	}

	s := &Server{
		table:    table,
		format:   format,
		cache:    gocache.New(ttl, cleanup),
		logger:   logger,
		registry: reg,
		metrics:  NewMetrics(reg),
	}
	s.metrics.TableRows.Set(float64(len(table.Rows)))
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/table", s.handleTable)
		r.Get("/regions", s.handleRegions)
		r.Get("/months", s.handleMonths)
		r.Get("/options", s.handleOptions)
		r.Get("/summary", s.handleSummary)
	})

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "listen on %s", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})
	return g.Wait()
}

// summary returns the memoized summary for filter.
// Equivalent selections share a cache entry, so the returned copy carries the caller's filter.
func (s *Server) summary(filter dashboard.Filter) *dashboard.Summary {
	key := filter.Key()
	if v, ok := s.cache.Get(key); ok {
		s.metrics.SummaryCache.WithLabelValues("hit").Inc()
		out := *v.(*dashboard.Summary)
		out.Filter = filter
		return &out
	}
	s.metrics.SummaryCache.WithLabelValues("miss").Inc()

	summary := dashboard.Summarize(s.table.Rows, filter, s.format)
	s.cache.SetDefault(key, summary)
	return summary
}
