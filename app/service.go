package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/roomutil/api/dashboard"
	"github.com/kilianp07/roomutil/config"
	"github.com/kilianp07/roomutil/core/dataset"
	coremetrics "github.com/kilianp07/roomutil/core/metrics"
	"github.com/kilianp07/roomutil/core/model"
	coremon "github.com/kilianp07/roomutil/core/monitoring"
	"github.com/kilianp07/roomutil/core/report"
	"github.com/kilianp07/roomutil/infra/logger"
	"github.com/kilianp07/roomutil/infra/metrics"
	"github.com/kilianp07/roomutil/infra/monitoring"
	"github.com/kilianp07/roomutil/infra/render"
	"github.com/kilianp07/roomutil/infra/source"
)

// Service loads the data, aggregates it and serves the dashboard. Every
// call re-fetches the sources; nothing is cached between requests.
type Service struct {
	loader *dataset.Loader
	sink   coremetrics.MetricsSink
	render *render.Renderer
	server config.ServerConfig
	prom   string
	log    logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, err
	}
	logg := logger.New("service")
	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	coremon.Init(mon)
	rooms, sections, err := source.NewPair(cfg.Sources, logger.New("source"))
	if err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	var opts []render.Option
	if cfg.Server.AssetsHost != "" {
		opts = append(opts, render.WithAssetsHost(cfg.Server.AssetsHost))
	}
	r, err := render.New(opts...)
	if err != nil {
		return nil, err
	}
	svc := NewWithLoader(dataset.NewLoader(rooms, sections, cfg.Columns, logger.New("loader"), sink), sink, r, logg)
	svc.server = cfg.Server
	if cfg.Metrics.HasSink("prometheus") {
		svc.prom = cfg.Metrics.PrometheusAddr
	}
	return svc, nil
}

// NewWithLoader assembles a Service around an existing loader. Nil sink or
// logger fall back to no-ops.
func NewWithLoader(l *dataset.Loader, sink coremetrics.MetricsSink, r *render.Renderer, log logger.Logger) *Service {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &Service{loader: l, sink: sink, render: r, log: log}
	s.server.SetDefaults()
	return s
}

// Summary computes the category distribution over every period.
func (s *Service) Summary(ctx context.Context) (report.Summary, error) {
	return s.SummaryFor(ctx, model.All)
}

// SummaryFor computes the category distribution of one period.
func (s *Service) SummaryFor(ctx context.Context, period string) (report.Summary, error) {
	ds, err := s.loader.Load(ctx, period)
	if err != nil {
		return report.Summary{}, err
	}
	sum := report.BuildSummary(ds)
	if rec, ok := s.sink.(coremetrics.SummaryRecorder); ok {
		ev := coremetrics.SummaryEvent{
			Period:      sum.Period,
			Efficient:   sum.Efficient.Count,
			Adequate:    sum.Adequate.Count,
			Inefficient: sum.Inefficient.Count,
			Unrated:     sum.Unrated,
			Total:       sum.Total,
			Time:        time.Now(),
		}
		if err := rec.RecordSummary(ev); err != nil {
			s.log.Warnf("record summary: %v", err)
		}
	}
	return sum, nil
}

// Dashboard loads the sections of period and builds every view, with day
// selecting the initially visible series.
func (s *Service) Dashboard(ctx context.Context, period, day string) (*report.Dashboard, error) {
	ds, err := s.loader.Load(ctx, period)
	if err != nil {
		return nil, err
	}
	return report.BuildDashboard(ds, day), nil
}

// Handler returns the HTTP routes of the service.
func (s *Service) Handler() http.Handler {
	return dashboard.NewHandler(s, s.render, s.sink, logger.New("http"))
}

// Run serves the dashboard and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.prom != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.prom); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	srv := &http.Server{
		Addr:              s.server.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.server.ReadTimeout(),
		WriteTimeout:      s.server.WriteTimeout(),
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Infof("serving dashboard on %s", s.server.Address)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close flushes pending error reports and releases the metrics sinks.
func (s *Service) Close() error {
	coremon.Flush(2 * time.Second)
	closeSink(s.sink)
	return nil
}

func closeSink(sink coremetrics.MetricsSink) {
	switch v := sink.(type) {
	case *coremetrics.MultiSink:
		for _, inner := range v.Sinks {
			closeSink(inner)
		}
	case interface{ Close() }:
		v.Close()
	}
}
