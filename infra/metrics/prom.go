package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/roomutil/core/metrics"
)

// PromSink records pipeline activity in Prometheus metrics.
type PromSink struct {
	loads          *prometheus.CounterVec
	loadLatency    *prometheus.HistogramVec
	rows           *prometheus.GaugeVec
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	categories     *prometheus.GaugeVec
}

// NewPromSink registers metrics on the default Prometheus registerer.
// The /metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Metrics
// already registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomutil_source_loads_total",
			Help: "Total number of source table fetches",
		}, []string{"table", "failed"}),
		loadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roomutil_source_load_seconds",
			Help:    "Time spent fetching and decoding a source table",
			Buckets: prometheus.DefBuckets,
		}, []string{"table"}),
		rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roomutil_source_rows",
			Help: "Data rows read on the last successful fetch",
		}, []string{"table"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomutil_http_requests_total",
			Help: "Total number of dashboard requests",
		}, []string{"route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roomutil_http_request_seconds",
			Help:    "Time spent serving a dashboard request",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		categories: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "roomutil_rooms",
			Help: "Rooms per efficiency category on the last summary",
		}, []string{"period", "category"}),
	}
	var err error
	if s.loads, err = register(reg, s.loads); err != nil {
		return nil, err
	}
	if s.loadLatency, err = register(reg, s.loadLatency); err != nil {
		return nil, err
	}
	if s.rows, err = register(reg, s.rows); err != nil {
		return nil, err
	}
	if s.requests, err = register(reg, s.requests); err != nil {
		return nil, err
	}
	if s.requestLatency, err = register(reg, s.requestLatency); err != nil {
		return nil, err
	}
	if s.categories, err = register(reg, s.categories); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordLoad counts the fetch and tracks its latency and row count.
func (s *PromSink) RecordLoad(ev coremetrics.LoadEvent) error {
	s.loads.WithLabelValues(ev.Table, strconv.FormatBool(ev.Failed)).Inc()
	s.loadLatency.WithLabelValues(ev.Table).Observe(ev.Duration.Seconds())
	if !ev.Failed {
		s.rows.WithLabelValues(ev.Table).Set(float64(ev.Rows))
	}
	return nil
}

// RecordSummary sets the category gauges of the period.
func (s *PromSink) RecordSummary(ev coremetrics.SummaryEvent) error {
	s.categories.WithLabelValues(ev.Period, "efficient").Set(float64(ev.Efficient))
	s.categories.WithLabelValues(ev.Period, "adequate").Set(float64(ev.Adequate))
	s.categories.WithLabelValues(ev.Period, "inefficient").Set(float64(ev.Inefficient))
	s.categories.WithLabelValues(ev.Period, "unrated").Set(float64(ev.Unrated))
	return nil
}

// RecordRequest counts a served request and its latency.
func (s *PromSink) RecordRequest(ev coremetrics.RequestEvent) error {
	s.requests.WithLabelValues(ev.Route, strconv.Itoa(ev.Status)).Inc()
	s.requestLatency.WithLabelValues(ev.Route).Observe(ev.Duration.Seconds())
	return nil
}
