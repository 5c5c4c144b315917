package metrics

// Package metrics defines the events emitted by the utilization pipeline
// (source loads, summary distributions, served requests) and the sink
// interfaces recording them. Sinks like PromSink and InfluxSink live in
// infra/metrics, register themselves by type name and are combined with
// NewMultiSink when several are configured.
