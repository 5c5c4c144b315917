// Package metrics provides the Prometheus and InfluxDB sinks. Importing it
// registers the "nop", "prometheus" and "influx" sink types with
// core/metrics.
package metrics
