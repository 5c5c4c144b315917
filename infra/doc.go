// Package infra contains technical adapters such as data sources, the chart
// renderer and metrics exporters. These packages should depend only on the
// interfaces defined in the core packages.
package infra
