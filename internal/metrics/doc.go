// Package metrics records per-routine run statistics in a private Prometheus
// registry and exports them in the node-exporter textfile format.
package metrics
