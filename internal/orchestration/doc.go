// Package orchestration runs routines one at a time or all together and
// aggregates their results. Presentation is decoupled through the
// ResultPresenter and StatusReporter interfaces; every run is traced and
// recorded in the metrics recorder.
package orchestration
