// Package logging provides a unified logging interface for the kata toolkit.
// It abstracts the underlying logging implementation so routines, the
// orchestrator and the application wiring log the same way whether the
// zerolog or the zap backend is selected.
package logging
