// Package ui provides theme and colour support for the toolkit's console
// output. It defines colour schemes and ANSI helper functions so decoration
// stays out of routine output, and detects whether a writer is a terminal.
//
// Routine lines are never coloured; colour is reserved for section headers,
// summaries and error messages.
package ui
