// Package routine defines the Routine abstraction shared by every console
// program in the toolkit, the Options that parameterise a run, and the
// Factory that registers routines by name.
package routine
