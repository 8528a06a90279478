// Package format holds pure string formatting helpers shared by the
// presentation layer and the routines.
package format
