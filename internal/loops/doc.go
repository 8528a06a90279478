// Package loops holds the loop-control routines: the countdown printer and
// three small demonstrations of loop results, labelled breaks and iteration
// over a collection.
package loops
