// Package sequence reports terms of the Fibonacci sequence using the
// iterative running-pair method, with F(1) = F(2) = 1.
//
// The index can come from a fixed value or from one line of text read from
// an io.Reader; see Source.
package sequence
