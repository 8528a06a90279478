// Package shadowing demonstrates the difference between an immutable
// binding, a mutable variable and a shadowed name.
//
// Immutability is enforced by the compiler: Immutable binds x as a constant,
// and any attempt to assign to it fails to build, so there is no runtime
// branch to exercise.
package shadowing

import (
	"fmt"
	"io"
)

// DefaultSeed is the starting value of x in the shadowing demonstration.
const DefaultSeed = 5

// Variant names accepted by Run.
const (
	VariantImmutable = "immutable"
	VariantMutable   = "mutable"
	VariantShadow    = "shadow"
	VariantAll       = "all"
)

// Variants lists every accepted variant name.
var Variants = []string{VariantImmutable, VariantMutable, VariantShadow, VariantAll}

// Trace records the value of x at each step of the shadowing demonstration.
type Trace struct {
	// Outer is x after the outer shadow (seed + 1).
	Outer int
	// Inner is x inside the nested block (Outer * 2).
	Inner int
	// After is the outer x once the nested block has ended.
	After int
}

// Immutable prints the value of a constant x.
func Immutable(w io.Writer) error {
	const x = 5
	_, err := fmt.Fprintf(w, "The value of x is: %d\n", x)
	return err
}

// Mutable prints x, overwrites it in place, and prints it again.
func Mutable(w io.Writer) error {
	x := 5
	if _, err := fmt.Fprintf(w, "The value of x is: %d\n", x); err != nil {
		return err
	}
	x = 6
	_, err := fmt.Fprintf(w, "The value of x is: %d\n", x)
	return err
}

// Shadow computes the shadowing trace for seed without printing.
func Shadow(seed int) Trace {
	tr, _ := WriteShadow(io.Discard, seed)
	return tr
}

// WriteShadow rebinds x as seed+1, opens a nested block that rebinds x again
// as twice that value and prints it, then prints the outer x, which the
// nested block left untouched. Each rebinding is a new variable.
func WriteShadow(w io.Writer, seed int) (Trace, error) {
	var tr Trace
	x := seed
	{
		x := x + 1
		tr.Outer = x
		{
			x := x * 2
			tr.Inner = x
			if _, err := fmt.Fprintf(w, "The value of x in the inner scope is: %d\n", x); err != nil {
				return tr, err
			}
		}
		tr.After = x
		if _, err := fmt.Fprintf(w, "The value of x is: %d\n", x); err != nil {
			return tr, err
		}
	}
	return tr, nil
}

// Run executes the named variant against w.
func Run(w io.Writer, variant string, seed int) error {
	switch variant {
	case VariantImmutable:
		return Immutable(w)
	case VariantMutable:
		return Mutable(w)
	case VariantShadow:
		_, err := WriteShadow(w, seed)
		return err
	case VariantAll:
		if err := Immutable(w); err != nil {
			return err
		}
		if err := Mutable(w); err != nil {
			return err
		}
		_, err := WriteShadow(w, seed)
		return err
	}
	return fmt.Errorf("unknown shadowing variant %q", variant)
}
