package loops

import (
	"fmt"
	"io"
)

// Variant names accepted by Demo.
const (
	VariantResult     = "result"
	VariantLabeled    = "labeled"
	VariantCollection = "collection"
)

// Variants lists the demo variants in display order.
var Variants = []string{VariantResult, VariantLabeled, VariantCollection}

// DefaultCollection is the array iterated by the collection demo.
var DefaultCollection = [5]int{10, 20, 30, 40, 50}

// Demo runs the named loop demonstration.
func Demo(w io.Writer, variant string) error {
	switch variant {
	case VariantResult:
		_, err := LoopResult(w)
		return err
	case VariantLabeled:
		_, err := Labeled(w)
		return err
	case VariantCollection:
		return Collection(w, DefaultCollection[:])
	}
	return fmt.Errorf("unknown loop variant %q", variant)
}

// LoopResult counts up until the counter reaches 10 and leaves the loop with
// counter*2 as its result, then prints "The result is 20".
func LoopResult(w io.Writer) (int, error) {
	counter := 0
	var result int
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}
	_, err := fmt.Fprintf(w, "The result is %d\n", result)
	return result, err
}

// Labeled runs an outer counting loop around an inner countdown. The inner
// loop breaks itself when remaining hits 9 and breaks the outer loop through
// its label when count reaches 2. It returns the final count.
func Labeled(w io.Writer) (int, error) {
	count := 0
countingUp:
	for {
		if _, err := fmt.Fprintf(w, "count = %d\n", count); err != nil {
			return count, err
		}
		remaining := 10
		for {
			if _, err := fmt.Fprintf(w, "remaining = %d\n", remaining); err != nil {
				return count, err
			}
			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}
		count++
	}
	_, err := fmt.Fprintf(w, "End count = %d\n", count)
	return count, err
}

// Collection prints each element of values as "The value is: N".
func Collection(w io.Writer, values []int) error {
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "The value is: %d\n", v); err != nil {
			return err
		}
	}
	return nil
}
