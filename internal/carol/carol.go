// Package carol generates the twelve cumulative verses of "The Twelve Days
// of Christmas".
package carol

import (
	"fmt"
	"io"
)

// Verses is the number of verses in the carol.
const Verses = 12

// Days holds the ordinal day names, indexed 0-11.
var Days = [Verses]string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// Gifts holds the gift phrases, indexed 0-11 in the order they are added.
var Gifts = [Verses]string{
	"a Partridge in a Pear Tree",
	"Two Turtle Doves",
	"Three French Hens",
	"Four Calling Birds",
	"Five Golden Rings",
	"Six Geese a Laying",
	"Seven Swans a Swimming",
	"Eight Maids a Milking",
	"Nine Ladies Dancing",
	"Ten Lords a Leaping",
	"Eleven Pipers Piping",
	"Twelve Drummers Drumming",
}

// Conjunction precedes the first gift in every verse that lists more than one.
const Conjunction = "and "

// Refrain returns the opening line of verse i.
func Refrain(i int) string {
	return fmt.Sprintf("On the %s day of Christmas my true love sent to me", Days[i])
}

// Verse returns the lines of verse i (0-11): the refrain followed by gifts i
// down to 0. Gift 0 gets the conjunction when i > 0. The trailing blank
// separator line is not included.
func Verse(i int) ([]string, error) {
	if i < 0 || i >= Verses {
		return nil, fmt.Errorf("verse index %d out of range [0, %d)", i, Verses)
	}
	lines := make([]string, 0, i+2)
	lines = append(lines, Refrain(i))
	for j := i; j >= 0; j-- {
		gift := Gifts[j]
		if j == 0 && i > 0 {
			gift = Conjunction + gift
		}
		lines = append(lines, gift)
	}
	return lines, nil
}

// WriteVerse writes verse i followed by one blank line.
func WriteVerse(w io.Writer, i int) error {
	lines, err := Verse(i)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// Write writes all twelve verses in ascending order, each followed by a
// blank line.
func Write(w io.Writer) error {
	for i := 0; i < Verses; i++ {
		if err := WriteVerse(w, i); err != nil {
			return err
		}
	}
	return nil
}
