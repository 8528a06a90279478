// Package greeting prints the toolkit's fixed greeting line.
package greeting

import (
	"fmt"
	"io"
)

// Message is the greeting text.
const Message = "Hello World!"

// Print writes Message and a newline to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, Message)
	return err
}
