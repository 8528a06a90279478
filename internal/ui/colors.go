package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorRed returns the error colour of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success colour of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning colour of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary colour of the active theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the info colour of the active theme.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorDim returns the secondary colour of the active theme.
func ColorDim() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SectionHeader renders title as a bold accent-coloured banner line.
func SectionHeader(title string) string {
	line := "== " + title + " =="
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Foreground(GetCurrentPalette().Accent).Render(line)
}
