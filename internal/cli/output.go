package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/consolekata/internal/ui"
)

// OutputConfig holds configuration for the output-file copy.
type OutputConfig struct {
	// OutputFile is the path to save the output to (empty for no file output).
	OutputFile string
	// Quiet suppresses the confirmation message.
	Quiet bool
}

// WriteOutputToFile writes the captured output of the named routines to
// cfg.OutputFile under a comment header, creating parent directories as
// needed.
func WriteOutputToFile(content []byte, routines []string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := writeOutput(file, content, routines, time.Now()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}

func writeOutput(w io.Writer, content []byte, routines []string, generated time.Time) error {
	var header bytes.Buffer
	fmt.Fprintf(&header, "# kata routine output\n")
	fmt.Fprintf(&header, "# Generated: %s\n", generated.Format(time.RFC3339))
	for _, name := range routines {
		fmt.Fprintf(&header, "# Routine: %s\n", name)
	}
	fmt.Fprintf(&header, "# Lines: %d\n\n", bytes.Count(content, []byte("\n")))
	if _, err := w.Write(header.Bytes()); err != nil {
		return err
	}
	_, err := w.Write(content)
	return err
}

// SaveOutput writes the output file and confirms on out unless quiet.
func SaveOutput(content []byte, routines []string, cfg OutputConfig, out io.Writer) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := WriteOutputToFile(content, routines, cfg); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "%s✓ Output saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
	}
	return nil
}
