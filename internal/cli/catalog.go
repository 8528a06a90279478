package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/agbru/consolekata/internal/routine"
)

// CatalogMarkdown returns the routine catalogue as a markdown document.
func CatalogMarkdown(routines []routine.Routine) string {
	var b strings.Builder
	b.WriteString("# Routines\n\n")
	b.WriteString("| Command | Description |\n")
	b.WriteString("|---------|-------------|\n")
	for _, r := range routines {
		fmt.Fprintf(&b, "| `kata %s` | %s |\n", r.Name(), r.Summary())
	}
	b.WriteString("\nRun `kata all` to execute every routine, or `kata <command> --help` for its flags.\n")
	return b.String()
}

// RenderCatalog renders the catalogue through glamour. Styled output uses the
// dark theme; otherwise the notty style keeps it free of escape codes.
func RenderCatalog(routines []routine.Routine, out io.Writer, styled bool) error {
	style := "notty"
	if styled {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(CatalogMarkdown(routines))
	if err != nil {
		return fmt.Errorf("rendering catalogue: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}
