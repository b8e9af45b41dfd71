package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/rcja-events/internal/report"
	"github.com/pfrederiksen/rcja-events/internal/runner"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// parseFormat validates a --format value
func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// newReporter returns the progress reporter for the chosen format
func newReporter(format OutputFormat, w io.Writer, noColor bool) runner.Reporter {
	if format == FormatJSON {
		return report.NewJSON(w)
	}
	return report.NewConsole(w, noColor)
}

// writePaths prints one "✓ Wrote" line per generated file
func writePaths(w io.Writer, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintln(w, "Nothing to write.")
		return
	}
	for _, p := range paths {
		fmt.Fprintf(w, "✓ Wrote %s\n", p)
	}
}
