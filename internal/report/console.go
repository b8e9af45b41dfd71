package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pfrederiksen/rcja-events/internal/runner"
)

// Console prints one human-readable line per step, as the run happens
type Console struct {
	w     io.Writer
	ok    *color.Color
	fail  *color.Color
	faint *color.Color
}

// NewConsole creates a console reporter writing to w.
// Colour follows fatih/color's terminal detection unless noColor is set.
func NewConsole(w io.Writer, noColor bool) *Console {
	c := &Console{
		w:     w,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		faint: color.New(color.Faint),
	}
	if noColor {
		c.ok.DisableColor()
		c.fail.DisableColor()
		c.faint.DisableColor()
	}
	return c
}

// Fetching prints the region being requested
func (c *Console) Fetching(region string) {
	c.faint.Fprintf(c.w, "Fetching %s...\n", region) // nolint:errcheck
}

// Saved prints the region, its displayed event count, and the snapshot path
func (c *Console) Saved(region string, count int, path string) {
	c.ok.Fprintf(c.w, "✓ Saved %d events for %s to %s\n", count, region, path) // nolint:errcheck
}

// Failed prints the region and the error text
func (c *Console) Failed(region string, err error) {
	c.fail.Fprintf(c.w, "✗ Error fetching %s: %v\n", region, err) // nolint:errcheck
}

// Done prints the completion line
func (c *Console) Done(summary *runner.Summary) {
	fmt.Fprintf(c.w, "\nDone! %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
}
