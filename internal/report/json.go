package report

import (
	"encoding/json"
	"io"

	"github.com/pfrederiksen/rcja-events/internal/logger"
	"github.com/pfrederiksen/rcja-events/internal/runner"
)

// JSON stays quiet during the run and writes the summary as one JSON document at the end
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON summary reporter writing to w
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) Fetching(region string)                      {}
func (j *JSON) Saved(region string, count int, path string) {}
func (j *JSON) Failed(region string, err error)             {}

// Done encodes the summary
func (j *JSON) Done(summary *runner.Summary) {
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		logger.Error("Failed to write summary", nil, err)
	}
}
