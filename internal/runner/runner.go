package runner

import (
	"context"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
	"github.com/pfrederiksen/rcja-events/internal/logger"
	"github.com/pfrederiksen/rcja-events/internal/metrics"
	"github.com/pfrederiksen/rcja-events/internal/storage"
)

// Fetcher retrieves one region's event payload
type Fetcher interface {
	FetchRegion(ctx context.Context, region string) (*event.Payload, error)
}

// Reporter receives progress for each region as the run advances
type Reporter interface {
	// Fetching is called before a region's request is made
	Fetching(region string)
	// Saved is called after a region's snapshot has been written
	Saved(region string, count int, path string)
	// Failed is called when any step for a region fails
	Failed(region string, err error)
	// Done is called once after every region has been processed
	Done(summary *Summary)
}

// Options configures a run
type Options struct {
	Regions   []string
	OutputDir string
	// Indent writes snapshots as two-space indented JSON instead of compact JSON
	Indent bool
}

// Result is the outcome for one region
type Result struct {
	Region   string        `json:"region"`
	Path     string        `json:"path,omitempty"`
	Count    int           `json:"count"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"-"`

	Err error `json:"-"`
}

// OK reports whether the region's snapshot was written
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary describes a completed run
type Summary struct {
	StartedAt time.Time `json:"started_at"`
	OutputDir string    `json:"output_dir"`
	Results   []Result  `json:"results"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

// Runner fetches each region in turn and writes its snapshot
type Runner struct {
	fetcher  Fetcher
	reporter Reporter
	metrics  *metrics.Recorder
}

// New creates a Runner
func New(fetcher Fetcher, reporter Reporter) *Runner {
	return &Runner{
		fetcher:  fetcher,
		reporter: reporter,
	}
}

// WithMetrics records each region's outcome on m
func (r *Runner) WithMetrics(m *metrics.Recorder) *Runner {
	r.metrics = m
	return r
}

// Run processes every region in order, one at a time. A failing region is
// reported and skipped; Run itself never fails and always calls Done.
func (r *Runner) Run(ctx context.Context, opts Options) *Summary {
	summary := &Summary{
		StartedAt: time.Now().UTC(),
		OutputDir: opts.OutputDir,
		Results:   make([]Result, 0, len(opts.Regions)),
	}

	store, storeErr := storage.New(opts.OutputDir)
	if storeErr != nil {
		logger.Error("Output directory unavailable", logger.Fields{"dir": opts.OutputDir}, storeErr)
	} else {
		store.SetIndent(opts.Indent)
		summary.OutputDir = store.Dir()
	}

	for _, region := range opts.Regions {
		res := r.runRegion(ctx, store, storeErr, region)
		summary.Results = append(summary.Results, res)
		if res.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	logger.Info("Fetch run complete", logger.Fields{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	})
	r.reporter.Done(summary)
	return summary
}

// runRegion fetches, decodes and saves one region
func (r *Runner) runRegion(ctx context.Context, store *storage.Storage, storeErr error, region string) Result {
	start := time.Now()
	res := Result{Region: region}

	r.reporter.Fetching(region)
	logger.Debug("Fetching region", logger.Fields{"region": region})

	fail := func(err error) Result {
		res.Err = err
		res.Error = err.Error()
		res.Duration = time.Since(start)
		r.reporter.Failed(region, err)
		logger.Warn("Region failed", logger.Fields{"region": region}, err)
		if r.metrics != nil {
			r.metrics.Failure(region, res.Duration)
		}
		return res
	}

	if storeErr != nil {
		return fail(storeErr)
	}

	payload, err := r.fetcher.FetchRegion(ctx, region)
	if err != nil {
		return fail(err)
	}

	path, err := store.Save(region, payload)
	if err != nil {
		return fail(err)
	}

	res.Path = path
	res.Count = payload.Count()
	res.Duration = time.Since(start)

	r.reporter.Saved(region, res.Count, path)
	logger.Debug("Snapshot saved", logger.Fields{
		"region": region,
		"count":  res.Count,
		"shape":  payload.Shape().String(),
		"path":   path,
	})
	if r.metrics != nil {
		r.metrics.Success(region, res.Count, res.Duration)
	}
	return res
}
