package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/rcja-events/internal/calendar"
	"github.com/pfrederiksen/rcja-events/internal/config"
	"github.com/pfrederiksen/rcja-events/internal/fetcher"
	"github.com/pfrederiksen/rcja-events/internal/filter"
	"github.com/pfrederiksen/rcja-events/internal/logger"
	"github.com/pfrederiksen/rcja-events/internal/metrics"
	"github.com/pfrederiksen/rcja-events/internal/regional"
	"github.com/pfrederiksen/rcja-events/internal/runner"
	"github.com/pfrederiksen/rcja-events/internal/storage"
)

const (
	ExitSuccess        = 0
	ExitError          = 1
	ExitPartialFailure = 2
)

// CodeError carries a process exit code out of a command
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// rootOptions holds flags shared by every command
type rootOptions struct {
	configPath string
	envFile    string
	dataDir    string
	baseURL    string
	regions    []string
	verbose    bool
	noColor    bool
}

// fetchOptions holds flags of the fetch run
type fetchOptions struct {
	format      string
	discover    bool
	strict      bool
	pretty      bool
	metricsFile string
	timeout     time.Duration
	userAgent   string
}

// NewRootCmd creates the root command. Running it without a subcommand fetches
// every configured region.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	fopts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "rcja-events",
		Short: "Snapshot RoboCup Junior event listings to local JSON files",
		Long: `A CLI tool to fetch RoboCup Junior event listings for each region
and save them as JSON snapshots for static site generation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, fopts)
		},
	}

	// Define flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	pf.StringVar(&opts.dataDir, "data-dir", config.DefaultOutputDir, "Directory for snapshot files")
	pf.StringVar(&opts.baseURL, "base-url", fetcher.DefaultBaseURL, "Events API base URL")
	pf.StringSliceVar(&opts.regions, "regions", append([]string(nil), config.DefaultRegions...), "Region codes, comma separated")
	pf.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	f := cmd.Flags()
	f.StringVar(&fopts.format, "format", "text", "Output format: text or json")
	f.BoolVar(&fopts.discover, "discover", false, "Fetch the region list from the API instead of --regions")
	f.BoolVar(&fopts.strict, "strict", false, "Exit with code 2 if any region fails")
	f.BoolVar(&fopts.pretty, "pretty", false, "Write snapshots as indented JSON")
	f.StringVar(&fopts.metricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file")
	f.DurationVar(&fopts.timeout, "timeout", fetcher.Timeout, "Per-request timeout")
	f.StringVar(&fopts.userAgent, "user-agent", fetcher.UserAgent, "User-Agent header sent to the API")

	cmd.AddCommand(newCalendarCmd(opts), newEventsCmd(opts), newRegionsCmd(opts))
	return cmd
}

// loadConfig layers defaults, the config file, the environment and changed flags,
// then configures the default logger
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	loaded, err := config.LoadEnv(opts.envFile)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.OutputDir = opts.dataDir
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("regions") {
		cfg.Regions = opts.regions
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	logger.Debug("Configuration loaded", logger.Fields{
		"config":     opts.configPath,
		"env_files":  loaded,
		"base_url":   cfg.BaseURL,
		"output_dir": cfg.OutputDir,
		"regions":    strings.Join(cfg.Regions, ","),
	})
	return cfg, nil
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, opts *rootOptions, fopts *fetchOptions) error {
	// Validate format
	format, err := parseFormat(fopts.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = fopts.timeout
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = fopts.userAgent
	}
	if flags.Changed("pretty") {
		cfg.Indent = fopts.pretty
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	client := fetcher.New(cfg.BaseURL, fetcher.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})

	regions := cfg.Regions
	if fopts.discover {
		regions, err = discoverRegions(cmd, client)
		if err != nil {
			return err
		}
	}

	rec := metrics.NewRecorder()
	summary := runner.New(client, newReporter(format, cmd.OutOrStdout(), opts.noColor)).
		WithMetrics(rec).
		Run(cmd.Context(), runner.Options{
			Regions:   regions,
			OutputDir: cfg.OutputDir,
			Indent:    cfg.Indent,
		})

	if fopts.metricsFile != "" {
		if err := rec.WriteTextfile(fopts.metricsFile); err != nil {
			logger.Error("Failed to write metrics", logger.Fields{"path": fopts.metricsFile}, err)
		}
	}

	if fopts.strict && summary.Failed > 0 {
		return &CodeError{
			Code: ExitPartialFailure,
			Err:  fmt.Errorf("%d of %d regions failed", summary.Failed, len(summary.Results)),
		}
	}
	return nil
}

// discoverRegions asks the API for its region list
func discoverRegions(cmd *cobra.Command, client *fetcher.Client) ([]string, error) {
	found, err := client.ListRegions(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("discovering regions: %w", err)
	}

	codes := make([]string, 0, len(found))
	for _, r := range found {
		if r.Abbreviation != "" {
			codes = append(codes, r.Abbreviation)
		}
	}

	regions, err := config.NormalizeRegions(codes)
	if err != nil {
		return nil, fmt.Errorf("discovering regions: %w", err)
	}
	logger.Debug("Discovered regions", logger.Fields{"regions": strings.Join(regions, ",")})
	return regions, nil
}

func newCalendarCmd(opts *rootOptions) *cobra.Command {
	var (
		hide   string
		output string
		dates  string
	)
	f := filter.NewFilter()

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export snapshot events as an iCalendar file",
		Long: `Reads the snapshots of the selected regions and writes one .ics file.
National events are included whenever an Australian region is selected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hide") {
				cfg.Calendar.Hide = hide
			}
			if cmd.Flags().Changed("output") {
				cfg.Calendar.File = output
			}
			if err := calendar.ValidateHide(cfg.Calendar.Hide); err != nil {
				return err
			}

			store, err := storage.New(cfg.OutputDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			if dates != "" {
				f.DateFrom, f.DateTo, err = filter.ParseDateRange(dates, time.Now())
				if err != nil {
					return err
				}
			}

			events := calendar.CollectEvents(store, cfg.Regions)
			if !f.IsEmpty() {
				logger.Debug("Filtering calendar events", logger.Fields{"filter": f.String()})
				events = f.Apply(events)
			}
			ics := calendar.GenerateICS(events, calendar.Options{
				Name:     cfg.Calendar.Name,
				Timezone: cfg.Calendar.Timezone,
				Domain:   cfg.Calendar.Domain,
				Hide:     cfg.Calendar.Hide,
			}, time.Now())

			path, err := store.WriteFile(cfg.Calendar.File, []byte(ics))
			if err != nil {
				return err
			}
			writePaths(cmd.OutOrStdout(), []string{path})
			return nil
		},
	}

	cmd.Flags().StringVar(&hide, "hide", "", "Event type to leave out: competitions or workshops")
	cmd.Flags().StringVar(&output, "output", config.DefaultCalendar, "Calendar file name inside the data directory")
	cmd.Flags().StringVar(&dates, "dates", "", "Only events starting in this range, e.g. 'Mar 1-15', 'March' or '2026-03-01..2026-03-15'")
	cmd.Flags().StringSliceVar(&f.Keywords, "keyword", nil, "Only events whose name or venue contains one of these words")
	cmd.Flags().StringSliceVar(&f.States, "state", nil, "Only events of these states")
	cmd.Flags().StringSliceVar(&f.Divisions, "division", nil, "Only events offering one of these divisions")
	cmd.Flags().BoolVar(&f.WeekendsOnly, "weekends", false, "Only events starting on a Saturday or Sunday")
	return cmd
}

func newEventsCmd(opts *rootOptions) *cobra.Command {
	var (
		hide   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Export snapshot events as a flat JSON listing",
		Long: `Reads the snapshots of the selected regions and writes one JSON array of
calendar-ready events. National events are included whenever an Australian
region is selected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hide") {
				cfg.Calendar.Hide = hide
			}
			if err := calendar.ValidateHide(cfg.Calendar.Hide); err != nil {
				return err
			}

			store, err := storage.New(cfg.OutputDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			listing := calendar.Listing(calendar.CollectEvents(store, cfg.Regions), cfg.Calendar.Hide)
			data, err := json.MarshalIndent(listing, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding events: %w", err)
			}

			path, err := store.WriteFile(output, data)
			if err != nil {
				return err
			}
			logger.Debug("Event listing written", logger.Fields{"path": path, "events": len(listing)})
			writePaths(cmd.OutOrStdout(), []string{path})
			return nil
		},
	}

	cmd.Flags().StringVar(&hide, "hide", "", "Event type to leave out: competitions or workshops")
	cmd.Flags().StringVar(&output, "output", config.DefaultListing, "Listing file name inside the data directory")
	return cmd
}

func newRegionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Build regional page data from snapshots",
		Long: `Groups each configured state's upcoming events, plus national events,
into sub-regions and writes {region}-regions.json and {region}-config.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			store, err := storage.New(cfg.OutputDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			written, err := regional.NewGenerator(store, cfg.States).Generate(cfg.Regions)
			if err != nil {
				return fmt.Errorf("building regional pages: %w", err)
			}
			writePaths(cmd.OutOrStdout(), written)
			return nil
		},
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var codeErr *CodeError
		if errors.As(err, &codeErr) {
			os.Exit(codeErr.Code)
		}
		os.Exit(ExitError)
	}
}
