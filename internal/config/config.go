package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/rcja-events/internal/calendar"
	"github.com/pfrederiksen/rcja-events/internal/fetcher"
	"github.com/pfrederiksen/rcja-events/internal/regional"
)

// Defaults
const (
	DefaultOutputDir = "docs/data"
	DefaultCalendar  = "calendar.ics"
	DefaultListing   = "events.json"
)

// DefaultRegions is the region list fetched when none is configured
var DefaultRegions = []string{"qld", "nsw", "vic", "sa", "wa"}

// Environment variables read by ApplyEnv
const (
	EnvBaseURL   = "RCJA_BASE_URL"
	EnvRegions   = "RCJA_REGIONS"
	EnvOutputDir = "RCJA_OUTPUT_DIR"
	EnvTimeout   = "RCJA_TIMEOUT"
	EnvUserAgent = "RCJA_USER_AGENT"
	EnvLogLevel  = "LOG_LEVEL"
)

// regionPattern restricts region codes to safe, unambiguous file name stems
var regionPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type Calendar struct {
	File     string `yaml:"file"`
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
	Domain   string `yaml:"domain"`
	Hide     string `yaml:"hide"`
}

type Config struct {
	BaseURL   string        `yaml:"base_url"`
	Regions   []string      `yaml:"regions"`
	OutputDir string        `yaml:"output_dir"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Indent    bool          `yaml:"indent"`
	LogLevel  string        `yaml:"log_level"`

	Calendar Calendar                        `yaml:"calendar"`
	States   map[string]regional.StateConfig `yaml:"states"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseURL:   fetcher.DefaultBaseURL,
		Regions:   append([]string(nil), DefaultRegions...),
		OutputDir: DefaultOutputDir,
		Timeout:   fetcher.Timeout,
		UserAgent: fetcher.UserAgent,
		LogLevel:  "info",
		Calendar: Calendar{
			File:     DefaultCalendar,
			Name:     calendar.DefaultName,
			Timezone: calendar.DefaultTimezone,
			Domain:   calendar.DefaultDomain,
		},
		States: regional.DefaultStates(),
	}
}

// Load returns the default configuration overlaid with the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	c.merge(&file)
	return c, nil
}

// merge copies every non-zero field of o onto c. State entries replace the
// built-in entry of the same (case-insensitive) code.
func (c *Config) merge(o *Config) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if len(o.Regions) > 0 {
		c.Regions = o.Regions
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Indent {
		c.Indent = true
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Calendar.File != "" {
		c.Calendar.File = o.Calendar.File
	}
	if o.Calendar.Name != "" {
		c.Calendar.Name = o.Calendar.Name
	}
	if o.Calendar.Timezone != "" {
		c.Calendar.Timezone = o.Calendar.Timezone
	}
	if o.Calendar.Domain != "" {
		c.Calendar.Domain = o.Calendar.Domain
	}
	if o.Calendar.Hide != "" {
		c.Calendar.Hide = o.Calendar.Hide
	}
	for code, state := range o.States {
		c.States[strings.ToUpper(code)] = state
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; existing variables are not overridden.
func LoadEnv(files ...string) ([]string, error) {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("loading %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// ApplyEnv overrides configuration from RCJA_* and LOG_LEVEL environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvRegions); v != "" {
		c.Regions = SplitRegions(v)
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// SplitRegions parses a comma separated region list
func SplitRegions(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeRegions lower-cases region codes and drops repeats, keeping the first
// occurrence. Codes that would not make a safe file name are rejected, so every
// region maps to its own snapshot file.
func NormalizeRegions(regions []string) ([]string, error) {
	out := make([]string, 0, len(regions))
	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		r = strings.ToLower(strings.TrimSpace(r))
		if !regionPattern.MatchString(r) {
			return nil, fmt.Errorf("invalid region code %q", r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}

// Validate checks the configuration and normalizes the region list
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL: %s", c.BaseURL)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if err := calendar.ValidateHide(c.Calendar.Hide); err != nil {
		return err
	}
	for code, state := range c.States {
		if !state.Enabled {
			continue
		}
		if err := state.Validate(); err != nil {
			return fmt.Errorf("state %s: %w", code, err)
		}
	}

	regions, err := NormalizeRegions(c.Regions)
	if err != nil {
		return err
	}
	c.Regions = regions
	return nil
}
