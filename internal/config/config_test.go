package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()

	if strings.Join(c.Regions, ",") != "qld,nsw,vic,sa,wa" {
		t.Errorf("Regions = %v", c.Regions)
	}
	if c.OutputDir != "docs/data" {
		t.Errorf("OutputDir = %q", c.OutputDir)
	}
	if c.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", c.Timeout)
	}
	if c.UserAgent != "Mozilla/5.0" {
		t.Errorf("UserAgent = %q", c.UserAgent)
	}
	if c.BaseURL != "https://enter.robocupjunior.org.au/api/v1/public/states" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	// Defaults must not share the package-level slice
	c.Regions[0] = "nz"
	if DefaultRegions[0] != "qld" {
		t.Error("Default() leaked DefaultRegions")
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "rcja.yaml", `
base_url: http://localhost:8080/states
regions: [QLD, nat]
timeout: 3s
indent: true
calendar:
  hide: workshops
states:
  nz:
    enabled: false
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.BaseURL != "http://localhost:8080/states" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", c.Timeout)
	}
	if !c.Indent {
		t.Error("Indent should be true")
	}
	if c.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want default", c.OutputDir)
	}
	if c.Calendar.Hide != "workshops" || c.Calendar.File != DefaultCalendar {
		t.Errorf("Calendar = %+v", c.Calendar)
	}
	if c.States["NZ"].Enabled {
		t.Error("NZ should be disabled by the file")
	}
	if !c.States["QLD"].Enabled {
		t.Error("QLD should keep its built-in config")
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if strings.Join(c.Regions, ",") != "qld,nat" {
		t.Errorf("Regions = %v, want [qld nat]", c.Regions)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "bad.yaml", "regions: [qld\n")); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := Load(writeFile(t, "bad-timeout.yaml", "timeout: soon\n")); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://staging.example.com/states")
	t.Setenv(EnvRegions, " vic , tas ,")
	t.Setenv(EnvOutputDir, "/tmp/rcja")
	t.Setenv(EnvTimeout, "15s")
	t.Setenv(EnvUserAgent, "Mozilla/5.0 (X11)")
	t.Setenv(EnvLogLevel, "debug")

	c := Default()
	if err := c.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if c.BaseURL != "https://staging.example.com/states" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if strings.Join(c.Regions, ",") != "vic,tas" {
		t.Errorf("Regions = %v", c.Regions)
	}
	if c.OutputDir != "/tmp/rcja" || c.Timeout != 15*time.Second || c.UserAgent != "Mozilla/5.0 (X11)" || c.LogLevel != "debug" {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestApplyEnvBadTimeout(t *testing.T) {
	t.Setenv(EnvTimeout, "ten")
	if err := Default().ApplyEnv(); err == nil {
		t.Error("expected error for invalid RCJA_TIMEOUT")
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "RCJA_TEST_OUTPUT=from-file\nRCJA_TEST_KEEP=from-file\n")
	t.Setenv("RCJA_TEST_KEEP", "from-process")
	t.Setenv("RCJA_TEST_OUTPUT", "")
	os.Unsetenv("RCJA_TEST_OUTPUT") // nolint:errcheck

	loaded, err := LoadEnv(path, filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != path {
		t.Errorf("loaded = %v, want [%s]", loaded, path)
	}
	if got := os.Getenv("RCJA_TEST_OUTPUT"); got != "from-file" {
		t.Errorf("RCJA_TEST_OUTPUT = %q, want from-file", got)
	}
	if got := os.Getenv("RCJA_TEST_KEEP"); got != "from-process" {
		t.Errorf("RCJA_TEST_KEEP = %q, process environment should win", got)
	}
}

func TestNormalizeRegions(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    string
		wantErr bool
	}{
		{name: "lower-cases", in: []string{"QLD", "Nsw"}, want: "qld,nsw"},
		{name: "drops repeats", in: []string{"qld", "QLD", "vic", "qld"}, want: "qld,vic"},
		{name: "empty list", in: nil, want: ""},
		{name: "path separator", in: []string{"../etc"}, wantErr: true},
		{name: "blank code", in: []string{" "}, wantErr: true},
		{name: "space inside", in: []string{"new zealand"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRegions(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeRegions(%v) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeRegions(%v) error: %v", tt.in, err)
			}
			if strings.Join(got, ",") != tt.want {
				t.Errorf("NormalizeRegions(%v) = %v, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty base URL", func(c *Config) { c.BaseURL = "" }},
		{"non-http base URL", func(c *Config) { c.BaseURL = "ftp://example.com" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"bad hide", func(c *Config) { c.Calendar.Hide = "everything" }},
		{"bad region", func(c *Config) { c.Regions = []string{"a/b"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}
