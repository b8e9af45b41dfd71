package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pfrederiksen/rcja-events/internal/runner"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Fetching("qld")
	c.Saved("qld", 1, "docs/data/qld-events.json")
	c.Fetching("nsw")
	c.Failed("nsw", errors.New("connection refused"))
	c.Done(&runner.Summary{Succeeded: 1, Failed: 1})

	want := "Fetching qld...\n" +
		"✓ Saved 1 events for qld to docs/data/qld-events.json\n" +
		"Fetching nsw...\n" +
		"✗ Error fetching nsw: connection refused\n" +
		"\nDone! 1 succeeded, 1 failed\n"

	if buf.String() != want {
		t.Errorf("console output =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestConsoleNoANSIWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Saved("vic", 3, "out/vic-events.json")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no escape codes, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSON(&buf)

	j.Fetching("qld")
	j.Saved("qld", 2, "out/qld-events.json")
	j.Failed("nsw", errors.New("timeout"))
	if buf.Len() != 0 {
		t.Fatalf("expected no output before Done, got %q", buf.String())
	}

	j.Done(&runner.Summary{
		OutputDir: "out",
		Results: []runner.Result{
			{Region: "qld", Path: "out/qld-events.json", Count: 2},
			{Region: "nsw", Error: "timeout", Err: errors.New("timeout")},
		},
		Succeeded: 1,
		Failed:    1,
	})

	var decoded struct {
		OutputDir string `json:"output_dir"`
		Results   []struct {
			Region string `json:"region"`
			Count  int    `json:"count"`
			Error  string `json:"error"`
		} `json:"results"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("summary is not JSON: %v", err)
	}

	if decoded.Succeeded != 1 || decoded.Failed != 1 {
		t.Errorf("totals = %d/%d, want 1/1", decoded.Succeeded, decoded.Failed)
	}
	if len(decoded.Results) != 2 || decoded.Results[0].Count != 2 || decoded.Results[1].Error != "timeout" {
		t.Errorf("unexpected results: %+v", decoded.Results)
	}
}
