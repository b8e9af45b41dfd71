package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.Success("qld", 12, 200*time.Millisecond)
	r.Success("qld", 14, 100*time.Millisecond)
	r.Failure("nsw", time.Second)

	if got := testutil.ToFloat64(r.FetchTotal.WithLabelValues("qld", ResultSuccess)); got != 2 {
		t.Errorf("qld success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.FetchTotal.WithLabelValues("nsw", ResultFailure)); got != 1 {
		t.Errorf("nsw failure count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.Events.WithLabelValues("qld")); got != 14 {
		t.Errorf("qld events = %v, want 14", got)
	}
	if got := testutil.ToFloat64(r.LastSuccess.WithLabelValues("qld")); got <= 0 {
		t.Errorf("qld last success = %v, want > 0", got)
	}
	if got := testutil.CollectAndCount(r.FetchDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Success("vic", 3, 50*time.Millisecond)

	path := filepath.Join(t.TempDir(), "rcja.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading metrics file: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		`rcja_fetch_total{region="vic",result="success"} 1`,
		`rcja_snapshot_events{region="vic"} 3`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics file missing %q:\n%s", want, text)
		}
	}
}
