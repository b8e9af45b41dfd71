package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRegionURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		region  string
		want    string
	}{
		{
			name:    "plain base",
			baseURL: "https://api.example.com/states",
			region:  "nsw",
			want:    "https://api.example.com/states/nsw/allEventsDetailed/",
		},
		{
			name:    "base with trailing slash",
			baseURL: "https://api.example.com/states/",
			region:  "qld",
			want:    "https://api.example.com/states/qld/allEventsDetailed/",
		},
		{
			name:    "default base",
			baseURL: "",
			region:  "vic",
			want:    DefaultBaseURL + "/vic/allEventsDetailed/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.baseURL, Options{})
			if got := c.RegionURL(tt.region); got != tt.want {
				t.Errorf("RegionURL(%q) = %q, want %q", tt.region, got, tt.want)
			}
		})
	}
}

func TestFetchRegion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantError  bool
		wantStatus bool
		wantCount  int
	}{
		{
			name:       "list payload",
			body:       `[{"id":1},{"id":2}]`,
			statusCode: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "object payload",
			body:       `{"events":[{"id":1}]}`,
			statusCode: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "HTTP error",
			body:       `{"detail":"not found"}`,
			statusCode: http.StatusNotFound,
			wantError:  true,
			wantStatus: true,
		},
		{
			name:       "server error",
			body:       "",
			statusCode: http.StatusBadGateway,
			wantError:  true,
			wantStatus: true,
		},
		{
			name:       "invalid JSON",
			body:       "<html>maintenance</html>",
			statusCode: http.StatusOK,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); ua != UserAgent {
					t.Errorf("User-Agent = %q, want %q", ua, UserAgent)
				}
				if r.URL.Path != "/qld/allEventsDetailed/" {
					t.Errorf("path = %q, want /qld/allEventsDetailed/", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body)) // nolint:errcheck
			}))
			defer server.Close()

			c := New(server.URL, Options{})
			payload, err := c.FetchRegion(context.Background(), "qld")

			if tt.wantError {
				if err == nil {
					t.Fatal("FetchRegion() expected error, got nil")
				}
				var statusErr *StatusError
				if got := errors.As(err, &statusErr); got != tt.wantStatus {
					t.Errorf("errors.As(StatusError) = %v, want %v (err: %v)", got, tt.wantStatus, err)
				}
				if tt.wantStatus && statusErr.StatusCode != tt.statusCode {
					t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.statusCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("FetchRegion() unexpected error: %v", err)
			}
			if payload.Count() != tt.wantCount {
				t.Errorf("Count() = %d, want %d", payload.Count(), tt.wantCount)
			}
		})
	}
}

func TestFetchRegionTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := New(server.URL, Options{Timeout: 50 * time.Millisecond})
	if _, err := c.FetchRegion(context.Background(), "sa"); err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestFetchRegionCustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "rcja-test/1.0" {
			t.Errorf("User-Agent = %q, want rcja-test/1.0", ua)
		}
		w.Write([]byte(`[]`)) // nolint:errcheck
	}))
	defer server.Close()

	c := New(server.URL, Options{UserAgent: "rcja-test/1.0"})
	if _, err := c.FetchRegion(context.Background(), "wa"); err != nil {
		t.Fatalf("FetchRegion() unexpected error: %v", err)
	}
}

func TestListRegions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("path = %q, want /", r.URL.Path)
		}
		w.Write([]byte(`[{"abbreviation":"QLD","name":"Queensland"},{"abbreviation":"NAT","name":"National"}]`)) // nolint:errcheck
	}))
	defer server.Close()

	c := New(server.URL, Options{})
	regions, err := c.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("ListRegions() error: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Abbreviation != "QLD" || regions[1].Name != "National" {
		t.Errorf("unexpected regions: %+v", regions)
	}
}
