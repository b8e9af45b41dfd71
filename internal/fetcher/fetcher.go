package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

const (
	DefaultBaseURL = "https://enter.robocupjunior.org.au/api/v1/public/states"
	// UserAgent is a generic browser agent; the API rejects unidentified clients
	UserAgent = "Mozilla/5.0"
	Timeout   = 10 * time.Second

	eventsPath = "allEventsDetailed/"
)

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Options tunes a Client. Zero values fall back to the package defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// Client fetches event listings from the entry system's public API
type Client struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a new Client for baseURL
func New(baseURL string, opts Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	return &Client{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: opts.UserAgent,
	}
}

// BaseURL returns the API base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RegionURL returns the detailed events endpoint for a region,
// e.g. "{base}/qld/allEventsDetailed/"
func (c *Client) RegionURL(region string) string {
	return c.baseURL + "/" + url.PathEscape(region) + "/" + eventsPath
}

// FetchRegion fetches and decodes the event listing for one region
func (c *Client) FetchRegion(ctx context.Context, region string) (*event.Payload, error) {
	body, err := c.get(ctx, c.RegionURL(region))
	if err != nil {
		return nil, err
	}

	payload, err := event.DecodePayload(body)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return payload, nil
}

// Region is one entry of the API's state listing
type Region struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// ListRegions fetches the regions the API knows about
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	body, err := c.get(ctx, c.baseURL+"/")
	if err != nil {
		return nil, err
	}

	var regions []Region
	if err := json.Unmarshal(body, &regions); err != nil {
		return nil, fmt.Errorf("decoding regions: %w", err)
	}
	return regions, nil
}

// get performs a GET request and returns the full response body
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
