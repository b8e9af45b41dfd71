package regional

import (
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

// PageEvent is an event as shown on a regional page
type PageEvent struct {
	Date            string `json:"date"`
	Name            string `json:"name"`
	Desc            string `json:"desc"`
	Highlight       bool   `json:"highlight"`
	RegistrationURL string `json:"registrationURL"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`

	start time.Time
}

// Section is one sub-region of a regional page
type Section struct {
	Title  string      `json:"title"`
	Events []PageEvent `json:"events"`
}

// Page maps sub-region keys to their sections
type Page map[string]*Section

// PublicConfig is the page metadata published alongside a Page, without keywords
type PublicConfig struct {
	Title        string            `json:"title"`
	Year         string            `json:"year"`
	RegionOrder  []string          `json:"regionOrder"`
	RegionTitles map[string]string `json:"regionTitles"`
}

// orderedKeys returns sub-region keys in RegionOrder first, then any others alphabetically
func (c StateConfig) orderedKeys() []string {
	keys := make([]string, 0, len(c.SubRegions))
	seen := make(map[string]bool, len(c.SubRegions))
	for _, key := range c.RegionOrder {
		if _, ok := c.SubRegions[key]; ok && !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	rest := make([]string, 0)
	for key := range c.SubRegions {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Categorize returns the sub-region key an event belongs to, or "" if none.
// Keywords are matched against the event name and venue; unmatched state and
// national events go to the default region.
func Categorize(evt *event.Event, cfg StateConfig) string {
	text := evt.SearchText()

	for _, key := range cfg.orderedKeys() {
		for _, kw := range cfg.SubRegions[key].Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return key
			}
		}
	}

	if strings.Contains(text, "state") || strings.Contains(text, "national") {
		return cfg.DefaultRegion
	}
	return ""
}

// Build groups upcoming events into the configured sub-regions.
// Events starting before now, or without a parseable start date, are left out.
func Build(cfg StateConfig, events []*event.Event, now time.Time) Page {
	page := make(Page, len(cfg.SubRegions))
	for key, sub := range cfg.SubRegions {
		page[key] = &Section{Title: sub.Title, Events: []PageEvent{}}
	}

	for _, evt := range events {
		start := evt.Start()
		if start.IsZero() || start.Before(now) {
			continue
		}

		key := Categorize(evt, cfg)
		section, ok := page[key]
		if key == "" || !ok {
			continue
		}

		desc := evt.Location()
		if desc == "" {
			desc = "TBC"
		}

		section.Events = append(section.Events, PageEvent{
			Date:            start.Format("2 Jan"),
			Name:            evt.Name,
			Desc:            desc,
			Highlight:       evt.IsHighlight(),
			RegistrationURL: evt.RegistrationURL,
			StartDate:       evt.StartDate,
			EndDate:         evt.EndDate,
			start:           start,
		})
	}

	for _, section := range page {
		sort.SliceStable(section.Events, func(i, j int) bool {
			return section.Events[i].start.Before(section.Events[j].start)
		})
	}

	return page
}

// Public returns the page metadata for cfg
func Public(cfg StateConfig, now time.Time) PublicConfig {
	titles := make(map[string]string, len(cfg.SubRegions))
	for key, sub := range cfg.SubRegions {
		titles[key] = sub.Title
	}
	return PublicConfig{
		Title:        cfg.Title,
		Year:         now.Format("2006"),
		RegionOrder:  cfg.orderedKeys(),
		RegionTitles: titles,
	}
}
