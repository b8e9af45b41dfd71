package regional

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/logger"
	"github.com/pfrederiksen/rcja-events/internal/storage"
)

// NationalRegion is the region whose events appear on every state's page
const NationalRegion = "nat"

// Generator writes regional page data next to the snapshots
type Generator struct {
	store  *storage.Storage
	states map[string]StateConfig
	now    func() time.Time
}

// NewGenerator creates a Generator. states is keyed by upper-case state code.
func NewGenerator(store *storage.Storage, states map[string]StateConfig) *Generator {
	return &Generator{
		store:  store,
		states: states,
		now:    time.Now,
	}
}

// Generate writes {region}-regions.json and {region}-config.json for each
// region with an enabled configuration and a snapshot. Regions without either
// are skipped. It returns the paths written.
func (g *Generator) Generate(regions []string) ([]string, error) {
	now := g.now()
	written := make([]string, 0, len(regions)*2)

	national, err := g.store.LoadEvents(NationalRegion)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			logger.Warn("Skipping national events", nil, err)
		}
		national = nil
	}

	for _, region := range regions {
		region = strings.ToLower(region)
		if region == NationalRegion {
			continue
		}

		cfg, ok := g.states[strings.ToUpper(region)]
		if !ok || !cfg.Enabled {
			logger.Debug("No regional page configured", logger.Fields{"region": region})
			continue
		}

		events, err := g.store.LoadEvents(region)
		if err != nil {
			logger.Warn("Skipping regional page", logger.Fields{"region": region}, err)
			continue
		}
		events = append(events, national...)

		page := Build(cfg, events, now)
		path, err := g.writeJSON(region+"-regions.json", page)
		if err != nil {
			return written, err
		}
		written = append(written, path)

		path, err = g.writeJSON(region+"-config.json", Public(cfg, now))
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func (g *Generator) writeJSON(name string, v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	return g.store.WriteFile(name, data)
}
