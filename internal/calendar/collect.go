package calendar

import (
	"errors"
	"strings"

	"github.com/pfrederiksen/rcja-events/internal/event"
	"github.com/pfrederiksen/rcja-events/internal/logger"
	"github.com/pfrederiksen/rcja-events/internal/storage"
)

// NationalRegion holds events that belong on every Australian state's calendar
const NationalRegion = "nat"

// australianRegions are the region codes NationalRegion events are merged into
var australianRegions = map[string]bool{
	"vic": true, "nsw": true, "qld": true, "sa": true, "wa": true,
	"nt": true, "act": true, "tas": true, "nat": true,
}

// Regions returns the lower-cased region list, with NationalRegion appended
// when any Australian region is requested and it is not already present
func Regions(requested []string) []string {
	out := make([]string, 0, len(requested)+1)
	hasAus, hasNat := false, false
	for _, r := range requested {
		r = strings.ToLower(r)
		out = append(out, r)
		if australianRegions[r] {
			hasAus = true
		}
		if r == NationalRegion {
			hasNat = true
		}
	}
	if hasAus && !hasNat {
		out = append(out, NationalRegion)
	}
	return out
}

// CollectEvents loads the events of every requested region from its snapshot.
// Missing or unreadable snapshots are logged and skipped.
func CollectEvents(store *storage.Storage, regions []string) []*event.Event {
	events := make([]*event.Event, 0)
	for _, region := range Regions(regions) {
		regionEvents, err := store.LoadEvents(region)
		if err != nil {
			if errors.Is(err, storage.ErrNoSnapshot) {
				logger.Debug("No snapshot for region", logger.Fields{"region": region})
			} else {
				logger.Warn("Skipping region snapshot", logger.Fields{"region": region}, err)
			}
			continue
		}
		events = append(events, regionEvents...)
	}
	event.SortByStart(events)
	return events
}
