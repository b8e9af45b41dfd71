// Package regional builds per-state regional calendar pages from snapshots.
//
// Each enabled state configuration splits the state into sub-regions with
// keyword lists. Upcoming events from the state's snapshot, plus national
// events, are placed into the first sub-region whose keyword appears in the
// event name or venue.
package regional
