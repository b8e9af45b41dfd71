// Package cli implements the command-line interface for rcja-events.
//
// The cli package provides the Cobra-based CLI. The root command fetches every
// configured region and writes its snapshot; the calendar, events and regions
// subcommands turn existing snapshots into an .ics feed, a flat JSON event
// listing and regional page data.
// It coordinates the config, fetcher, runner, storage and report packages.
package cli
