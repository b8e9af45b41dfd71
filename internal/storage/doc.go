// Package storage provides file-based persistence for region event snapshots.
//
// Each region's most recent API response is stored as {dir}/{region}-events.json
// and fully replaced on every run. Writes are plain truncate-and-write; a
// snapshot is a disposable cache of the remote data, not durable state.
// The default location is docs/data, ready for static site generation.
package storage
