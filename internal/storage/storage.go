package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

// ErrNoSnapshot is returned by Load when a region has no snapshot file yet
var ErrNoSnapshot = errors.New("no snapshot")

// Storage handles persistence of per-region event snapshots
type Storage struct {
	dataDir string
	indent  bool
}

// New creates a new Storage instance, creating dataDir and any missing parents
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// SetIndent switches snapshot files between compact and two-space indented JSON
func (s *Storage) SetIndent(indent bool) {
	s.indent = indent
}

// Dir returns the directory snapshots are written to
func (s *Storage) Dir() string {
	return s.dataDir
}

// SnapshotPath returns the path to a region's snapshot file, e.g. "{dir}/nsw-events.json"
func (s *Storage) SnapshotPath(region string) string {
	return filepath.Join(s.dataDir, region+"-events.json")
}

// Save writes a region's payload, replacing any previous snapshot
func (s *Storage) Save(region string, payload *event.Payload) (string, error) {
	data := payload.Bytes()
	if s.indent {
		indented, err := payload.Indent()
		if err != nil {
			return "", err
		}
		data = indented
	}

	path := s.SnapshotPath(region)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}

	return path, nil
}

// Load reads a region's snapshot from disk
func (s *Storage) Load(region string) (*event.Payload, error) {
	path := s.SnapshotPath(region)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w for %s", ErrNoSnapshot, region)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	payload, err := event.DecodePayload(data)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}

	return payload, nil
}

// LoadEvents reads a region's snapshot and decodes it into events tagged with
// the upper-case region code
func (s *Storage) LoadEvents(region string) ([]*event.Event, error) {
	payload, err := s.Load(region)
	if err != nil {
		return nil, err
	}
	return payload.Events(strings.ToUpper(region))
}

// WriteFile writes an auxiliary artifact (calendar, regional page data) next to the snapshots
func (s *Storage) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
