package dataset

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store is the process-wide cache of the loaded dataset. The snapshot is
// loaded at most once no matter how many goroutines ask for it first;
// after a successful load it is immutable and safe for concurrent readers.
// Invalidate drops the snapshot so the next Snapshot call reloads.
type Store struct {
	source string

	mu      sync.RWMutex
	records []Record

	group singleflight.Group
}

// NewStore creates a store backed by the given source path. A path ending
// in .db or .sqlite is read as a SQLite database, anything else as CSV.
func NewStore(source string) *Store {
	return &Store{source: source}
}

// Source returns the backing file path.
func (s *Store) Source() string { return s.source }

// Load reads the source according to its extension.
func Load(source string) ([]Record, error) {
	if strings.HasSuffix(source, ".db") || strings.HasSuffix(source, ".sqlite") {
		return LoadSQLite(source)
	}
	return LoadCSV(source)
}

// Snapshot returns the cached record slice, loading it on first use.
// Callers must treat the slice as read-only.
func (s *Store) Snapshot() ([]Record, error) {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()
	if records != nil {
		return records, nil
	}

	// Coalesce concurrent first loads into a single read.
	v, err, _ := s.group.Do("load", func() (any, error) {
		s.mu.RLock()
		cached := s.records
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := Load(s.source)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			// A valid empty dataset still counts as loaded.
			loaded = []Record{}
		}

		s.mu.Lock()
		s.records = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Record), nil
}

// Invalidate drops the cached snapshot. The next Snapshot call reloads from
// the source. Readers holding the old slice are unaffected.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

// Reload invalidates and immediately loads a fresh snapshot. On failure the
// previous snapshot is restored so connected dashboards keep serving the
// last good data.
func (s *Store) Reload() ([]Record, error) {
	loaded, err := Load(s.source)
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		loaded = []Record{}
	}
	s.mu.Lock()
	s.records = loaded
	s.mu.Unlock()
	return loaded, nil
}
