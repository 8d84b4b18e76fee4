// Package store persists the ledger snapshot and the saved quick filter.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/ledger-taxonomy/internal/fileutils"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory searched for data files
const AppDir = ".ledger-taxonomy"

// DefaultDataFile is used when no data file is configured
const DefaultDataFile = "ledger.yaml"

// FindFile looks for filename in the standard locations: as given, under
// ./data, then under $HOME/.ledger-taxonomy.
func FindFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, AppDir, filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// SnapshotStore keeps the whole ledger in one YAML file. It is the
// mutation sink of the CLI: Apply folds an update into the file in a
// single write.
type SnapshotStore struct {
	path         string
	baseCurrency string
	logger       logging.Logger
	mu           sync.Mutex
}

// NewSnapshotStore creates a store for path. An existing file is found
// through FindFile; otherwise path is used as given when saving.
// baseCurrency seeds snapshots loaded from a missing or currency-less file.
func NewSnapshotStore(path, baseCurrency string, logger logging.Logger) *SnapshotStore {
	if path == "" {
		path = DefaultDataFile
	}
	if found, err := FindFile(path); err == nil {
		path = found
	}
	return &SnapshotStore{
		path:         path,
		baseCurrency: baseCurrency,
		logger:       logger,
	}
}

// Path returns the file the store reads and writes
func (s *SnapshotStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *SnapshotStore) Load() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *SnapshotStore) load() (models.Snapshot, error) {
	snap := models.Snapshot{BaseCurrency: s.baseCurrency}

	data, ok, err := fileutils.ReadIfExists(s.path)
	if err != nil {
		return snap, fmt.Errorf("error reading data file: %w", err)
	}
	if !ok {
		s.logger.Warn("Data file not found, starting empty",
			logging.F(logging.FieldFile, s.path))
		return snap, nil
	}

	if err := yaml.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("error parsing data file %s: %w", s.path, err)
	}
	if snap.BaseCurrency == "" {
		snap.BaseCurrency = s.baseCurrency
	}

	s.logger.Debug("Loaded snapshot",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldVersion, snap.Version),
		logging.F(logging.FieldCount, len(snap.Transactions)))
	return snap, nil
}

// Save writes snap through a temporary file renamed over the target, so a
// reader never sees a half-written ledger.
func (s *SnapshotStore) Save(snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(snap)
}

func (s *SnapshotStore) save(snap models.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}
	if err := fileutils.WriteAtomic(s.path, data); err != nil {
		return err
	}

	s.logger.Debug("Saved snapshot",
		logging.F(logging.FieldFile, s.path),
		logging.F(logging.FieldVersion, snap.Version))
	return nil
}

// Apply implements taxonomy.Sink. The update is applied to the snapshot
// currently on disk and persisted in one write.
func (s *SnapshotStore) Apply(ctx context.Context, u taxonomy.Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	return s.save(u.ApplyTo(current))
}
