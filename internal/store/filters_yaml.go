package store

import (
	"fmt"

	"fjacquet/ledger-taxonomy/internal/fileutils"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/logging"

	"gopkg.in/yaml.v3"
)

// YAMLFilterStore keeps the saved quick filter in its own YAML file
type YAMLFilterStore struct {
	path   string
	logger logging.Logger
}

// NewYAMLFilterStore creates a filter store backed by path
func NewYAMLFilterStore(path string, logger logging.Logger) *YAMLFilterStore {
	return &YAMLFilterStore{path: path, logger: logger}
}

// Save replaces the stored filter
func (s *YAMLFilterStore) Save(state filter.QuickFilter) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling filter state: %w", err)
	}
	if err := fileutils.WriteAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("Saved filter state", logging.F(logging.FieldFile, s.path))
	return nil
}

// Load returns the stored filter, or nil when none was saved
func (s *YAMLFilterStore) Load() (*filter.QuickFilter, error) {
	data, ok, err := fileutils.ReadIfExists(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading filter state: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var state filter.QuickFilter
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("error parsing filter state %s: %w", s.path, err)
	}
	return &state, nil
}

// Clear forgets the stored filter. Clearing an empty store is not an error.
func (s *YAMLFilterStore) Clear() error {
	if err := fileutils.RemoveIfExists(s.path); err != nil {
		return fmt.Errorf("error clearing filter state: %w", err)
	}
	s.logger.Debug("Cleared filter state", logging.F(logging.FieldFile, s.path))
	return nil
}
