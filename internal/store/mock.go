package store

import (
	"sync"

	"fjacquet/ledger-taxonomy/internal/filter"
)

// MemoryFilterStore is an in-memory filter.StateStore for tests and for
// runs where persisting the filter is disabled.
type MemoryFilterStore struct {
	mu    sync.Mutex
	state *filter.QuickFilter

	// Error flags for testing error conditions
	SaveError  error
	LoadError  error
	ClearError error
}

// Save stores a copy of state
func (m *MemoryFilterStore) Save(state filter.QuickFilter) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &state
	return nil
}

// Load returns a copy of the stored filter, or nil
func (m *MemoryFilterStore) Load() (*filter.QuickFilter, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	state := *m.state
	return &state, nil
}

// Clear drops the stored filter
func (m *MemoryFilterStore) Clear() error {
	if m.ClearError != nil {
		return m.ClearError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}
