package filter

import (
	"sort"
	"time"

	"fjacquet/ledger-taxonomy/internal/models"
)

// Apply runs the quick filter, then the advanced conditions, over txs and
// returns the survivors newest first. Dates compare as ISO strings; equal
// dates keep their input order. txs is not modified.
func Apply(txs []models.Transaction, quick QuickFilter, conds []Condition, now time.Time) []models.Transaction {
	result := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if quick.Match(tx, now) {
			result = append(result, tx)
		}
	}

	result = ApplyConditions(result, conds)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// StateStore persists the quick filter between sessions. Load returns nil
// when nothing has been saved.
type StateStore interface {
	Save(state QuickFilter) error
	Load() (*QuickFilter, error)
	Clear() error
}

// LoadOrDefault returns the saved quick filter, or Default when the store
// is empty or unreadable.
func LoadOrDefault(store StateStore) QuickFilter {
	if store == nil {
		return Default()
	}
	saved, err := store.Load()
	if err != nil || saved == nil {
		return Default()
	}
	return *saved
}
