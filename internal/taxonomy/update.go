// Package taxonomy keeps the legacy-name and canonical-id representations of
// accounts and categories consistent across every collection of a snapshot.
//
// The package-level functions are pure: they read a snapshot and return an
// Update describing the next version of every collection they touched. The
// Engine wraps them with the serialization, notification and failure
// handling a caller needs before handing the Update to a Sink.
package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
)

// Collection identifies one of the snapshot collections an Update may carry.
type Collection uint8

const (
	CollectionCategories Collection = 1 << iota
	CollectionAccounts
	CollectionTransactions
	CollectionRecurrents
	CollectionBudgets
)

var collectionNames = []struct {
	c    Collection
	name string
}{
	{CollectionCategories, "categories"},
	{CollectionAccounts, "accounts"},
	{CollectionTransactions, "transactions"},
	{CollectionRecurrents, "recurrents"},
	{CollectionBudgets, "budgets"},
}

// Update is the combined payload of a mutation. Only collections flagged in
// Changed are meaningful; it must be applied as one state transition.
type Update struct {
	Changed      Collection
	Categories   []models.Entity
	Accounts     []models.Entity
	Transactions []models.Transaction
	Recurrents   []models.RecurringTemplate
	Budgets      []models.Budget
}

// Has reports whether the update carries c
func (u Update) Has(c Collection) bool {
	return u.Changed&c != 0
}

// IsEmpty reports whether the update changes nothing
func (u Update) IsEmpty() bool {
	return u.Changed == 0
}

// Names lists the changed collections, for logging
func (u Update) Names() []string {
	var names []string
	for _, cn := range collectionNames {
		if u.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	return names
}

// ApplyTo returns the snapshot that results from applying u to s. The
// version is bumped once per non-empty update.
func (u Update) ApplyTo(s models.Snapshot) models.Snapshot {
	if u.IsEmpty() {
		return s
	}
	next := s
	if u.Has(CollectionCategories) {
		next.Categories = u.Categories
	}
	if u.Has(CollectionAccounts) {
		next.Accounts = u.Accounts
	}
	if u.Has(CollectionTransactions) {
		next.Transactions = u.Transactions
	}
	if u.Has(CollectionRecurrents) {
		next.Recurrents = u.Recurrents
	}
	if u.Has(CollectionBudgets) {
		next.Budgets = u.Budgets
	}
	next.Version = s.Version + 1
	return next
}

func (u *Update) setRegistry(kind models.Kind, list []models.Entity) {
	if kind == models.KindAccount {
		u.Accounts = list
		u.Changed |= CollectionAccounts
		return
	}
	u.Categories = list
	u.Changed |= CollectionCategories
}

func (u *Update) setTransactions(txs []models.Transaction) {
	u.Transactions = txs
	u.Changed |= CollectionTransactions
}

func (u *Update) setRecurrents(recs []models.RecurringTemplate) {
	u.Recurrents = recs
	u.Changed |= CollectionRecurrents
}

func (u *Update) setBudgets(budgets []models.Budget) {
	u.Budgets = budgets
	u.Changed |= CollectionBudgets
}

func cloneEntities(list []models.Entity) []models.Entity {
	out := make([]models.Entity, len(list))
	copy(out, list)
	return out
}
