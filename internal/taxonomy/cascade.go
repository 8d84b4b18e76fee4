package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
)

// rewriteFunc returns the replacement for a reference that follows a
// rename or a merge.
type rewriteFunc func(models.Ref) models.Ref

// cascade rewrites every record that refers to the entity called name with
// the given id, by name or id, and records the changed collections in u.
// Budgets only follow categories. It returns the number of records
// rewritten.
func cascade(u *Update, snap models.Snapshot, kind models.Kind, name, id string, rewrite rewriteFunc) int {
	applied := 0

	txs, n := cascadeTransactions(snap.Transactions, kind, name, id, rewrite)
	if n > 0 {
		u.setTransactions(txs)
		applied += n
	}

	recs, n := cascadeRecurrents(snap.Recurrents, kind, name, id, rewrite)
	if n > 0 {
		u.setRecurrents(recs)
		applied += n
	}

	if kind == models.KindArea {
		budgets, n := cascadeBudgets(snap.Budgets, name, id, rewrite)
		if n > 0 {
			u.setBudgets(budgets)
			applied += n
		}
	}

	return applied
}

func cascadeTransactions(in []models.Transaction, kind models.Kind, name, id string, rewrite rewriteFunc) ([]models.Transaction, int) {
	out := make([]models.Transaction, len(in))
	changed := 0
	for i, tx := range in {
		touched := false
		if kind == models.KindAccount {
			if tx.From.Refers(name, id) {
				tx.From = rewrite(tx.From)
				touched = true
			}
			if tx.To.Refers(name, id) {
				tx.To = rewrite(tx.To)
				touched = true
			}
		} else if tx.Area.Refers(name, id) {
			tx.Area = rewrite(tx.Area)
			touched = true
		}
		if touched {
			changed++
		}
		out[i] = tx
	}
	return out, changed
}

func cascadeRecurrents(in []models.RecurringTemplate, kind models.Kind, name, id string, rewrite rewriteFunc) ([]models.RecurringTemplate, int) {
	out := make([]models.RecurringTemplate, len(in))
	changed := 0
	for i, r := range in {
		if kind == models.KindAccount && r.Account.Refers(name, id) {
			r.Account = rewrite(r.Account)
			changed++
		} else if kind == models.KindArea && r.Area.Refers(name, id) {
			r.Area = rewrite(r.Area)
			changed++
		}
		out[i] = r
	}
	return out, changed
}

func cascadeBudgets(in []models.Budget, name, id string, rewrite rewriteFunc) ([]models.Budget, int) {
	out := make([]models.Budget, len(in))
	changed := 0
	for i, b := range in {
		if b.Area.Refers(name, id) {
			b.Area = rewrite(b.Area)
			changed++
		}
		out[i] = b
	}
	return out, changed
}
