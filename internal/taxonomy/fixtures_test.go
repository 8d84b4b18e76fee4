package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/shopspring/decimal"
)

func fixtureSnapshot() models.Snapshot {
	return models.Snapshot{
		Version:      7,
		BaseCurrency: "USD",
		Categories: []models.Entity{
			{ID: "cat-uber", Name: "Uber", Kind: models.KindArea},
			{ID: "cat-trans", Name: "Transport", Kind: models.KindArea},
			{ID: "cat-food", Name: "Food", Kind: models.KindArea},
		},
		Accounts: []models.Entity{
			{ID: "acc-cash", Name: "Cash", Kind: models.KindAccount, Currency: "USD"},
			{ID: "acc-bank", Name: "Bank", Kind: models.KindAccount, Currency: "USD"},
		},
		Transactions: []models.Transaction{
			{
				ID: "1", Date: "2026-01-01", Type: models.TypeExpense,
				Amount: decimal.NewFromInt(10), Currency: "USD",
				Area: models.NewRef("Uber", "cat-uber"), From: models.NewRef("Cash", "acc-cash"),
			},
			{
				ID: "2", Date: "2026-01-02", Type: models.TypeExpense,
				Amount: decimal.NewFromInt(20), Currency: "USD",
				Area: models.NewRef("Food", "cat-food"), From: models.NewRef("Bank", "acc-bank"),
			},
		},
	}
}

// mixedSnapshot has records that reference entities by name only, by id
// only (with a stale name), and both, across every collection.
func mixedSnapshot() models.Snapshot {
	snap := fixtureSnapshot()
	snap.Transactions = append(snap.Transactions,
		models.Transaction{
			ID: "3", Date: "2026-01-03", Type: models.TypeExpense, Amount: decimal.NewFromInt(5), Currency: "USD",
			Area: models.NewRef("Uber", ""), From: models.NewRef("Cash", ""),
		},
		models.Transaction{
			ID: "4", Date: "2026-01-04", Type: models.TypeExpense, Amount: decimal.NewFromInt(7), Currency: "USD",
			Area: models.NewRef("Old Uber", "cat-uber"), From: models.NewRef("Petty", "acc-cash"),
		},
		models.Transaction{
			ID: "5", Date: "2026-01-05", Type: models.TypeTransfer, Amount: decimal.NewFromInt(100), Currency: "USD",
			Area: models.NewRef("Transfers", ""), From: models.NewRef("Bank", "acc-bank"), To: models.NewRef("Cash", "acc-cash"),
		},
	)
	snap.Recurrents = []models.RecurringTemplate{
		{ID: "r1", Name: "Ride pass", Area: models.NewRef("Uber", ""), Account: models.NewRef("Cash", "acc-cash")},
		{ID: "r2", Name: "Groceries", Area: models.NewRef("Food", "cat-food"), Account: models.NewRef("Bank", "")},
		{ID: "r3", Name: "Commute", Area: models.NewRef("Rides", "cat-uber"), Account: models.NewRef("Bank", "acc-bank")},
	}
	snap.Budgets = []models.Budget{
		{ID: "b1", Area: models.NewRef("Uber", "cat-uber"), Amount: decimal.NewFromInt(50), Currency: "USD", Type: models.TypeExpense},
		{ID: "b2", Area: models.NewRef("Food", "cat-food"), Amount: decimal.NewFromInt(300), Currency: "USD", Type: models.TypeExpense},
	}
	return snap
}

func txByID(txs []models.Transaction, id string) models.Transaction {
	for _, tx := range txs {
		if tx.ID == id {
			return tx
		}
	}
	return models.Transaction{}
}

func entityByID(list []models.Entity, id string) models.Entity {
	for _, e := range list {
		if e.ID == id {
			return e
		}
	}
	return models.Entity{}
}
