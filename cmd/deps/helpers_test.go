package deps

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/ledger-taxonomy/internal/config"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestContainer wires a container around a temporary ledger holding
// snap. Engine notices are collected in notices.
func newTestContainer(t *testing.T, snap models.Snapshot, notices *bytes.Buffer) *container.Container {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Log:       config.LogConfig{Level: "info", Format: "text"},
		Data:      config.DataConfig{File: filepath.Join(dir, "ledger.yaml"), BaseCurrency: "USD"},
		Filters:   config.FiltersConfig{Backend: config.BackendYAML},
		Analytics: config.AnalyticsConfig{SeriesDays: 14},
		Currency:  config.CurrencyConfig{Rates: map[string]string{"EUR": "2"}},
	}
	opts := []container.Option{container.WithLogger(logging.NewMockLogger())}
	if notices != nil {
		opts = append(opts, container.WithNotifier(taxonomy.NotifierFunc(func(msg string) {
			notices.WriteString(msg + "\n")
		})))
	}
	c, err := container.NewContainer(cfg, opts...)
	require.NoError(t, err)
	require.NoError(t, c.GetSnapshotStore().Save(snap))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func ledger() models.Snapshot {
	return models.Snapshot{
		Version:      1,
		BaseCurrency: "USD",
		Categories: []models.Entity{
			{ID: "cat-uber", Name: "Uber", Kind: models.KindArea},
			{ID: "cat-food", Name: "Food", Kind: models.KindArea},
			{ID: "cat-taxi", Name: "Taxi", Kind: models.KindArea},
		},
		Accounts: []models.Entity{
			{ID: "acc-cash", Name: "Cash", Kind: models.KindAccount, Currency: "USD"},
			{ID: "acc-bank", Name: "Bank", Kind: models.KindAccount, Currency: "USD"},
		},
		Transactions: []models.Transaction{
			{ID: "1", Date: "2026-10-02", Type: models.TypeExpense, Amount: decimal.NewFromInt(12), Currency: "USD", Area: models.NewRef("Uber", "cat-uber"), From: models.NewRef("Cash", "acc-cash"), Note: "Ride home"},
			{ID: "2", Date: "2026-10-05", Type: models.TypeExpense, Amount: decimal.NewFromInt(150), Currency: "USD", Area: models.NewRef("Food", "cat-food"), From: models.NewRef("Bank", "acc-bank")},
			{ID: "3", Date: "2026-10-05", Type: models.TypeExpense, Amount: decimal.NewFromInt(20), Currency: "EUR", Area: models.NewRef("Taxi", ""), From: models.NewRef("Cash", "")},
			{ID: "4", Date: "2026-10-07", Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Currency: "USD", Area: models.NewRef("Salary", ""), To: models.NewRef("Bank", "acc-bank"), Tags: []string{"rec_id:r1"}},
			{ID: "5", Date: "2026-09-20", Type: models.TypeTransfer, Amount: decimal.NewFromInt(300), Currency: "USD", Area: models.NewRef("Transfers", ""), From: models.NewRef("Bank", "acc-bank"), To: models.NewRef("Cash", "acc-cash")},
		},
		Recurrents: []models.RecurringTemplate{
			{ID: "r1", Name: "Salary", Amount: decimal.NewFromInt(1000), Currency: "USD", Type: models.TypeIncome, Frequency: models.FrequencyMonthly, NextDate: "2026-11-07", Active: true, Area: models.NewRef("Salary", ""), Account: models.NewRef("Bank", "acc-bank")},
			{ID: "r2", Name: "Commute", Amount: decimal.NewFromInt(40), Currency: "USD", Type: models.TypeExpense, Frequency: models.FrequencyWeekly, NextDate: "2026-10-20", Active: true, Area: models.NewRef("Uber", "cat-uber"), Account: models.NewRef("Cash", "acc-cash")},
		},
		Budgets: []models.Budget{
			{ID: "b1", Area: models.NewRef("Uber", "cat-uber"), Amount: decimal.NewFromInt(100), Currency: "USD", Type: models.TypeExpense},
		},
	}
}
