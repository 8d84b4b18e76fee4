// Package analytics reduces a filtered transaction set into period totals
// and a short daily series for charting.
package analytics

import (
	"sort"

	"fjacquet/ledger-taxonomy/internal/dateutils"
	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultSeriesDays is the number of daily buckets kept when no limit is given
const DefaultSeriesDays = 14

// ToBase normalizes an amount in currency into the base currency. The
// caller owns the rates; this package never converts on its own.
type ToBase func(amount decimal.Decimal, currency string) decimal.Decimal

// Identity is a ToBase that returns amounts unchanged
func Identity(amount decimal.Decimal, _ string) decimal.Decimal {
	return amount
}

// Stats holds income and expense totals in the base currency
type Stats struct {
	Income  decimal.Decimal `yaml:"income" json:"income"`
	Expense decimal.Decimal `yaml:"expense" json:"expense"`
	Net     decimal.Decimal `yaml:"net" json:"net"`
}

// DailyPoint is one day of the series. Label is the day of month.
type DailyPoint struct {
	Date    string          `yaml:"date" json:"date"`
	Label   string          `yaml:"label" json:"label"`
	Income  decimal.Decimal `yaml:"income" json:"income"`
	Expense decimal.Decimal `yaml:"expense" json:"expense"`
}

// Result bundles the totals and the series for one filtered set
type Result struct {
	Count  int          `yaml:"count" json:"count"`
	Stats  Stats        `yaml:"stats" json:"stats"`
	Series []DailyPoint `yaml:"series" json:"series"`
}

// Summarize sums income and expense transactions. Other types are ignored.
func Summarize(txs []models.Transaction, toBase ToBase) Stats {
	if toBase == nil {
		toBase = Identity
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			income = income.Add(toBase(tx.Amount, tx.Currency))
		case models.TypeExpense:
			expense = expense.Add(toBase(tx.Amount, tx.Currency))
		}
	}

	return Stats{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// DailySeries groups income and expense by date, ascending, and keeps the
// most recent limit buckets. Every date present in txs gets a bucket, even
// when only transfers fall on it. limit <= 0 means DefaultSeriesDays.
func DailySeries(txs []models.Transaction, toBase ToBase, limit int) []DailyPoint {
	if toBase == nil {
		toBase = Identity
	}
	if limit <= 0 {
		limit = DefaultSeriesDays
	}

	buckets := make(map[string]*DailyPoint)
	for _, tx := range txs {
		p, ok := buckets[tx.Date]
		if !ok {
			p = &DailyPoint{
				Date:    tx.Date,
				Label:   dateutils.DayLabel(tx.Date),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[tx.Date] = p
		}

		switch tx.Type {
		case models.TypeIncome:
			p.Income = p.Income.Add(toBase(tx.Amount, tx.Currency))
		case models.TypeExpense:
			p.Expense = p.Expense.Add(toBase(tx.Amount, tx.Currency))
		}
	}

	series := make([]DailyPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	if len(series) > limit {
		series = series[len(series)-limit:]
	}
	return series
}

// Report computes the totals and the series in one call
func Report(txs []models.Transaction, toBase ToBase, limit int) Result {
	return Result{
		Count:  len(txs),
		Stats:  Summarize(txs, toBase),
		Series: DailySeries(txs, toBase, limit),
	}
}
