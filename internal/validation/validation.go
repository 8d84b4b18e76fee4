// Package validation checks user-supplied CLI values before they reach the
// core packages.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/ledger-taxonomy/internal/export"
	"fjacquet/ledger-taxonomy/internal/filter"
	"fjacquet/ledger-taxonomy/internal/models"
)

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range export.Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s",
		format, quoteList(export.Formats))
}

// IsValidTransactionType accepts a transaction type or "all".
func IsValidTransactionType(value string) error {
	switch models.TransactionType(value) {
	case models.TypeIncome, models.TypeExpense, models.TypeTransfer,
		models.TypeInvestment, models.TypeRevaluation:
		return nil
	}
	if value == filter.All {
		return nil
	}
	return fmt.Errorf("unsupported transaction type: %s", value)
}

// IsValidTimeWindow accepts the quick-filter time windows.
func IsValidTimeWindow(value string) error {
	switch value {
	case filter.TimeAll, filter.TimeToday, filter.TimeThisMonth, filter.Time7Days, filter.TimeLastMonth:
		return nil
	}
	return fmt.Errorf("unsupported time window: %s. Supported windows are %s", value,
		quoteList([]string{filter.TimeAll, filter.TimeToday, filter.TimeThisMonth, filter.Time7Days, filter.TimeLastMonth}))
}

// ParseKind resolves a kind argument such as "account" or "category".
func ParseKind(value string) (models.Kind, error) {
	kind, ok := models.ParseKind(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return "", fmt.Errorf("unknown kind: %s (use 'account' or 'category')", value)
	}
	return kind, nil
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
