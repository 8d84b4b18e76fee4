// Package currencyutils parses and formats money amounts and normalizes
// them into the ledger's base currency.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪CHF\s]`)

// ParseAmount parses a human-entered amount such as "1'234.56",
// "1.234,56" or "CHF 12.50". An empty string is zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(StandardizeAmount(amountStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency markers and thousand separators so the
// result can be handed to decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	s := symbolPattern.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			// 1.234,56
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// 1,234.56
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	return s
}

// FormatAmount renders amount with two decimals and the currency symbol,
// e.g. "CHF 1234.56" or "€1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formatted
	case "EUR":
		return "€" + formatted
	case "USD":
		return "$" + formatted
	case "GBP":
		return "£" + formatted
	case "JPY":
		return "¥" + formatted
	default:
		return strings.ToUpper(currency) + " " + formatted
	}
}

// SignedAmount renders amount with an explicit sign, e.g. "+12.00"
func SignedAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + amount.Abs().StringFixed(2)
	}
	return "+" + amount.StringFixed(2)
}
