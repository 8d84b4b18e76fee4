package currencyutils

import (
	"fmt"
	"strings"

	"fjacquet/ledger-taxonomy/internal/logging"

	"github.com/shopspring/decimal"
)

// Converter normalizes amounts into a base currency using a static rate
// table. A rate is the value of one unit of the currency in the base.
type Converter struct {
	base   string
	rates  map[string]decimal.Decimal
	logger logging.Logger
}

// NewConverter builds a converter from textual rates, as they come from
// configuration. Codes are case-insensitive.
func NewConverter(base string, rates map[string]string, logger logging.Logger) (*Converter, error) {
	c := &Converter{
		base:   strings.ToUpper(base),
		rates:  make(map[string]decimal.Decimal, len(rates)),
		logger: logger,
	}

	for code, raw := range rates {
		rate, err := ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("invalid rate for %s: must be positive, got %s", code, raw)
		}
		c.rates[strings.ToUpper(code)] = rate
	}
	return c, nil
}

// Base returns the base currency code
func (c *Converter) Base() string {
	return c.base
}

// Rate returns the rate for currency. The base currency and unknown
// currencies use 1 so totals never break on a missing rate.
func (c *Converter) Rate(currency string) decimal.Decimal {
	code := strings.ToUpper(currency)
	if code == "" || code == c.base {
		return decimal.NewFromInt(1)
	}
	rate, ok := c.rates[code]
	if !ok {
		c.logger.Debug("No rate configured, using 1", logging.F("currency", code))
		return decimal.NewFromInt(1)
	}
	return rate
}

// ToBase converts amount from currency into the base currency. It has the
// shape analytics expects.
func (c *Converter) ToBase(amount decimal.Decimal, currency string) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(c.Rate(currency))
}
