// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single financial movement. Area, From and To carry
// both the legacy name and the registry id of the entity they point at.
type Transaction struct {
	ID       string          `yaml:"id" json:"id"`
	Date     string          `yaml:"date" json:"date"` // ISO yyyy-mm-dd
	Type     TransactionType `yaml:"type" json:"type"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Currency string          `yaml:"currency" json:"currency"`
	Area     Ref             `yaml:"area" json:"area"`
	From     Ref             `yaml:"from" json:"from"`
	To       Ref             `yaml:"to,omitempty" json:"to,omitempty"`
	Note     string          `yaml:"note,omitempty" json:"note,omitempty"`
	Tags     []string        `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// IsRecurrent reports whether any tag marks the transaction as generated
// from a recurring template. Transactions without tags are not recurrent.
func (t Transaction) IsRecurrent() bool {
	for _, tag := range t.Tags {
		if tag != "" && strings.HasPrefix(tag, RecurrenceTagPrefix) {
			return true
		}
	}
	return false
}

// Month returns the yyyy-mm prefix of the date, or "" for short dates
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

// Year returns the yyyy prefix of the date, or "" for short dates
func (t Transaction) Year() string {
	if len(t.Date) < 4 {
		return ""
	}
	return t.Date[:4]
}
