package models

import "github.com/shopspring/decimal"

// Frequency of a recurring template
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyCustom  Frequency = "custom"
)

// RecurringTemplate describes a transaction that repeats on a schedule
type RecurringTemplate struct {
	ID        string          `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Currency  string          `yaml:"currency" json:"currency"`
	Type      TransactionType `yaml:"type" json:"type"`
	Frequency Frequency       `yaml:"frequency" json:"frequency"`
	NextDate  string          `yaml:"next_date" json:"next_date"`
	Active    bool            `yaml:"active" json:"active"`
	Variable  bool            `yaml:"variable,omitempty" json:"variable,omitempty"`
	Area      Ref             `yaml:"area" json:"area"`
	Account   Ref             `yaml:"account" json:"account"`
}

// Budget caps spending or income for one category
type Budget struct {
	ID       string          `yaml:"id" json:"id"`
	Area     Ref             `yaml:"area" json:"area"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Currency string          `yaml:"currency" json:"currency"`
	Type     TransactionType `yaml:"type" json:"type"`
}
