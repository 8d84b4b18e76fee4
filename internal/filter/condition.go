package filter

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/shopspring/decimal"
)

// Operator compares a transaction field against a condition value
type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	// OpBetween and OpInList are reserved and currently always pass.
	OpBetween Operator = "between"
	OpInList  Operator = "in_list"
)

// Condition is one user-composed advanced filter
type Condition struct {
	ID       string      `yaml:"id,omitempty" json:"id,omitempty"`
	Field    string      `yaml:"field" json:"field"`
	Operator Operator    `yaml:"operator" json:"operator"`
	Value    interface{} `yaml:"value" json:"value"`
	Active   bool        `yaml:"active" json:"isActive"`
}

// Check evaluates the condition against tx. Inactive conditions, reserved
// operators and unknown operators pass.
func (c Condition) Check(tx models.Transaction) bool {
	if !c.Active {
		return true
	}

	val := FieldValue(tx, c.Field)

	switch c.Operator {
	case OpEquals:
		return strictEquals(val, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(stringify(val)), strings.ToLower(stringify(c.Value)))
	case OpGreaterThan:
		a, okA := toNumber(val)
		b, okB := toNumber(c.Value)
		return okA && okB && a.GreaterThan(b)
	case OpLessThan:
		a, okA := toNumber(val)
		b, okB := toNumber(c.Value)
		return okA && okB && a.LessThan(b)
	default:
		return true
	}
}

// ApplyConditions keeps the transactions that pass every condition
func ApplyConditions(txs []models.Transaction, conds []Condition) []models.Transaction {
	if len(conds) == 0 {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if checkAll(tx, conds) {
			out = append(out, tx)
		}
	}
	return out
}

func checkAll(tx models.Transaction, conds []Condition) bool {
	for _, c := range conds {
		if !c.Check(tx) {
			return false
		}
	}
	return true
}

// FieldValue returns the value of a transaction field by its wire name, or
// nil for unknown fields. month and year are derived from the date.
func FieldValue(tx models.Transaction, field string) interface{} {
	switch field {
	case "id":
		return tx.ID
	case "date":
		return tx.Date
	case "type":
		return string(tx.Type)
	case "amount":
		return tx.Amount
	case "currency":
		return tx.Currency
	case "area":
		return tx.Area.Name
	case "areaId":
		return tx.Area.ID
	case "from":
		return tx.From.Name
	case "fromId":
		return tx.From.ID
	case "to":
		return tx.To.Name
	case "toId":
		return tx.To.ID
	case "note":
		return tx.Note
	case "tags":
		return tx.Tags
	case "month":
		return tx.Month()
	case "year":
		return tx.Year()
	}
	return nil
}

// strictEquals compares without coercion: strings only equal strings and
// numbers only equal numbers.
func strictEquals(field, value interface{}) bool {
	switch f := field.(type) {
	case nil:
		return value == nil
	case string:
		v, ok := value.(string)
		return ok && f == v
	case decimal.Decimal:
		if _, isString := value.(string); isString {
			return false
		}
		v, ok := toNumber(value)
		return ok && f.Equal(v)
	}
	return false
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.String()
	case []string:
		return strings.Join(t, ",")
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// toNumber coerces v to a decimal. Empty strings are zero; anything that
// does not parse is not a number.
func toNumber(v interface{}) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt32(t), true
	case int64:
		return decimal.NewFromInt(t), true
	case float32:
		return toNumber(float64(t))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case json.Number:
		return toNumber(string(t))
	case bool:
		if t {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}
