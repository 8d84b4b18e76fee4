package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// numericFields hold decimals; values compared against them are numbers
var numericFields = map[string]bool{
	"amount": true,
}

// ParseCondition reads "field:operator:value" into an active condition.
// The value may itself contain colons. Values for numeric fields are kept
// as numbers so equals compares them numerically.
func ParseCondition(expr string) (Condition, error) {
	parts := strings.SplitN(expr, ":", 3)
	if len(parts) != 3 {
		return Condition{}, fmt.Errorf("invalid condition %q: want field:operator:value", expr)
	}

	field := strings.TrimSpace(parts[0])
	op := Operator(strings.TrimSpace(parts[1]))
	if field == "" || op == "" {
		return Condition{}, fmt.Errorf("invalid condition %q: field and operator are required", expr)
	}

	var value interface{} = parts[2]
	if numericFields[field] {
		if _, ok := toNumber(parts[2]); ok {
			value = json.Number(strings.TrimSpace(parts[2]))
		}
	}

	return Condition{
		ID:       uuid.NewString(),
		Field:    field,
		Operator: op,
		Value:    value,
		Active:   true,
	}, nil
}

// KnownOperator reports whether op is evaluated rather than passed through
func KnownOperator(op Operator) bool {
	switch op {
	case OpEquals, OpContains, OpGreaterThan, OpLessThan:
		return true
	}
	return false
}
