package models

// Kind selects which registry a taxonomy operation targets.
type Kind string

const (
	KindAccount Kind = "account"
	KindArea    Kind = "area"
)

// ParseKind accepts the wire names plus "category" as an alias for area.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "account", "accounts":
		return KindAccount, true
	case "area", "areas", "category", "categories":
		return KindArea, true
	}
	return "", false
}

// String returns the wire name of the kind
func (k Kind) String() string {
	return string(k)
}

// TransactionType classifies a transaction's direction of money
type TransactionType string

const (
	TypeIncome      TransactionType = "income"
	TypeExpense     TransactionType = "expense"
	TypeTransfer    TransactionType = "transfer"
	TypeInvestment  TransactionType = "investment"
	TypeRevaluation TransactionType = "revaluation"
)

// RecurrenceTagPrefix marks transactions generated from a recurring template.
const RecurrenceTagPrefix = "rec_id:"

// PermissionDirectory is used for data and state directories
const PermissionDirectory = 0750
