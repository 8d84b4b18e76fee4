package models

// Snapshot is the versioned aggregate every taxonomy and query operation
// reads from. Operations never modify a snapshot; they produce a new one.
type Snapshot struct {
	Version      uint64              `yaml:"version" json:"version"`
	BaseCurrency string              `yaml:"base_currency" json:"base_currency"`
	Categories   []Entity            `yaml:"categories" json:"categories"`
	Accounts     []Entity            `yaml:"accounts" json:"accounts"`
	Transactions []Transaction       `yaml:"transactions" json:"transactions"`
	Recurrents   []RecurringTemplate `yaml:"recurrents" json:"recurrents"`
	Budgets      []Budget            `yaml:"budgets" json:"budgets"`
}

// Registry returns the entity list for kind
func (s Snapshot) Registry(kind Kind) []Entity {
	if kind == KindAccount {
		return s.Accounts
	}
	return s.Categories
}
