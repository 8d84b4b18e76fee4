package models

// Entity is a canonical registry entry for an account or a category.
// ID never changes after creation; Name only changes through a rename.
type Entity struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Kind     Kind   `yaml:"kind,omitempty" json:"kind,omitempty"`
	Currency string `yaml:"currency,omitempty" json:"currency,omitempty"` // accounts only
	Type     string `yaml:"type,omitempty" json:"type,omitempty"`         // categories only: income, expense, invest, mixed
	Archived bool   `yaml:"archived" json:"archived"`
}

// Ref returns a reference to the entity carrying both its name and id
func (e Entity) Ref() Ref {
	return Ref{Name: e.Name, ID: e.ID}
}
