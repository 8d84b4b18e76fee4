package models

// Ref is a reference to a registry entity carried on a record in both
// naming schemes: the legacy display name and, once migrated, the canonical
// registry id. All resolution logic goes through these methods.
type Ref struct {
	Name string `yaml:"name" json:"name"`
	ID   string `yaml:"id,omitempty" json:"id,omitempty"`
}

// NewRef builds a reference from a legacy name and an optional id
func NewRef(name, id string) Ref {
	return Ref{Name: name, ID: id}
}

// Matches reports whether value denotes this reference either as an id or
// as a legacy name. An empty id never matches.
func (r Ref) Matches(value string) bool {
	if r.ID != "" && r.ID == value {
		return true
	}
	return r.Name == value
}

// Refers reports whether the record must follow a rename of the entity
// currently called name with the given id. id may be empty for entities
// that were never registered.
func (r Ref) Refers(name, id string) bool {
	if r.Name == name {
		return true
	}
	return id != "" && r.ID == id
}

// Renamed returns a copy with the legacy name replaced. The id is kept.
func (r Ref) Renamed(name string) Ref {
	return Ref{Name: name, ID: r.ID}
}
