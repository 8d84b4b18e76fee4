package taxonomy

import (
	"strings"

	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"
	"fjacquet/ledger-taxonomy/internal/taxonomyerror"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh registry id
type IDGenerator func() string

// NewUUID generates random v4 ids
func NewUUID() string {
	return uuid.NewString()
}

// Add appends a new entity named name to the kind's registry. Accounts
// inherit the snapshot's base currency. The name is trimmed; blank names
// and names already registered are rejected.
func Add(snap models.Snapshot, kind models.Kind, name string, newID IDGenerator) (models.Entity, Update, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Entity{}, Update{}, &taxonomyerror.ValidationError{
			Kind:   kind.String(),
			Field:  "name",
			Value:  name,
			Reason: "must not be empty",
		}
	}
	if _, exists := registry.Find(snap.Registry(kind), name); exists {
		return models.Entity{}, Update{}, &taxonomyerror.ValidationError{
			Kind:   kind.String(),
			Field:  "name",
			Value:  name,
			Reason: "already exists",
		}
	}
	if newID == nil {
		newID = NewUUID
	}

	entity := models.Entity{
		ID:       newID(),
		Name:     name,
		Kind:     kind,
		Archived: false,
	}
	if kind == models.KindAccount {
		entity.Currency = snap.BaseCurrency
	}

	current := snap.Registry(kind)
	list := make([]models.Entity, 0, len(current)+1)
	list = append(list, current...)
	list = append(list, entity)

	var u Update
	u.setRegistry(kind, list)
	return entity, u, nil
}
