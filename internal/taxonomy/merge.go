package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"
	"fjacquet/ledger-taxonomy/internal/taxonomyerror"
)

// Merge folds source into the registered entity target: every record that
// refers to source, by name or id, is re-pointed at target (name and id),
// and the source registry entry is dropped. It returns the number of
// records re-pointed. A source that is neither registered nor referenced
// is a NotFoundError.
func Merge(snap models.Snapshot, kind models.Kind, source, target string) (Update, int, error) {
	if source == "" || target == "" {
		return Update{}, 0, &taxonomyerror.ValidationError{
			Kind:   kind.String(),
			Field:  "name",
			Value:  source + " -> " + target,
			Reason: "source and target must not be empty",
		}
	}
	if source == target {
		return Update{}, 0, &taxonomyerror.ValidationError{
			Kind:   kind.String(),
			Field:  "target",
			Value:  target,
			Reason: "source and target are the same",
		}
	}

	current := snap.Registry(kind)
	ti, ok := registry.Find(current, target)
	if !ok {
		return Update{}, 0, &taxonomyerror.NotFoundError{Kind: kind.String(), Name: target}
	}
	into := current[ti].Ref()

	var sourceID string
	list := make([]models.Entity, 0, len(current))
	for _, e := range current {
		if e.Name == source {
			if sourceID == "" {
				sourceID = e.ID
			}
			continue
		}
		list = append(list, e)
	}

	registered := len(list) != len(current)

	var u Update
	if registered {
		u.setRegistry(kind, list)
	}

	applied := cascade(&u, snap, kind, source, sourceID, func(models.Ref) models.Ref {
		return into
	})
	if !registered && applied == 0 {
		return Update{}, 0, &taxonomyerror.NotFoundError{Kind: kind.String(), Name: source}
	}
	return u, applied, nil
}
