package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
)

// Delete removes the registry entries named name. Records that reference
// the entity keep their legacy name for historical display; only the
// registry changes. It reports false when nothing matched.
func Delete(snap models.Snapshot, kind models.Kind, name string) (Update, bool) {
	current := snap.Registry(kind)
	kept := make([]models.Entity, 0, len(current))
	for _, e := range current {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(current) {
		return Update{}, false
	}

	var u Update
	u.setRegistry(kind, kept)
	return u, true
}
