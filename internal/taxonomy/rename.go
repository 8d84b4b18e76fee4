package taxonomy

import (
	"fjacquet/ledger-taxonomy/internal/models"
	"fjacquet/ledger-taxonomy/internal/registry"
)

// Rename renames the registry entry currently called oldName and rewrites
// the legacy name of every record that refers to it, either by that name or
// by the entry's id. Id fields are never touched. It returns the combined
// update and the number of dependent records rewritten.
//
// Empty or equal names are a no-op: the update is empty and the count zero.
func Rename(snap models.Snapshot, kind models.Kind, oldName, newName string) (Update, int) {
	if oldName == "" || newName == "" || oldName == newName {
		return Update{}, 0
	}

	var u Update

	// The entity may be legacy-only, in which case only name matches count.
	var entityID string
	if i, ok := registry.Find(snap.Registry(kind), oldName); ok {
		list := cloneEntities(snap.Registry(kind))
		list[i].Name = newName
		entityID = list[i].ID
		u.setRegistry(kind, list)
	}

	applied := cascade(&u, snap, kind, oldName, entityID, func(r models.Ref) models.Ref {
		return r.Renamed(newName)
	})
	return u, applied
}
