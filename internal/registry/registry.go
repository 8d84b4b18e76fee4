// Package registry provides lookups over the canonical entity lists held in
// a snapshot. Every function treats its input as read-only.
package registry

import (
	"sort"
	"strings"

	"fjacquet/ledger-taxonomy/internal/models"

	"github.com/agnivade/levenshtein"
)

// Find returns the index of the first entity named name
func Find(list []models.Entity, name string) (int, bool) {
	for i, e := range list {
		if e.Name == name {
			return i, true
		}
	}
	return -1, false
}

// FindByID returns the index of the entity with the given id
func FindByID(list []models.Entity, id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i, e := range list {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Resolve returns the entity referenced by ref, preferring the id and
// falling back to the legacy name.
func Resolve(list []models.Entity, ref models.Ref) (models.Entity, bool) {
	if i, ok := FindByID(list, ref.ID); ok {
		return list[i], true
	}
	if i, ok := Find(list, ref.Name); ok {
		return list[i], true
	}
	return models.Entity{}, false
}

// Match is a registry entry close to a looked-up name
type Match struct {
	Entity   models.Entity
	Distance int
}

// Similar returns entities whose name is within maxDistance edits of name,
// ignoring case, closest first. Exact matches have distance 0.
func Similar(list []models.Entity, name string, maxDistance int) []Match {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var matches []Match
	for _, e := range list {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(e.Name))
		if d <= maxDistance {
			matches = append(matches, Match{Entity: e, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}
