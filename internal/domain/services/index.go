// Package services contains the entity-resolution and linking logic.
package services

import (
	"github.com/ersonp/cardlink/internal/domain/entities"
)

// ConflictPolicy resolves duplicate normalized keys during index
// construction. When the graph itself contains ambiguous names the index
// guarantees only "a" plausible match per key, not "the" correct one.
type ConflictPolicy int

const (
	// LastWriteWins keeps the entity seen later in graph statement order.
	LastWriteWins ConflictPolicy = iota
	// KeepFirst keeps the entity seen first.
	KeepFirst
)

// EntityIndex maps normalized name keys to entity IRIs. Keys iterate in
// insertion order, which makes fuzzy scans and their tie-breaks
// deterministic across runs.
type EntityIndex struct {
	keys  []string
	byKey map[string]entities.IRI
}

// BuildIndex builds an index over every entity in g that carries a
// schema:name literal. Two keys are inserted per name: the normalized name
// and the normalized name with spaces removed, both pointing at the same
// entity. Empty names are excluded. O(E) time and space in the number of
// named entities.
func BuildIndex(g *entities.Graph, policy ConflictPolicy) *EntityIndex {
	idx := &EntityIndex{byKey: make(map[string]entities.IRI)}

	for _, st := range g.Statements() {
		if st.Predicate != entities.SchemaName {
			continue
		}
		lit, ok := st.Object.(entities.Literal)
		if !ok {
			continue
		}
		key := entities.NormalizeName(lit.Value)
		if key == "" {
			continue
		}
		idx.insert(key, st.Subject, policy)
		idx.insert(entities.StripSpaces(key), st.Subject, policy)
	}

	return idx
}

func (ix *EntityIndex) insert(key string, entity entities.IRI, policy ConflictPolicy) {
	if _, exists := ix.byKey[key]; exists {
		if policy == KeepFirst {
			return
		}
		ix.byKey[key] = entity
		return
	}
	ix.keys = append(ix.keys, key)
	ix.byKey[key] = entity
}

// Lookup returns the entity for an exact normalized key.
func (ix *EntityIndex) Lookup(key string) (entities.IRI, bool) {
	entity, ok := ix.byKey[key]
	return entity, ok
}

// Len returns the number of distinct keys in the index.
func (ix *EntityIndex) Len() int {
	return len(ix.keys)
}
