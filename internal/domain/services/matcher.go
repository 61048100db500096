package services

import (
	"github.com/ersonp/cardlink/internal/domain/entities"
)

// DefaultThreshold is the minimum similarity ratio a fuzzy candidate must
// reach to be considered a match.
const DefaultThreshold = 0.85

// Matcher resolves a candidate name to at most one indexed entity.
type Matcher struct {
	index     *EntityIndex
	threshold float64
}

// NewMatcher creates a matcher over the given index. A threshold outside
// (0,1] falls back to DefaultThreshold.
func NewMatcher(index *EntityIndex, threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{index: index, threshold: threshold}
}

// Match returns the best matching entity for a candidate name, if any.
// An exact lookup on the normalized candidate always wins, regardless of
// any fuzzy score. Otherwise every indexed key is scored against the raw
// candidate and the best key at or above the threshold wins; a key only
// replaces the current best on a strictly greater score, so ties resolve
// to the key seen first in index order. Absence of a match is a normal
// outcome, not an error.
func (m *Matcher) Match(name string) (entities.IRI, bool) {
	if name == "" {
		return "", false
	}

	if entity, ok := m.index.Lookup(entities.NormalizeName(name)); ok {
		return entity, true
	}

	var (
		bestScore  float64
		bestEntity entities.IRI
		found      bool
	)
	for _, key := range m.index.keys {
		score := Ratio(name, key)
		if score > bestScore && score >= m.threshold {
			bestScore = score
			bestEntity = m.index.byKey[key]
			found = true
		}
	}

	return bestEntity, found
}
