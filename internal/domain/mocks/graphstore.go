// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// GraphStore is a mock implementation of ports.GraphStore.
type GraphStore struct {
	LoadGraph *entities.Graph
	LoadErr   error
	SaveErr   error

	// Call tracking
	LoadCallCount int
	SaveCallCount int
	SavedGraph    *entities.Graph
	SavedPath     string
}

// Load returns the configured graph or error.
func (m *GraphStore) Load(ctx context.Context, path string) (*entities.Graph, error) {
	m.LoadCallCount++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.LoadGraph, nil
}

// Save records the graph and path it was called with.
func (m *GraphStore) Save(ctx context.Context, g *entities.Graph, path string) error {
	m.SaveCallCount++
	m.SavedGraph = g
	m.SavedPath = path
	return m.SaveErr
}
