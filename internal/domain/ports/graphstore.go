// Package ports defines interfaces implemented by infrastructure adapters.
package ports

import (
	"context"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// GraphStore loads and saves the serialized knowledge graph.
type GraphStore interface {
	// Load parses the graph serialization at path into memory.
	Load(ctx context.Context, path string) (*entities.Graph, error)

	// Save serializes the graph to path, creating parent directories as
	// needed and overwriting any existing file.
	Save(ctx context.Context, g *entities.Graph, path string) error
}
