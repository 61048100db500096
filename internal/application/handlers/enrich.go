// Package handlers wires application boundaries to domain services.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ersonp/cardlink/internal/domain/entities"
	"github.com/ersonp/cardlink/internal/domain/ports"
	"github.com/ersonp/cardlink/internal/domain/services"
	"github.com/ersonp/cardlink/internal/infrastructure/parsers"
)

// EnrichHandler runs a full enrichment: load graph, extract catalog,
// match and link, save graph.
type EnrichHandler struct {
	store   ports.GraphStore
	parser  *parsers.CatalogParser
	service *services.EnrichService
}

// NewEnrichHandler creates a new enrich handler.
func NewEnrichHandler(store ports.GraphStore, parser *parsers.CatalogParser, service *services.EnrichService) *EnrichHandler {
	return &EnrichHandler{
		store:   store,
		parser:  parser,
		service: service,
	}
}

// EnrichOptions holds the three paths of an enrichment run.
type EnrichOptions struct {
	GraphPath   string
	CatalogPath string
	OutputPath  string
}

// EnrichResult contains the outcome of an enrichment run.
type EnrichResult struct {
	Report        *services.EnrichReport
	TriplesLoaded int
	TriplesSaved  int
	Warnings      []string
}

// Handle runs the enrichment. A missing input graph aborts before any
// processing and nothing is written. A missing catalog file degrades to a
// no-op pass with a warning: zero cards linked, the unchanged graph is
// still saved to the output path. Malformed catalog JSON aborts the run.
func (h *EnrichHandler) Handle(ctx context.Context, opts EnrichOptions) (*EnrichResult, error) {
	g, err := h.store.Load(ctx, opts.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("loading graph: %w", err)
	}

	result := &EnrichResult{TriplesLoaded: g.Len()}

	cards, warning, err := h.extractCatalog(opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}

	result.Report = h.service.Enrich(g, cards)

	if err := h.store.Save(ctx, g, opts.OutputPath); err != nil {
		return nil, fmt.Errorf("saving graph: %w", err)
	}
	result.TriplesSaved = g.Len()

	return result, nil
}

// extractCatalog reads the catalog file into card records. The returned
// warning is non-empty for the two non-fatal degradations: a missing file
// and a payload that yields zero cards.
func (h *EnrichHandler) extractCatalog(path string) ([]entities.CardRecord, string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Sprintf("catalog file not found: %s, continuing without card enrichment", path), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	cards, err := h.parser.Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("extracting catalog: %w", err)
	}
	if len(cards) == 0 {
		return nil, "no cards found in catalog, check the payload shape", nil
	}

	return cards, "", nil
}
