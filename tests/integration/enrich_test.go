package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/cardlink/internal/application/handlers"
	"github.com/ersonp/cardlink/internal/domain/entities"
	"github.com/ersonp/cardlink/internal/domain/services"
	"github.com/ersonp/cardlink/internal/infrastructure/graphstore/ntriples"
	"github.com/ersonp/cardlink/internal/infrastructure/parsers"
)

const inputGraph = `<http://tolkiengateway.semanticweb.org/resource/Gandalf> <http://schema.org/name> "Gandalf"@en .
<http://tolkiengateway.semanticweb.org/resource/Aragorn> <http://schema.org/name> "Aragorn"@en .
`

const catalogJSON = `{
  "AS": {
    "cards": {
      "1": {"name": "Gandalf", "type": "Hero", "set": "AS"},
      "2": {"name": {"en": "Aragorn", "es": "Trancos"}, "set": "AS"},
      "3": {"name": "Tom Bombadil", "set": "AS"}
    }
  }
}`

func newHandler() *handlers.EnrichHandler {
	service := services.NewEnrichService(services.DefaultThreshold, nil)
	return handlers.NewEnrichHandler(ntriples.NewStore(), parsers.NewCatalogParser(), service)
}

func TestEnrichEndToEnd(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "kg.nt")
	catalogPath := filepath.Join(dir, "cards.json")
	outputPath := filepath.Join(dir, "out", "kg_enriched.nt")

	require.NoError(t, os.WriteFile(graphPath, []byte(inputGraph), 0o644))
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o644))

	opts := handlers.EnrichOptions{GraphPath: graphPath, CatalogPath: catalogPath, OutputPath: outputPath}
	result, err := newHandler().Handle(context.Background(), opts)
	require.NoError(t, err)

	// Gandalf and Aragorn link, Tom Bombadil has no graph entity.
	assert.Equal(t, 3, result.Report.CardsFound)
	assert.Equal(t, 2, result.Report.CardsLinked)
	assert.Equal(t, 2, result.TriplesLoaded)

	enriched, err := ntriples.NewStore().Load(context.Background(), outputPath)
	require.NoError(t, err)
	assert.Equal(t, result.TriplesSaved, enriched.Len())
	assert.Equal(t, 2+result.Report.StatementsAdded, enriched.Len())

	var subjectOf []entities.Statement
	for _, st := range enriched.Statements() {
		if st.Predicate == entities.SchemaSubjectOf {
			subjectOf = append(subjectOf, st)
		}
	}
	require.Len(t, subjectOf, 2)
	assert.ElementsMatch(t, []entities.Statement{
		{
			Subject:   entities.IRI(entities.ResourceNamespace + "Gandalf"),
			Predicate: entities.SchemaSubjectOf,
			Object:    entities.IRI(entities.CardNamespace + "1"),
		},
		{
			Subject:   entities.IRI(entities.ResourceNamespace + "Aragorn"),
			Predicate: entities.SchemaSubjectOf,
			Object:    entities.IRI(entities.CardNamespace + "2"),
		},
	}, subjectOf)
}

func TestEnrichEndToEnd_RerunMintsSameIdentifiers(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "kg.nt")
	catalogPath := filepath.Join(dir, "cards.json")

	require.NoError(t, os.WriteFile(graphPath, []byte(inputGraph), 0o644))
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogJSON), 0o644))

	handler := newHandler()
	firstOut := filepath.Join(dir, "first.nt")
	secondOut := filepath.Join(dir, "second.nt")

	_, err := handler.Handle(context.Background(), handlers.EnrichOptions{
		GraphPath: graphPath, CatalogPath: catalogPath, OutputPath: firstOut,
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), handlers.EnrichOptions{
		GraphPath: graphPath, CatalogPath: catalogPath, OutputPath: secondOut,
	})
	require.NoError(t, err)

	first, err := os.ReadFile(firstOut)
	require.NoError(t, err)
	second, err := os.ReadFile(secondOut)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEnrichEndToEnd_MissingCatalog(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "kg.nt")
	outputPath := filepath.Join(dir, "kg_enriched.nt")

	require.NoError(t, os.WriteFile(graphPath, []byte(inputGraph), 0o644))

	opts := handlers.EnrichOptions{
		GraphPath:   graphPath,
		CatalogPath: filepath.Join(dir, "absent.json"),
		OutputPath:  outputPath,
	}
	result, err := newHandler().Handle(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Report.CardsLinked)
	require.Len(t, result.Warnings, 1)

	enriched, err := ntriples.NewStore().Load(context.Background(), outputPath)
	require.NoError(t, err)
	assert.Equal(t, result.TriplesLoaded, enriched.Len())
}

func TestEnrichEndToEnd_MissingGraphWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "kg_enriched.nt")

	opts := handlers.EnrichOptions{
		GraphPath:   filepath.Join(dir, "absent.nt"),
		CatalogPath: filepath.Join(dir, "cards.json"),
		OutputPath:  outputPath,
	}
	_, err := newHandler().Handle(context.Background(), opts)
	require.Error(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}
