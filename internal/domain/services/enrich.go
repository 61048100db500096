package services

import (
	"github.com/google/uuid"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// EnrichReport summarizes one enrichment run. RunID identifies the run in
// console output only; nothing about the run is persisted.
type EnrichReport struct {
	RunID           string
	CardsFound      int
	CardsLinked     int
	StatementsAdded int
}

// EnrichService links catalog cards into a loaded graph: it builds the
// entity index, matches each card by name and appends the linker's
// statements for every match. Cards whose names produce no match are
// skipped silently.
type EnrichService struct {
	policy    ConflictPolicy
	threshold float64
	progress  func(linked int)
}

// NewEnrichService creates an EnrichService with the given fuzzy-match
// threshold. progress, if non-nil, is called after every linked card.
func NewEnrichService(threshold float64, progress func(linked int)) *EnrichService {
	return &EnrichService{
		policy:    LastWriteWins,
		threshold: threshold,
		progress:  progress,
	}
}

// Enrich runs the pipeline over an already-loaded graph and returns the
// run report. The graph is mutated by insertion only.
func (s *EnrichService) Enrich(g *entities.Graph, cards []entities.CardRecord) *EnrichReport {
	index := BuildIndex(g, s.policy)
	matcher := NewMatcher(index, s.threshold)
	linker := NewLinker()

	report := &EnrichReport{
		RunID:      uuid.NewString(),
		CardsFound: len(cards),
	}

	for _, card := range cards {
		entity, ok := matcher.Match(card.Name)
		if !ok {
			continue
		}

		for _, st := range linker.Link(card, entity) {
			g.Add(st)
			report.StatementsAdded++
		}
		report.CardsLinked++

		if s.progress != nil {
			s.progress(report.CardsLinked)
		}
	}

	return report
}
